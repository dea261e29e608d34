package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey struct{}

// Generate returns a fresh request identifier.
func Generate() string {
	return uuid.NewString()
}

// ToContext stores the request ID on the context.
func ToContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request ID, or the empty string when none is set.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// FromContextPtr returns the request ID, or nil when none is set.
func FromContextPtr(ctx context.Context) *string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return &id
	}
	return nil
}

// FromRequest returns the request ID carried by the request context.
func FromRequest(r *http.Request) string {
	return FromContext(r.Context())
}
