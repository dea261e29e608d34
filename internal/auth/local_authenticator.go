package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// LocalAuthenticator validates HS256 bearer tokens signed with a shared key.
// Claims: "sub" is the username, "org_id" the organization.
type LocalAuthenticator struct {
	key []byte
}

func NewLocalAuthenticator(privateKey string) (*LocalAuthenticator, error) {
	if privateKey == "" {
		return nil, errors.New("local authentication requires a private key")
	}
	return &LocalAuthenticator{key: []byte(privateKey)}, nil
}

func (a *LocalAuthenticator) ParseToken(tokenString string) (User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.key, nil
	})
	if err != nil {
		return User{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return User{}, errors.New("invalid token claims")
	}

	username, _ := claims["sub"].(string)
	orgID, _ := claims["org_id"].(string)
	if username == "" || orgID == "" {
		return User{}, errors.New("token is missing sub or org_id claim")
	}

	return User{
		Username:     username,
		Organization: orgID,
		Token:        token,
	}, nil
}

func (a *LocalAuthenticator) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		user, err := a.ParseToken(tokenString)
		if err != nil {
			zap.S().Named("auth").Debugf("failed to parse token: %v", err)
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := NewTokenContext(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
