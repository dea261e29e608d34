package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type ErrResourceNotFound struct {
	error
}

func NewErrResourceNotFound(id uuid.UUID, resourceType string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("%s %s not found", resourceType, id)}
}

func NewErrProjectNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "project")
}

func NewErrEstimateNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "estimate")
}

// ErrValidation carries the full accumulated list of request validation
// messages so the transport layer can return them all at once.
type ErrValidation struct {
	Messages []string
}

func NewErrValidation(messages []string) *ErrValidation {
	return &ErrValidation{Messages: messages}
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("invalid request: %s", strings.Join(e.Messages, "; "))
}

type ErrResourceAccessForbidden struct {
	error
}

func NewErrResourceAccessForbidden(id uuid.UUID, resourceType string) *ErrResourceAccessForbidden {
	return &ErrResourceAccessForbidden{fmt.Errorf("forbidden to access %s %s", resourceType, id)}
}

type ErrUnsupportedExportFormat struct {
	error
}

func NewErrUnsupportedExportFormat(format string) *ErrUnsupportedExportFormat {
	return &ErrUnsupportedExportFormat{fmt.Errorf("unsupported export format: %s", format)}
}
