// Package httperr maps any failure surfacing from the routing, service or
// store layers to a stable HTTP status and response body. Classification
// happens once, in the terminal handler wrapper, never per route.
package httperr

import (
	"errors"
	"net/http"

	"github.com/lib/pq"

	"github.com/todoflow-labs/todo-service/internal/validation"
)

// Error is an application-level failure that already knows its HTTP status.
// The classifier passes it through unchanged.
type Error struct {
	Status  int
	Message string
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func (e *Error) Error() string { return e.Message }

// Response is the JSON body of every error response.
type Response struct {
	Error   string              `json:"error"`
	Status  int                 `json:"status,omitempty"`
	Message string              `json:"message,omitempty"`
	Details []validation.Detail `json:"details,omitempty"`
}

// Postgres error codes the store surfaces as client errors.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// Classify inspects err and returns the status code and body to send.
// Outside production the unclassified branch exposes the underlying message.
func Classify(err error, production bool) (int, Response) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status, Response{Error: appErr.Message, Status: appErr.Status}
	}

	var verr *validation.Error
	if errors.As(err, &verr) {
		return http.StatusBadRequest, Response{Error: "Validation failed", Details: verr.Details}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return http.StatusConflict, Response{Error: "Resource already exists"}
		case pqForeignKeyViolation:
			return http.StatusBadRequest, Response{Error: "Referenced resource not found"}
		}
	}

	resp := Response{Error: "Internal server error"}
	if !production {
		resp.Message = err.Error()
	}
	return http.StatusInternalServerError, resp
}
