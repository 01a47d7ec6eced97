package errx

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the HTTP surface.
type Kind string

const (
	KindAuthentication Kind = "authentication"
	KindValidation     Kind = "validation"
	KindUpstream       Kind = "upstream"
	KindPersistence    Kind = "persistence"
	KindNotFound       Kind = "not_found"
	KindRateLimited    Kind = "rate_limited"
)

const (
	// SystemErrorMessage is the user-facing fallback for internal failures.
	SystemErrorMessage = "internal server error"
	// UpstreamErrorMessage is shown when the completion service fails.
	UpstreamErrorMessage = "AI service error"
)

// AppError wraps an underlying error with a kind, an HTTP status and a safe message.
type AppError struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

func Authentication(message string) *AppError {
	return &AppError{Kind: KindAuthentication, Status: http.StatusUnauthorized, Message: message}
}

func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Status: http.StatusBadRequest, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Status: http.StatusNotFound, Message: message}
}

func RateLimited(message string) *AppError {
	return &AppError{Kind: KindRateLimited, Status: http.StatusTooManyRequests, Message: message}
}

// Upstream marks a failed call to the external completion service.
func Upstream(err error) *AppError {
	return &AppError{Kind: KindUpstream, Status: http.StatusInternalServerError, Message: UpstreamErrorMessage, Err: err}
}

// Persistence marks a failed store read or write.
func Persistence(err error) *AppError {
	return &AppError{Kind: KindPersistence, Status: http.StatusInternalServerError, Message: SystemErrorMessage, Err: err}
}

// IsKind reports whether err carries an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// StatusOf returns the HTTP status for err, 500 for anything unclassified.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the client-safe message for err. Wrapped causes are never included.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return SystemErrorMessage
}
