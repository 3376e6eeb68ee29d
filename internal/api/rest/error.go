package rest

import (
	"errors"
	"fmt"

	"github.com/savorly/savorly-client/internal/model"
)

// Error represents a non-2xx response from the remote service. Detail carries
// the server-provided message when the body contained one.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("service returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("service returned %d", e.StatusCode)
}

// Unwrap maps 401-class responses onto model.ErrUnauthorized so callers can
// match with errors.Is.
func (e *Error) Unwrap() error {
	if e.StatusCode == 401 || e.StatusCode == 403 {
		return model.ErrUnauthorized
	}
	return nil
}

// Detail extracts the server-provided detail message from err, if err is a
// service error that carried one. Returns "" otherwise.
func Detail(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}
