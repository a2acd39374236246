package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated is returned by guards when no valid session exists.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden is returned by guards when the session lacks the required role.
	ErrForbidden = errors.New("insufficient role")
	// ErrNotFound marks lookups the caller asked to treat as hard failures.
	ErrNotFound = errors.New("not found")
)

// BackendError is the backend's structured error envelope, preserved verbatim
// so the boundary closest to the user-facing action decides how to present it.
type BackendError struct {
	Status  int    `json:"status"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend: %s (%d): %s", e.Name, e.Status, e.Message)
}
