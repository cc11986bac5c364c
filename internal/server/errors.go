// Package server provides the HTTP API for the job chat agent.
package server

import (
	"fmt"
	"net/http"
)

// ErrProfileNotFound indicates no profile exists for the requested user
type ErrProfileNotFound struct {
	UserID string
}

func (e *ErrProfileNotFound) Error() string {
	return fmt.Sprintf("user profile not found: %s", e.UserID)
}

// ErrStorageUnavailable indicates the profile store could not be reached.
// Kept distinct from ErrProfileNotFound so the handler can answer 503
// instead of 404.
type ErrStorageUnavailable struct {
	Cause error
}

func (e *ErrStorageUnavailable) Error() string {
	return fmt.Sprintf("storage unavailable: %v", e.Cause)
}

func (e *ErrStorageUnavailable) Unwrap() error {
	return e.Cause
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrProfileNotFound:
		return http.StatusNotFound
	case *ErrStorageUnavailable:
		return http.StatusServiceUnavailable
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
