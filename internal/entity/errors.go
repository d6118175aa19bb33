package entity

import (
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("validation error")
	ErrNotFound            = errors.New("not found")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrRemoteUnavailable   = errors.New("payment service unavailable")
)

// RemoteError is returned when the payment service answered with a non-2xx status.
type RemoteError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("payment service responded %d %s: %s", e.StatusCode, e.Status, e.Body)
}
