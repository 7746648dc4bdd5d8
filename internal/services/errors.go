package services

import (
	"errors"
	"strings"
)

// Error variables shared across services, mapped to HTTP statuses at the
// handler boundary.
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrUserNotFound         = errors.New("user not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrChannelNotFound      = errors.New("payment channel not found")
	ErrVerificationNotFound = errors.New("verification not found")
	ErrIntakeNotFound       = errors.New("trusted intake not found")

	ErrForbidden       = errors.New("forbidden")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrInvalidDecision = errors.New("decision must be APPROVED or REJECTED")
	ErrEmptyMessage    = errors.New("message must have content or an image")
)

// ValidationError reports the missing/invalid input fields of a request.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}
