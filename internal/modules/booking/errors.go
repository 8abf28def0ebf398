package booking

import "errors"

var (
	ErrValidation           = errors.New("validation error")
	ErrCarNotFound          = errors.New("car not found")
	ErrAttemptNotFound      = errors.New("booking attempt not found")
	ErrInvalidTransition    = errors.New("invalid attempt state transition")
	ErrIncompleteDetails    = errors.New("customer details are incomplete")
	ErrVerificationMismatch = errors.New("verification input does not match the total")
)
