package services

import "errors"

// ErrValidation marks a rejected submission: required fields missing or
// malformed. Nothing is persisted and no audit entry is written for these.
var ErrValidation = errors.New("all required fields must be filled")

// ErrClearanceValidation is the clearance endpoint's variant of ErrValidation;
// that form reports missing fields with its own wording
var ErrClearanceValidation = errors.New("all fields are required")

// ErrInvalidContactNumber marks a contact number that is not exactly 11 digits
var ErrInvalidContactNumber = errors.New("contact number must be exactly 11 digits")

// ErrInvalidCredentials marks a failed login
var ErrInvalidCredentials = errors.New("invalid credentials")

// IsValidationError checks if an error is a submission validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrClearanceValidation) ||
		errors.Is(err, ErrInvalidContactNumber)
}
