package domain

import "errors"

var (
	// ErrConfig marks missing or unusable credentials. Reported once at
	// startup; the process keeps running so the UI can still be inspected.
	ErrConfig = errors.New("config error")

	// ErrValidation marks a user-correctable input problem.
	ErrValidation = errors.New("validation error")

	// ErrService marks a failed call to a remote API.
	ErrService = errors.New("service error")

	// ErrParse marks a malformed structured response from the completion service.
	ErrParse = errors.New("parse error")
)

// ValidationError builds an ErrValidation carrying a user-facing message.
func ValidationError(msg string) error {
	return validationError{msg: msg}
}

type validationError struct {
	msg string
}

func (e validationError) Error() string {
	return e.msg
}

func (e validationError) Is(target error) bool {
	return target == ErrValidation
}
