package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle      = errors.New("title is required")
	ErrTitleTooLong    = errors.New("title must be 100 characters or fewer")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid task priority")

	ErrEmptyEmail    = errors.New("email is required")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrEmptyPassword = errors.New("password is required")
)
