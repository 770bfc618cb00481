package service

import "errors"

// Validation errors (400).
var (
	ErrMissingFields    = errors.New("missing required fields")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidActivity  = errors.New("invalid activity type")
	ErrInvalidCategory  = errors.New("invalid category")
)

var (
	ErrRegistrationFailed   = errors.New("registration failed: username or email already exists")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrSessionInvalid       = errors.New("session invalid or expired")
	ErrEmailMismatch        = errors.New("email does not match")
	ErrForbidden            = errors.New("forbidden")
	ErrUserNotFound         = errors.New("user not found")
	ErrItemNotFound         = errors.New("catalog item not found")
	ErrLogNotFound          = errors.New("activity log not found")
	ErrInternalServer       = errors.New("internal server error")
)
