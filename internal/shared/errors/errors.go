package errors

import "errors"

// Sentinel errors shared across modules
var (
	ErrMissingAviasalesToken = errors.New("aviasales_token is required")
	ErrUserNotFound          = errors.New("user not found")
	ErrStateNotFound         = errors.New("state not found")
)
