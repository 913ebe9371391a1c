package domain

import "errors"

// Sentinel errors resolved to HTTP responses by the API error handler.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenExpired       = errors.New("token expired")
	ErrForbidden          = errors.New("access forbidden")
	ErrTooManyAttempts    = errors.New("too many login attempts")

	ErrUserNotFound    = errors.New("user not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrVehicleNotFound = errors.New("vehicle not found")

	ErrDuplicate        = errors.New("duplicate record")
	ErrInvalidPlate     = errors.New("invalid plate")
	ErrPasswordTooShort = errors.New("password too short")
)
