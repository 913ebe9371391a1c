package ports

import "context"

// AuthService authenticates credentials and issues bearer tokens.
type AuthService interface {
	// Login verifies the email/password pair and returns a signed token.
	// Fails with domain.ErrInvalidCredentials on any mismatch and with
	// domain.ErrTooManyAttempts when the account is throttled.
	Login(ctx context.Context, email, password string) (string, error)
}
