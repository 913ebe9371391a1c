package ports

import "context"

// LoginThrottle counts failed login attempts per account to slow down
// online brute force. Implementations keep a fixed-window counter.
type LoginThrottle interface {
	// Exceeded reports whether the account has hit its failure budget.
	Exceeded(ctx context.Context, email string) (bool, error)
	// RegisterFailure records one failed attempt.
	RegisterFailure(ctx context.Context, email string) error
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, email string) error
}
