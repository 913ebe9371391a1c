package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/camburiu/acessoria-api/internal/core/domain"
	"github.com/camburiu/acessoria-api/internal/core/ports"
)

// AuthService verifies credentials and issues bearer tokens. A nil throttle
// disables brute-force accounting.
type AuthService struct {
	users    ports.UserRepository
	codec    *TokenCodec
	hasher   *PasswordHasher
	throttle ports.LoginThrottle
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *TokenCodec, hasher *PasswordHasher, throttle ports.LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, hasher: hasher, throttle: throttle, logger: logger}
}

// Login checks the email/password pair against the stored hash and returns a
// signed token. A missing user and a wrong password are indistinguishable to
// the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		exceeded, err := s.throttle.Exceeded(ctx, email)
		if err != nil {
			s.logger.Warn().Err(err).Msg("login throttle unavailable")
		} else if exceeded {
			return "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.registerFailure(ctx, email)
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		s.registerFailure(ctx, email)
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.Email)
	if err != nil {
		return "", err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	s.logger.Info().Str("email", email).Msg("user authenticated")
	return token, nil
}

func (s *AuthService) registerFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RegisterFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle update failed")
	}
}
