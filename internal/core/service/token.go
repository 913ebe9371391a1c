package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/camburiu/acessoria-api/internal/core/domain"
)

// TokenCodec issues and verifies HS256-signed bearer tokens. The subject is
// the user's email; expiry is fixed at issuance time plus the configured
// lifetime.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given subject email.
func (tc *TokenCodec) Issue(email string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tc.ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(tc.secret)
}

// ParseSubject verifies signature and expiry and returns the embedded subject.
// Fails with domain.ErrTokenExpired when the lifetime has elapsed and with
// domain.ErrTokenInvalid on any structural or signature problem.
func (tc *TokenCodec) ParseSubject(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return tc.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.Subject, nil
}

// IsValid cross-checks the token against a freshly loaded user: the subject
// must match the user's email and the token must not be expired. Used as a
// defense-in-depth re-check after ParseSubject.
func (tc *TokenCodec) IsValid(token string, user *domain.User) bool {
	if user == nil {
		return false
	}
	subject, err := tc.ParseSubject(token)
	return err == nil && subject == user.Email
}
