package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/camburiu/acessoria-api/internal/api/metrics"
	"github.com/camburiu/acessoria-api/internal/core/domain"
	"github.com/camburiu/acessoria-api/internal/core/ports"
	"github.com/camburiu/acessoria-api/internal/core/service"
)

// CurrentUserKey is the echo context key under which the authenticated
// account is stored for downstream handlers.
const CurrentUserKey = "currentUser"

// Auth validates the bearer token, resolves the account it names, and
// injects it into the request context. Any defect in the credential is
// rejected before the handler runs.
func Auth(codec *service.TokenCodec, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := authenticate(c, codec, users); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// OptionalAuth resolves the bearer token when one is present and lets
// anonymous requests through untouched. A header that is present but
// defective is still rejected; optional means absent, not broken.
func OptionalAuth(codec *service.TokenCodec, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") == "" {
				return next(c)
			}
			if err := authenticate(c, codec, users); err != nil {
				return err
			}
			return next(c)
		}
	}
}

func authenticate(c echo.Context, codec *service.TokenCodec, users ports.UserRepository) error {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
		return domain.ErrTokenInvalid
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
		return domain.ErrTokenInvalid
	}

	subject, err := codec.ParseSubject(parts[1])
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			metrics.AuthRejectionsTotal.WithLabelValues("token_expired").Inc()
			return domain.ErrTokenExpired
		}
		metrics.AuthRejectionsTotal.WithLabelValues("token_invalid").Inc()
		return domain.ErrTokenInvalid
	}

	user, err := users.FindByEmail(c.Request().Context(), subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.AuthRejectionsTotal.WithLabelValues("user_not_found").Inc()
			return echo.NewHTTPError(http.StatusUnauthorized, "USUARIO_NAO_ENCONTRADO")
		}
		return err
	}

	// Cross-check the token against the resolved account.
	if !codec.IsValid(parts[1], user) {
		metrics.AuthRejectionsTotal.WithLabelValues("token_invalid").Inc()
		return domain.ErrTokenInvalid
	}

	c.Set(CurrentUserKey, user)
	return nil
}
