package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/camburiu/acessoria-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status and stable error code.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<CODE>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic status and error code.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "USUARIO_INCORRETO"
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, "TOKEN_EXPIRADO"
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, "TOKEN_INVALIDO"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "ACESSO_NEGADO"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "USUARIO_NAO_ENCONTRADO"
	case errors.Is(err, domain.ErrClientNotFound):
		return http.StatusNotFound, "CLIENTE_NAO_ENCONTRADO"
	case errors.Is(err, domain.ErrVehicleNotFound):
		return http.StatusNotFound, "VEICULO_NAO_ENCONTRADO"
	case errors.Is(err, domain.ErrDuplicate):
		return http.StatusConflict, "REGISTRO_DUPLICADO"
	case errors.Is(err, domain.ErrInvalidPlate):
		return http.StatusBadRequest, "PLACA_INVALIDA"
	case errors.Is(err, domain.ErrPasswordTooShort):
		return http.StatusBadRequest, "SENHA_CURTA"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "TENTATIVAS_EXCEDIDAS"
	}

	// Unexpected error: log the real cause, return a generic code.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "ERRO_INTERNO"
}
