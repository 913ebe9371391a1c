package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/camburiu/acessoria-api/internal/api/middleware"
	"github.com/camburiu/acessoria-api/internal/core/domain"
)

// currentUser extracts the account injected by the Auth middleware and
// performs a fast-fail check before any service call: its presence proves
// the middleware ran. A protected handler reached without one means the
// route is miswired, so the request is rejected outright.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.CurrentUserKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "TOKEN_INVALIDO")
	}
	return user, nil
}

// optionalUser returns the account injected by OptionalAuth, or nil for an
// anonymous request.
func optionalUser(c echo.Context) *domain.User {
	user, _ := c.Get(middleware.CurrentUserKey).(*domain.User)
	return user
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "identificador inválido")
	}
	return id, nil
}
