package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/camburiu/acessoria-api/internal/api"
	"github.com/camburiu/acessoria-api/internal/api/handler"
	"github.com/camburiu/acessoria-api/internal/api/middleware"
	"github.com/camburiu/acessoria-api/internal/core/domain"
)

// newTestEcho returns an echo instance wired the same way the router wires
// production: request validator plus the centralized error handler.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	return e
}

// newJSONContext builds an echo context for a JSON request, optionally
// acting as the given authenticated user.
func newJSONContext(e *echo.Echo, method, target, body string, as *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if as != nil {
		c.Set(middleware.CurrentUserKey, as)
	}
	return c, rec
}

// run invokes the handler and routes any returned error through the
// centralized error handler, mirroring what echo does in production.
func run(e *echo.Echo, c echo.Context, h echo.HandlerFunc) {
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
}

var (
	testAdmin   = &domain.User{ID: 1, Name: "Ana", Email: "ana@camburiu.com.br", Status: domain.StatusAdmin}
	testRegular = &domain.User{ID: 2, Name: "Bruno", Email: "bruno@camburiu.com.br", Status: domain.StatusRegular}
)
