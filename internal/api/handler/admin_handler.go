package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/camburiu/acessoria-api/internal/core/domain"
	"github.com/camburiu/acessoria-api/internal/core/ports"
)

// AdminHandler exposes the administrator views over the user table.
// Administrators are regular user rows with status 1; these routes filter
// on that status and force it on creation.
type AdminHandler struct {
	service ports.UserService
}

func NewAdminHandler(service ports.UserService) *AdminHandler {
	return &AdminHandler{service: service}
}

// List handles GET /administradores.
//
// @Summary      List administrator accounts
// @Tags         administradores
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  map[string]string
// @Router       /administradores [get]
func (h *AdminHandler) List(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	admins, err := h.service.ListAdmins(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admins)
}

// Get handles GET /administradores/:id. A regular account's id yields 404
// here even though it exists under /usuarios.
//
// @Summary      Get an administrator by id
// @Tags         administradores
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Administrator id"
// @Success      200  {object}  domain.User
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /administradores/{id} [get]
func (h *AdminHandler) Get(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	admin, err := h.service.GetAdmin(c.Request().Context(), caller, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admin)
}

// Create handles POST /administradores.
//
// @Summary      Create an administrator account
// @Tags         administradores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAdminRequest  true  "Administrator details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /administradores [post]
func (h *AdminHandler) Create(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	admin, err := h.service.CreateAdmin(c.Request().Context(), caller, ports.CreateUserInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Status:      domain.StatusAdmin,
		AccessLevel: req.AccessLevel,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, admin)
}
