package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/camburiu/acessoria-api/internal/api/metrics"
	"github.com/camburiu/acessoria-api/internal/core/ports"
)

// VehicleHandler handles HTTP requests for vehicle records.
type VehicleHandler struct {
	service ports.VehicleService
}

func NewVehicleHandler(service ports.VehicleService) *VehicleHandler {
	return &VehicleHandler{service: service}
}

type vehicleRequest struct {
	Plate    string `json:"placa"     validate:"required"`
	Renavam  string `json:"renavam"   validate:"required"`
	ClientID int64  `json:"clienteId" validate:"required"`
}

// List handles GET /veiculos.
//
// @Summary      List all vehicles
// @Tags         veiculos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Vehicle
// @Failure      403  {object}  map[string]string
// @Router       /veiculos [get]
func (h *VehicleHandler) List(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	vehicles, err := h.service.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vehicles)
}

// Get handles GET /veiculos/:id.
//
// @Summary      Get a vehicle by id
// @Tags         veiculos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Vehicle id"
// @Success      200  {object}  domain.Vehicle
// @Failure      404  {object}  map[string]string
// @Router       /veiculos/{id} [get]
func (h *VehicleHandler) Get(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	vehicle, err := h.service.Get(c.Request().Context(), caller, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vehicle)
}

// Create handles POST /veiculos. The renewal due date is derived from the
// plate's last digit and returned in the payload as vencimento.
//
// @Summary      Register a vehicle
// @Tags         veiculos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      vehicleRequest  true  "Vehicle details"
// @Success      201   {object}  domain.Vehicle
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /veiculos [post]
func (h *VehicleHandler) Create(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	var req vehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	vehicle, err := h.service.Create(c.Request().Context(), caller, ports.CreateVehicleInput{
		Plate:    req.Plate,
		Renavam:  req.Renavam,
		ClientID: req.ClientID,
	})
	if err != nil {
		return err
	}

	metrics.VehiclesCreatedTotal.
		WithLabelValues(strconv.Itoa(int(vehicle.DueDate.Month()))).Inc()

	return c.JSON(http.StatusCreated, vehicle)
}

// Update handles PUT /veiculos/:id. Changing the plate recomputes the due date.
//
// @Summary      Update a vehicle
// @Tags         veiculos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Vehicle id"
// @Param        body  body      vehicleRequest  true  "Vehicle details"
// @Success      200   {object}  domain.Vehicle
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /veiculos/{id} [put]
func (h *VehicleHandler) Update(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req vehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	vehicle, err := h.service.Update(c.Request().Context(), caller, id, ports.CreateVehicleInput{
		Plate:    req.Plate,
		Renavam:  req.Renavam,
		ClientID: req.ClientID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vehicle)
}

// Delete handles DELETE /veiculos/:id. The owning client is untouched.
//
// @Summary      Delete a vehicle
// @Tags         veiculos
// @Security     BearerAuth
// @Param        id  path  int  true  "Vehicle id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /veiculos/{id} [delete]
func (h *VehicleHandler) Delete(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
