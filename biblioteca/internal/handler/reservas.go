package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
)

func (h *Handler) CrearReserva(c echo.Context) error {
	var req model.ReservaCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	reserva, err := h.svc.CrearReserva(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, reserva)
}

func (h *Handler) ListReservas(c echo.Context) error {
	usuarioID, err := strconv.Atoi(c.QueryParam("usuarioId"))
	if err != nil || usuarioID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("usuarioId is invalid"))
	}
	reservas, err := h.svc.ListReservas(c.Request().Context(), usuarioID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reservas)
}

func (h *Handler) ActivarReserva(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	reserva, err := h.svc.ActivarReserva(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reserva)
}

func (h *Handler) CompletarReserva(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	reserva, err := h.svc.CompletarReserva(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reserva)
}

func (h *Handler) CancelarReserva(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.ReservaCancelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	reserva, err := h.svc.CancelarReserva(c.Request().Context(), id, req.Motivo)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reserva)
}
