package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ListNotificaciones(c echo.Context) error {
	page, size, err := paging(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	notificaciones, err := h.svc.ListNotificaciones(c.Request().Context(), page, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, notificaciones)
}
