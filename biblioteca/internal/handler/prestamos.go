package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
)

func (h *Handler) RegistrarPrestamo(c echo.Context) error {
	var req model.PrestamoCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.BibliotecarioID == nil {
		req.BibliotecarioID = actorID(c)
	}
	prestamo, err := h.svc.RegistrarPrestamo(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, prestamo)
}

func (h *Handler) RegistrarPrestamoPorRutISBN(c echo.Context) error {
	var req model.PrestamoPorRutISBNRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	prestamo, err := h.svc.RegistrarPrestamoPorRutISBN(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, prestamo)
}

func (h *Handler) GetPrestamoPorISBN(c echo.Context) error {
	isbn := c.Param("isbn")
	if isbn == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("empty isbn"))
	}
	res, err := h.svc.GetPrestamoActivoPorISBN(c.Request().Context(), isbn)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) ListPrestamosActivos(c echo.Context) error {
	page, size, err := paging(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var usuarioID *int
	if param := c.QueryParam("usuarioId"); param != "" {
		id, err := strconv.Atoi(param)
		if err != nil || id <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("usuarioId is invalid"))
		}
		usuarioID = &id
	}
	prestamos, err := h.svc.ListPrestamosActivos(c.Request().Context(), usuarioID, page, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, prestamos)
}

// ListVencidos runs the overdue sweep before answering, so the listing
// always reflects the current clock.
func (h *Handler) ListVencidos(c echo.Context) error {
	prestamos, err := h.svc.SweepVencidos(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, prestamos)
}

func (h *Handler) HistorialPrestamos(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	page, size, err := paging(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	estado := model.EstadoPrestamo(c.QueryParam("estado"))
	if estado != "" && !estado.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("estado is invalid"))
	}
	prestamos, err := h.svc.HistorialPrestamos(c.Request().Context(), id, estado, page, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, prestamos)
}

func (h *Handler) DevolverPrestamo(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	prestamo, err := h.svc.DevolverPrestamo(c.Request().Context(), id, actorID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, prestamo)
}

func (h *Handler) CancelarPrestamo(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	prestamo, err := h.svc.CancelarPrestamo(c.Request().Context(), id, actorID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, prestamo)
}

func (h *Handler) MarkNotificado(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.MarkNotificado(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) NotificarVencidos(c echo.Context) error {
	encolados, err := h.svc.NotificarVencidos(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"encolados": encolados})
}

func (h *Handler) PrestamoStats(c echo.Context) error {
	stats, err := h.svc.PrestamoStats(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) DashboardStats(c echo.Context) error {
	stats, err := h.svc.DashboardStats(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
