package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
)

func (h *Handler) CreateDocumento(c echo.Context) error {
	var req model.DocumentoCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	doc, err := h.svc.CreateDocumento(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, doc)
}

func (h *Handler) GetDocumento(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	doc, err := h.svc.GetDocumento(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *Handler) GetDocumentoByISBN(c echo.Context) error {
	isbn := c.Param("isbn")
	if isbn == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("empty isbn"))
	}
	doc, err := h.svc.GetDocumentoByISBN(c.Request().Context(), isbn)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *Handler) ListDocumentos(c echo.Context) error {
	page, size, err := paging(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	docs, err := h.svc.ListDocumentos(c.Request().Context(), c.QueryParam("tipo"), c.QueryParam("categoria"), page, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, docs)
}

func (h *Handler) SearchDocumentos(c echo.Context) error {
	termino := c.QueryParam("termino")
	if termino == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("termino is required"))
	}
	page, size, err := paging(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	docs, err := h.svc.SearchDocumentos(c.Request().Context(), termino, page, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, docs)
}

func (h *Handler) UpdateDocumento(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.DocumentoUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	doc, err := h.svc.UpdateDocumento(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *Handler) DeleteDocumento(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.DeleteDocumento(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CreateEjemplar(c echo.Context) error {
	var req model.EjemplarCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	ejemplar, err := h.svc.CreateEjemplar(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, ejemplar)
}

func (h *Handler) ListEjemplares(c echo.Context) error {
	documentoID, err := strconv.Atoi(c.QueryParam("documentoId"))
	if err != nil || documentoID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("documentoId is invalid"))
	}
	estado := model.EstadoEjemplar(c.QueryParam("estado"))
	if estado != "" && !estado.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("estado is invalid"))
	}
	ejemplares, err := h.svc.ListEjemplares(c.Request().Context(), documentoID, estado)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ejemplares)
}

func (h *Handler) CambiarEstadoEjemplar(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.EjemplarEstadoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	ejemplar, err := h.svc.CambiarEstadoEjemplar(c.Request().Context(), id, req.Estado, actorID(c), req.Motivo)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ejemplar)
}

func (h *Handler) GetHistorialEjemplar(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	historial, err := h.svc.GetHistorialEjemplar(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, historial)
}

func (h *Handler) CreateBiblioteca(c echo.Context) error {
	var req model.BibliotecaCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	biblioteca, err := h.svc.CreateBiblioteca(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, biblioteca)
}

func (h *Handler) ListBibliotecas(c echo.Context) error {
	soloActivas := true
	if param := c.QueryParam("todas"); param != "" {
		all, err := strconv.ParseBool(param)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("todas is invalid"))
		}
		soloActivas = !all
	}
	bibliotecas, err := h.svc.ListBibliotecas(c.Request().Context(), soloActivas)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bibliotecas)
}

func (h *Handler) DeleteBiblioteca(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.DeleteBiblioteca(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
