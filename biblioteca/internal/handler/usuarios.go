package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
	"github.com/duoc-capstone/biblioteca-service/pkg/auth"
)

const tokenTTL = 24 * time.Hour

func (h *Handler) Register(c echo.Context) error {
	var req model.UsuarioCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	usuario, token, err := h.svc.RegisterUsuario(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	// The activation token travels by mail in production; it is echoed
	// here so the flow works without a mail gateway.
	return c.JSON(http.StatusCreated, echo.Map{
		"usuario": usuario,
		"token":   token.Token,
	})
}

func (h *Handler) Activate(c echo.Context) error {
	var req model.ActivacionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	usuario, err := h.svc.ActivateUsuario(c.Request().Context(), req.Token)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, usuario)
}

func (h *Handler) Login(c echo.Context) error {
	var req model.AuthRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	usuario, err := h.svc.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}
	claims := &auth.Claims{
		Profile: auth.Profile{
			Username: usuario.Email,
			Role:     string(usuario.Rol),
		},
		Email: usuario.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(usuario.ID),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(auth.JWTKey)
	if err != nil {
		return httpError(errors.Wrap(err, "sign token"))
	}
	return c.JSON(http.StatusOK, model.AuthResponse{Token: tokenString})
}

func (h *Handler) GetUsuario(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	usuario, err := h.svc.GetUsuario(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, usuario)
}

func (h *Handler) GetUsuarioByRUT(c echo.Context) error {
	rut := c.QueryParam("rut")
	if rut == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("rut is required"))
	}
	usuario, err := h.svc.GetUsuarioByRUT(c.Request().Context(), rut)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, usuario)
}

func (h *Handler) SetSancion(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.SancionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	usuario, err := h.svc.SetSancion(c.Request().Context(), id, req.Hasta)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, usuario)
}

func (h *Handler) DeleteUsuario(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.DeleteUsuario(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
