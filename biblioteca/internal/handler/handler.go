package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/duoc-capstone/biblioteca-service/docs"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/errs"
	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
	"github.com/duoc-capstone/biblioteca-service/pkg/auth"
	md "github.com/duoc-capstone/biblioteca-service/pkg/middleware"
	"github.com/duoc-capstone/biblioteca-service/pkg/validate"
)

type Handler struct {
	svc BibliotecaService
	log *zap.Logger
}

func New(svc BibliotecaService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/auth/register", h.Register)
	api.POST("/auth/activar", h.Activate)
	api.POST("/auth/login", h.Login)

	api.GET("/documentos", h.ListDocumentos)
	api.GET("/documentos/buscar", h.SearchDocumentos)
	api.GET("/documentos/buscar-por-isbn/:isbn", h.GetDocumentoByISBN)
	api.GET("/documentos/:id", h.GetDocumento)
	api.GET("/bibliotecas", h.ListBibliotecas)

	authed := api.Group("", md.JwtAuthentication)
	staff := authed.Group("", md.RoleRequired(string(model.RolAdmin), string(model.RolBibliotecario)))
	admin := authed.Group("", md.RoleRequired(string(model.RolAdmin)))

	admin.POST("/documentos", h.CreateDocumento)
	admin.PATCH("/documentos/:id", h.UpdateDocumento)
	admin.DELETE("/documentos/:id", h.DeleteDocumento)

	staff.POST("/ejemplares", h.CreateEjemplar)
	authed.GET("/ejemplares", h.ListEjemplares)
	staff.PATCH("/ejemplares/:id/estado", h.CambiarEstadoEjemplar)
	authed.GET("/ejemplares/:id/historial", h.GetHistorialEjemplar)

	admin.POST("/bibliotecas", h.CreateBiblioteca)
	admin.DELETE("/bibliotecas/:id", h.DeleteBiblioteca)

	staff.GET("/usuarios", h.GetUsuarioByRUT)
	staff.GET("/usuarios/:id", h.GetUsuario)
	authed.GET("/usuarios/:id/prestamos", h.HistorialPrestamos)
	admin.PATCH("/usuarios/:id/sancion", h.SetSancion)
	admin.DELETE("/usuarios/:id", h.DeleteUsuario)

	staff.POST("/prestamos/registrar", h.RegistrarPrestamo)
	staff.POST("/prestamos/registrar-desde-rut-isbn", h.RegistrarPrestamoPorRutISBN)
	staff.GET("/prestamos/buscar-por-isbn/:isbn", h.GetPrestamoPorISBN)
	staff.GET("/prestamos/activos", h.ListPrestamosActivos)
	staff.GET("/prestamos/vencidos", h.ListVencidos)
	staff.GET("/prestamos/estadisticas", h.PrestamoStats)
	staff.PATCH("/prestamos/:id/devolver", h.DevolverPrestamo)
	staff.PATCH("/prestamos/:id/cancelar", h.CancelarPrestamo)
	staff.PATCH("/prestamos/:id/notificado", h.MarkNotificado)
	staff.POST("/prestamos/notificar-vencidos", h.NotificarVencidos)

	authed.POST("/reservas", h.CrearReserva)
	authed.GET("/reservas", h.ListReservas)
	staff.PATCH("/reservas/:id/activar", h.ActivarReserva)
	staff.PATCH("/reservas/:id/completar", h.CompletarReserva)
	authed.PATCH("/reservas/:id/cancelar", h.CancelarReserva)

	authed.GET("/dashboard/stats", h.DashboardStats)
	admin.GET("/notificaciones", h.ListNotificaciones)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps the errs sentinels onto HTTP statuses; anything
// unknown is a 500.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrHasDependencies):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrCredenciales):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrUsuarioSancionado):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrUsuarioInactivo),
		errors.Is(err, errs.ErrPrestamosActivos),
		errors.Is(err, errs.ErrPrestamosVencidos),
		errors.Is(err, errs.ErrEjemplarNoDisponible),
		errors.Is(err, errs.ErrTransicionInvalida),
		errors.Is(err, errs.ErrPrestamoCerrado),
		errors.Is(err, errs.ErrPrestamoNoVencido),
		errors.Is(err, errs.ErrReservaCerrada),
		errors.Is(err, errs.ErrTokenUsado),
		errors.Is(err, errs.ErrTokenExpirado):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, errors.New("id is invalid")
	}
	return id, nil
}

func paging(c echo.Context) (page, size int, err error) {
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil {
			return 0, 0, errors.New("page is invalid")
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil {
			return 0, 0, errors.New("size is invalid")
		}
	}
	return page, size, nil
}

func actorID(c echo.Context) *int {
	if id, ok := auth.UserID(c.Request().Context()); ok {
		return &id
	}
	return nil
}
