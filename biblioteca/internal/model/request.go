package model

import "time"

type DocumentoCreateRequest struct {
	Tipo        string  `json:"tipo" validate:"required,oneof=libro audio video revista"`
	Titulo      string  `json:"titulo" validate:"required"`
	Autor       *string `json:"autor"`
	Editorial   *string `json:"editorial"`
	Resumen     *string `json:"resumen"`
	Link        *string `json:"link"`
	Anio        *int    `json:"anio"`
	Edicion     *string `json:"edicion"`
	Categoria   *string `json:"categoria"`
	TipoMedio   *string `json:"tipoMedio"`
	Existencias int     `json:"existencias" validate:"gte=0"`
}

// DocumentoUpdateRequest carries a partial update; nil fields are left
// untouched. disponible is generated and never writable.
type DocumentoUpdateRequest struct {
	Tipo      *string `json:"tipo"`
	Titulo    *string `json:"titulo"`
	Autor     *string `json:"autor"`
	Editorial *string `json:"editorial"`
	Resumen   *string `json:"resumen"`
	Link      *string `json:"link"`
	Anio      *int    `json:"anio"`
	Edicion   *string `json:"edicion"`
	Categoria *string `json:"categoria"`
	TipoMedio *string `json:"tipoMedio"`
}

type EjemplarCreateRequest struct {
	DocumentoID int     `json:"documentoId" validate:"required"`
	Codigo      string  `json:"codigo" validate:"required"`
	Ubicacion   *string `json:"ubicacion"`
}

type EjemplarEstadoRequest struct {
	Estado EstadoEjemplar `json:"estado" validate:"required,oneof=disponible prestado en_sala devuelto mantenimiento baja"`
	Motivo string         `json:"motivo" validate:"required"`
}

type UsuarioCreateRequest struct {
	RUT       string  `json:"rut" validate:"required"`
	Nombres   string  `json:"nombres" validate:"required"`
	Apellidos string  `json:"apellidos" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	FotoURL   *string `json:"fotoUrl"`
}

type ActivacionRequest struct {
	Token string `json:"token" validate:"required,uuid"`
}

type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

type SancionRequest struct {
	Hasta *time.Time `json:"hasta"`
}

type BibliotecaCreateRequest struct {
	Nombre    string  `json:"nombre" validate:"required"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
}

type PrestamoCreateRequest struct {
	Tipo            TipoPrestamo `json:"tipo" validate:"required,oneof=sala domicilio"`
	UsuarioID       int          `json:"usuarioId" validate:"required"`
	BibliotecaID    int          `json:"bibliotecaId" validate:"required"`
	BibliotecarioID *int         `json:"bibliotecarioId"`
	EjemplarIDs     []int        `json:"ejemplarIds" validate:"required,min=1,dive,gt=0"`
}

// PrestamoPorRutISBNRequest is the quick-checkout flow: resolve the
// usuario by RUT and the documento by ISBN, then lend one available
// ejemplar.
type PrestamoPorRutISBNRequest struct {
	RUT          string       `json:"rut" validate:"required"`
	ISBN         string       `json:"isbn" validate:"required"`
	Tipo         TipoPrestamo `json:"tipoPrestamo" validate:"omitempty,oneof=sala domicilio"`
	BibliotecaID *int         `json:"bibliotecaId"`
}

type ReservaCreateRequest struct {
	UsuarioID     int       `json:"usuarioId" validate:"required"`
	DocumentoID   int       `json:"documentoId" validate:"required"`
	FechaObjetivo time.Time `json:"fechaObjetivo" validate:"required"`
}

type ReservaCancelRequest struct {
	Motivo string `json:"motivo" validate:"required"`
}

type NotificacionMsg struct {
	PrestamoID   int    `json:"prestamoId"`
	Tipo         string `json:"tipo"`
	Destinatario string `json:"destinatario"`
	Asunto       string `json:"asunto"`
}

type PrestamoStats struct {
	TotalActivos    int `json:"total_activos" db:"total_activos"`
	TotalVencidos   int `json:"total_vencidos" db:"total_vencidos"`
	TotalDevueltos  int `json:"total_devueltos" db:"total_devueltos"`
	TotalSala       int `json:"total_sala" db:"total_sala"`
	TotalDomicilio  int `json:"total_domicilio" db:"total_domicilio"`
}

type DashboardStats struct {
	TotalLibros         int `json:"total_libros" db:"total_libros"`
	UsuariosRegistrados int `json:"usuarios_registrados" db:"usuarios_registrados"`
	PrestamosActivos    int `json:"prestamos_activos" db:"prestamos_activos"`
	PrestamosAtrasados  int `json:"prestamos_atrasados" db:"prestamos_atrasados"`
}

// PrestamoPorISBN is the lookup result for the return desk: the active
// or overdue prestamo attached to a documento's ISBN, with the usuario
// and documento it involves.
type PrestamoPorISBN struct {
	Prestamo  Prestamo  `json:"prestamo"`
	Usuario   Usuario   `json:"usuario"`
	Documento Documento `json:"documento"`
	Vencido   bool      `json:"vencido"`
}
