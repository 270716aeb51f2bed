package model

import (
	"time"
)

type TipoPrestamo string

const (
	PrestamoSala      TipoPrestamo = "sala"
	PrestamoDomicilio TipoPrestamo = "domicilio"
)

func (t TipoPrestamo) Valid() bool {
	return t == PrestamoSala || t == PrestamoDomicilio
}

type EstadoPrestamo string

const (
	PrestamoActivo    EstadoPrestamo = "activo"
	PrestamoDevuelto  EstadoPrestamo = "devuelto"
	PrestamoVencido   EstadoPrestamo = "vencido"
	PrestamoCancelado EstadoPrestamo = "cancelado"
)

func (e EstadoPrestamo) Valid() bool {
	switch e {
	case PrestamoActivo, PrestamoDevuelto, PrestamoVencido, PrestamoCancelado:
		return true
	}
	return false
}

type EstadoReserva string

const (
	ReservaPendiente  EstadoReserva = "pendiente"
	ReservaActiva     EstadoReserva = "activa"
	ReservaCancelada  EstadoReserva = "cancelada"
	ReservaCompletada EstadoReserva = "completada"
)

type EstadoEjemplar string

const (
	EjemplarDisponible    EstadoEjemplar = "disponible"
	EjemplarPrestado      EstadoEjemplar = "prestado"
	EjemplarEnSala        EstadoEjemplar = "en_sala"
	EjemplarDevuelto      EstadoEjemplar = "devuelto"
	EjemplarMantenimiento EstadoEjemplar = "mantenimiento"
	EjemplarBaja          EstadoEjemplar = "baja"
)

// transiciones is the copy lifecycle: the loan cycle
// disponible -> prestado/en_sala -> devuelto -> disponible, plus the
// administrative side path through mantenimiento. baja is terminal.
var transiciones = map[EstadoEjemplar][]EstadoEjemplar{
	EjemplarDisponible:    {EjemplarPrestado, EjemplarEnSala, EjemplarMantenimiento, EjemplarBaja},
	EjemplarPrestado:      {EjemplarDevuelto},
	EjemplarEnSala:        {EjemplarDevuelto},
	EjemplarDevuelto:      {EjemplarDisponible, EjemplarMantenimiento},
	EjemplarMantenimiento: {EjemplarDisponible, EjemplarBaja},
	EjemplarBaja:          {},
}

func (e EstadoEjemplar) Valid() bool {
	_, ok := transiciones[e]
	return ok
}

// CanTransition reports whether the estado may move to the given one.
// A no-op transition is allowed here; the repository skips the write.
func (e EstadoEjemplar) CanTransition(to EstadoEjemplar) bool {
	if e == to {
		return true
	}
	for _, next := range transiciones[e] {
		if next == to {
			return true
		}
	}
	return false
}

type RolUsuario string

const (
	RolUsuarioComun  RolUsuario = "usuario"
	RolAdmin         RolUsuario = "admin"
	RolBibliotecario RolUsuario = "bibliotecario"
)

type Biblioteca struct {
	ID        int       `json:"id" db:"id"`
	Nombre    string    `json:"nombre" db:"nombre"`
	Direccion *string   `json:"direccion" db:"direccion"`
	Telefono  *string   `json:"telefono" db:"telefono"`
	Activo    bool      `json:"activo" db:"activo"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type Usuario struct {
	ID              int        `json:"id" db:"id"`
	RUT             string     `json:"rut" db:"rut"`
	Nombres         string     `json:"nombres" db:"nombres"`
	Apellidos       string     `json:"apellidos" db:"apellidos"`
	Email           string     `json:"email" db:"email"`
	PasswordHash    string     `json:"-" db:"password_hash"`
	Rol             RolUsuario `json:"rol" db:"rol"`
	Activo          bool       `json:"activo" db:"activo"`
	SancionadoHasta *time.Time `json:"sancionadoHasta" db:"sancionado_hasta"`
	FotoURL         *string    `json:"fotoUrl" db:"foto_url"`
	HuellaDactilar  []byte     `json:"-" db:"huella_dactilar"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}

// Sancionado reports whether the usuario is currently suspended from
// borrowing.
func (u Usuario) Sancionado(now time.Time) bool {
	return u.SancionadoHasta != nil && now.Before(*u.SancionadoHasta)
}

type TokenValidacion struct {
	ID        int       `json:"id" db:"id"`
	UsuarioID int       `json:"usuarioId" db:"usuario_id"`
	Token     string    `json:"token" db:"token"`
	ExpiraEn  time.Time `json:"expiraEn" db:"expira_en"`
	Usado     bool      `json:"usado" db:"usado"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Documento struct {
	ID          int       `json:"id" db:"id"`
	Tipo        string    `json:"tipo" db:"tipo"`
	Titulo      string    `json:"titulo" db:"titulo"`
	Autor       *string   `json:"autor" db:"autor"`
	Editorial   *string   `json:"editorial" db:"editorial"`
	Resumen     *string   `json:"resumen" db:"resumen"`
	Link        *string   `json:"link" db:"link"`
	Anio        *int      `json:"anio" db:"anio"`
	Edicion     *string   `json:"edicion" db:"edicion"`
	Categoria   *string   `json:"categoria" db:"categoria"`
	TipoMedio   *string   `json:"tipoMedio" db:"tipo_medio"`
	Existencias int       `json:"existencias" db:"existencias"`
	Disponible  bool      `json:"disponible" db:"disponible"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type Ejemplar struct {
	ID          int            `json:"id" db:"id"`
	DocumentoID int            `json:"documentoId" db:"documento_id"`
	Codigo      string         `json:"codigo" db:"codigo"`
	Estado      EstadoEjemplar `json:"estado" db:"estado"`
	Ubicacion   *string        `json:"ubicacion" db:"ubicacion"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}

type HistorialEjemplar struct {
	ID             int            `json:"id" db:"id"`
	EjemplarID     int            `json:"ejemplarId" db:"ejemplar_id"`
	EstadoAnterior EstadoEjemplar `json:"estadoAnterior" db:"estado_anterior"`
	EstadoNuevo    EstadoEjemplar `json:"estadoNuevo" db:"estado_nuevo"`
	UsuarioID      *int           `json:"usuarioId" db:"usuario_id"`
	Motivo         *string        `json:"motivo" db:"motivo"`
	CreatedAt      time.Time      `json:"createdAt" db:"created_at"`
}

type Reserva struct {
	ID                int           `json:"id" db:"id"`
	UsuarioID         int           `json:"usuarioId" db:"usuario_id"`
	DocumentoID       int           `json:"documentoId" db:"documento_id"`
	FechaReserva      time.Time     `json:"fechaReserva" db:"fecha_reserva"`
	FechaObjetivo     time.Time     `json:"fechaObjetivo" db:"fecha_objetivo"`
	Estado            EstadoReserva `json:"estado" db:"estado"`
	MotivoCancelacion *string       `json:"motivoCancelacion" db:"motivo_cancelacion"`
	CreatedAt         time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time     `json:"updatedAt" db:"updated_at"`
}

type Prestamo struct {
	ID                      int            `json:"id" db:"id"`
	Tipo                    TipoPrestamo   `json:"tipo" db:"tipo"`
	UsuarioID               int            `json:"usuarioId" db:"usuario_id"`
	BibliotecaID            int            `json:"bibliotecaId" db:"biblioteca_id"`
	BibliotecarioID         *int           `json:"bibliotecarioId" db:"bibliotecario_id"`
	FechaPrestamo           time.Time      `json:"fechaPrestamo" db:"fecha_prestamo"`
	FechaDevolucionEstimada time.Time      `json:"fechaDevolucionEstimada" db:"fecha_devolucion_estimada"`
	FechaDevolucionReal     *time.Time     `json:"fechaDevolucionReal" db:"fecha_devolucion_real"`
	Estado                  EstadoPrestamo `json:"estado" db:"estado"`
	Notificado              bool           `json:"notificado" db:"notificado"`
	CreatedAt               time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt               time.Time      `json:"updatedAt" db:"updated_at"`
}

type DetallePrestamo struct {
	ID         int       `json:"id" db:"id"`
	PrestamoID int       `json:"prestamoId" db:"prestamo_id"`
	EjemplarID int       `json:"ejemplarId" db:"ejemplar_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type Notificacion struct {
	ID           int       `json:"id" db:"id"`
	Tipo         string    `json:"tipo" db:"tipo"`
	Destinatario string    `json:"destinatario" db:"destinatario"`
	Asunto       string    `json:"asunto" db:"asunto"`
	PrestamoID   *int      `json:"prestamoId" db:"prestamo_id"`
	Exito        bool      `json:"exito" db:"exito"`
	Error        *string   `json:"error" db:"error"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// PrestamoNotificacion is an overdue prestamo joined with the email of
// the usuario to notify.
type PrestamoNotificacion struct {
	Prestamo
	Email string `json:"email" db:"email"`
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListDocumentos struct {
	Paging `json:",inline"`
	Items  []Documento `json:"items"`
}

type ListPrestamos struct {
	Paging `json:",inline"`
	Items  []Prestamo `json:"items"`
}

type ListNotificaciones struct {
	Paging `json:",inline"`
	Items  []Notificacion `json:"items"`
}
