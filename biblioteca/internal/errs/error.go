package errs

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already exists")
	ErrHasDependencies = errors.New("referenced by dependent rows")

	ErrEjemplarNoDisponible = errors.New("ejemplar is not available")
	ErrTransicionInvalida   = errors.New("estado transition is not allowed")

	ErrUsuarioInactivo   = errors.New("usuario is not activated")
	ErrUsuarioSancionado = errors.New("usuario is sanctioned")
	ErrPrestamosActivos  = errors.New("usuario has reached the active loans limit")
	ErrPrestamosVencidos = errors.New("usuario has overdue loans")
	ErrPrestamoCerrado   = errors.New("prestamo is not open")
	ErrPrestamoNoVencido = errors.New("prestamo is not vencido")
	ErrReservaCerrada    = errors.New("reserva is already closed")

	ErrTokenUsado    = errors.New("token already used")
	ErrTokenExpirado = errors.New("token expired")
	ErrCredenciales  = errors.New("invalid credentials")
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
