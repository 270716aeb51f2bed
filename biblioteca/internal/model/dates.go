package model

import "time"

const (
	diasPrestamoDomicilio = 7
	horaCierreSala        = 20
)

// FechaDevolucion computes a loan's due moment: home loans run a week,
// reading-room loans end at closing time the same day.
func FechaDevolucion(tipo TipoPrestamo, desde time.Time) time.Time {
	if tipo == PrestamoSala {
		return time.Date(desde.Year(), desde.Month(), desde.Day(), horaCierreSala, 0, 0, 0, desde.Location())
	}
	return desde.AddDate(0, 0, diasPrestamoDomicilio)
}
