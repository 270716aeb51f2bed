package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
)

func TestEstadoEjemplar_CanTransition(t *testing.T) {
	t.Parallel()
	tests := []struct {
		from, to model.EstadoEjemplar
		want     bool
	}{
		{model.EjemplarDisponible, model.EjemplarPrestado, true},
		{model.EjemplarDisponible, model.EjemplarEnSala, true},
		{model.EjemplarDisponible, model.EjemplarMantenimiento, true},
		{model.EjemplarDisponible, model.EjemplarBaja, true},
		{model.EjemplarDisponible, model.EjemplarDevuelto, false},
		{model.EjemplarPrestado, model.EjemplarDevuelto, true},
		{model.EjemplarPrestado, model.EjemplarBaja, false},
		{model.EjemplarEnSala, model.EjemplarDevuelto, true},
		{model.EjemplarDevuelto, model.EjemplarDisponible, true},
		{model.EjemplarDevuelto, model.EjemplarMantenimiento, true},
		{model.EjemplarDevuelto, model.EjemplarPrestado, false},
		{model.EjemplarMantenimiento, model.EjemplarDisponible, true},
		{model.EjemplarMantenimiento, model.EjemplarBaja, true},
		{model.EjemplarBaja, model.EjemplarDisponible, false},
		// self transition is a no-op, always allowed
		{model.EjemplarPrestado, model.EjemplarPrestado, true},
		{model.EjemplarBaja, model.EjemplarBaja, true},
	}
	for _, tt := range tests {
		require.Equalf(t, tt.want, tt.from.CanTransition(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestFechaDevolucion(t *testing.T) {
	t.Parallel()
	desde := time.Date(2024, time.March, 12, 10, 30, 0, 0, time.UTC)

	sala := model.FechaDevolucion(model.PrestamoSala, desde)
	require.Equal(t, time.Date(2024, time.March, 12, 20, 0, 0, 0, time.UTC), sala)

	domicilio := model.FechaDevolucion(model.PrestamoDomicilio, desde)
	require.Equal(t, desde.AddDate(0, 0, 7), domicilio)
}

func TestFormatRUT(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want string
	}{
		{"12.345.678-5", "12345678-5"},
		{"12345678-5", "12345678-5"},
		{"123456785", "12345678-5"},
		{"9.876.543-k", "9876543-K"},
		{"9876543K", "9876543-K"},
		{"", ""},
		{"5", "5"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, model.FormatRUT(tt.in), tt.in)
	}
}

func TestUsuario_Sancionado(t *testing.T) {
	t.Parallel()
	now := time.Now()

	var u model.Usuario
	require.False(t, u.Sancionado(now))

	past := now.Add(-time.Hour)
	u.SancionadoHasta = &past
	require.False(t, u.Sancionado(now))

	future := now.Add(time.Hour)
	u.SancionadoHasta = &future
	require.True(t, u.Sancionado(now))
}
