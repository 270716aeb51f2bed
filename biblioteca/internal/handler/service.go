package handler

import (
	"context"
	"time"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BibliotecaService interface {
	CreateDocumento(ctx context.Context, req model.DocumentoCreateRequest) (model.Documento, error)
	GetDocumento(ctx context.Context, id int) (model.Documento, error)
	GetDocumentoByISBN(ctx context.Context, isbn string) (model.Documento, error)
	ListDocumentos(ctx context.Context, tipo, categoria string, page, size int) (model.ListDocumentos, error)
	SearchDocumentos(ctx context.Context, termino string, page, size int) (model.ListDocumentos, error)
	UpdateDocumento(ctx context.Context, id int, req model.DocumentoUpdateRequest) (model.Documento, error)
	DeleteDocumento(ctx context.Context, id int) error

	CreateEjemplar(ctx context.Context, req model.EjemplarCreateRequest) (model.Ejemplar, error)
	ListEjemplares(ctx context.Context, documentoID int, estado model.EstadoEjemplar) ([]model.Ejemplar, error)
	CambiarEstadoEjemplar(ctx context.Context, id int, nuevo model.EstadoEjemplar, actorID *int, motivo string) (model.Ejemplar, error)
	GetHistorialEjemplar(ctx context.Context, ejemplarID int) ([]model.HistorialEjemplar, error)

	CreateBiblioteca(ctx context.Context, req model.BibliotecaCreateRequest) (model.Biblioteca, error)
	ListBibliotecas(ctx context.Context, soloActivas bool) ([]model.Biblioteca, error)
	DeleteBiblioteca(ctx context.Context, id int) error

	RegisterUsuario(ctx context.Context, req model.UsuarioCreateRequest) (model.Usuario, model.TokenValidacion, error)
	ActivateUsuario(ctx context.Context, token string) (model.Usuario, error)
	Authenticate(ctx context.Context, email, password string) (model.Usuario, error)
	GetUsuario(ctx context.Context, id int) (model.Usuario, error)
	GetUsuarioByRUT(ctx context.Context, rut string) (model.Usuario, error)
	SetSancion(ctx context.Context, id int, hasta *time.Time) (model.Usuario, error)
	DeleteUsuario(ctx context.Context, id int) error

	RegistrarPrestamo(ctx context.Context, req model.PrestamoCreateRequest) (model.Prestamo, error)
	RegistrarPrestamoPorRutISBN(ctx context.Context, req model.PrestamoPorRutISBNRequest) (model.Prestamo, error)
	GetPrestamoActivoPorISBN(ctx context.Context, isbn string) (model.PrestamoPorISBN, error)
	ListPrestamosActivos(ctx context.Context, usuarioID *int, page, size int) (model.ListPrestamos, error)
	HistorialPrestamos(ctx context.Context, usuarioID int, estado model.EstadoPrestamo, page, size int) (model.ListPrestamos, error)
	DevolverPrestamo(ctx context.Context, id int, actorID *int) (model.Prestamo, error)
	CancelarPrestamo(ctx context.Context, id int, actorID *int) (model.Prestamo, error)
	SweepVencidos(ctx context.Context) ([]model.Prestamo, error)
	MarkNotificado(ctx context.Context, id int) error
	PrestamoStats(ctx context.Context) (model.PrestamoStats, error)
	DashboardStats(ctx context.Context) (model.DashboardStats, error)

	CrearReserva(ctx context.Context, req model.ReservaCreateRequest) (model.Reserva, error)
	ListReservas(ctx context.Context, usuarioID int) ([]model.Reserva, error)
	ActivarReserva(ctx context.Context, id int) (model.Reserva, error)
	CompletarReserva(ctx context.Context, id int) (model.Reserva, error)
	CancelarReserva(ctx context.Context, id int, motivo string) (model.Reserva, error)

	NotificarVencidos(ctx context.Context) (int, error)
	ListNotificaciones(ctx context.Context, page, size int) (model.ListNotificaciones, error)
}

var _ BibliotecaService = (*service.Service)(nil)
