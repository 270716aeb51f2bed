package service

import (
	"context"
	"time"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/errs"
	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
)

// RegistrarPrestamo enforces the borrowing rules before handing the
// checkout to the repository: the usuario must be activated, not
// sanctioned, under the active-loan limit and without overdue loans.
// Copy availability itself is checked under lock inside the checkout
// transaction.
func (s *Service) RegistrarPrestamo(ctx context.Context, req model.PrestamoCreateRequest) (model.Prestamo, error) {
	usuario, err := s.repo.GetUsuario(ctx, req.UsuarioID)
	if err != nil {
		return model.Prestamo{}, err
	}
	now := time.Now().UTC()
	if !usuario.Activo {
		return model.Prestamo{}, errs.ErrUsuarioInactivo
	}
	if usuario.Sancionado(now) {
		return model.Prestamo{}, errs.ErrUsuarioSancionado
	}

	activos, err := s.repo.CountPrestamos(ctx, req.UsuarioID, model.PrestamoActivo)
	if err != nil {
		return model.Prestamo{}, err
	}
	if activos >= maxPrestamosActivos {
		return model.Prestamo{}, errs.ErrPrestamosActivos
	}
	vencidos, err := s.repo.CountPrestamos(ctx, req.UsuarioID, model.PrestamoVencido)
	if err != nil {
		return model.Prestamo{}, err
	}
	if vencidos > 0 {
		return model.Prestamo{}, errs.ErrPrestamosVencidos
	}

	return s.repo.CreatePrestamo(ctx, req, model.FechaDevolucion(req.Tipo, now))
}

// RegistrarPrestamoPorRutISBN is the quick desk flow: usuario by RUT,
// documento by ISBN, first available ejemplar.
func (s *Service) RegistrarPrestamoPorRutISBN(ctx context.Context, req model.PrestamoPorRutISBNRequest) (model.Prestamo, error) {
	usuario, err := s.repo.GetUsuarioByRUT(ctx, req.RUT)
	if err != nil {
		return model.Prestamo{}, err
	}
	documento, err := s.repo.GetDocumentoByISBN(ctx, req.ISBN)
	if err != nil {
		return model.Prestamo{}, err
	}

	disponibles, err := s.repo.ListEjemplares(ctx, documento.ID, model.EjemplarDisponible)
	if err != nil {
		return model.Prestamo{}, err
	}
	if len(disponibles) == 0 {
		return model.Prestamo{}, errs.ErrEjemplarNoDisponible
	}

	bibliotecaID := 0
	if req.BibliotecaID != nil {
		bibliotecaID = *req.BibliotecaID
	} else {
		bibliotecas, err := s.repo.ListBibliotecas(ctx, true)
		if err != nil {
			return model.Prestamo{}, err
		}
		if len(bibliotecas) == 0 {
			return model.Prestamo{}, errs.ErrNotFound
		}
		bibliotecaID = bibliotecas[0].ID
	}

	tipo := req.Tipo
	if tipo == "" {
		tipo = model.PrestamoDomicilio
	}

	return s.RegistrarPrestamo(ctx, model.PrestamoCreateRequest{
		Tipo:         tipo,
		UsuarioID:    usuario.ID,
		BibliotecaID: bibliotecaID,
		EjemplarIDs:  []int{disponibles[0].ID},
	})
}

func (s *Service) GetPrestamoActivoPorISBN(ctx context.Context, isbn string) (model.PrestamoPorISBN, error) {
	return s.repo.GetPrestamoActivoPorISBN(ctx, isbn)
}

func (s *Service) ListPrestamosActivos(ctx context.Context, usuarioID *int, page, size int) (model.ListPrestamos, error) {
	return s.repo.ListPrestamosActivos(ctx, usuarioID, page, size)
}

func (s *Service) HistorialPrestamos(ctx context.Context, usuarioID int, estado model.EstadoPrestamo, page, size int) (model.ListPrestamos, error) {
	return s.repo.HistorialPrestamos(ctx, usuarioID, estado, page, size)
}

func (s *Service) DevolverPrestamo(ctx context.Context, id int, actorID *int) (model.Prestamo, error) {
	return s.repo.DevolverPrestamo(ctx, id, actorID)
}

func (s *Service) CancelarPrestamo(ctx context.Context, id int, actorID *int) (model.Prestamo, error) {
	return s.repo.CancelarPrestamo(ctx, id, actorID)
}

func (s *Service) SweepVencidos(ctx context.Context) ([]model.Prestamo, error) {
	return s.repo.SweepVencidos(ctx)
}

func (s *Service) MarkNotificado(ctx context.Context, id int) error {
	return s.repo.MarkNotificado(ctx, id)
}

func (s *Service) PrestamoStats(ctx context.Context) (model.PrestamoStats, error) {
	return s.repo.PrestamoStats(ctx)
}

func (s *Service) DashboardStats(ctx context.Context) (model.DashboardStats, error) {
	return s.repo.DashboardStats(ctx)
}
