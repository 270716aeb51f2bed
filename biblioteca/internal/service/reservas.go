package service

import (
	"context"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/errs"
	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
)

func (s *Service) CrearReserva(ctx context.Context, req model.ReservaCreateRequest) (model.Reserva, error) {
	if _, err := s.repo.GetDocumento(ctx, req.DocumentoID); err != nil {
		return model.Reserva{}, err
	}
	return s.repo.CreateReserva(ctx, req)
}

func (s *Service) ListReservas(ctx context.Context, usuarioID int) ([]model.Reserva, error) {
	return s.repo.ListReservas(ctx, usuarioID)
}

// ActivarReserva moves a pendiente hold to activa once the documento
// has stock again.
func (s *Service) ActivarReserva(ctx context.Context, id int) (model.Reserva, error) {
	reserva, err := s.repo.GetReserva(ctx, id)
	if err != nil {
		return model.Reserva{}, err
	}
	if reserva.Estado != model.ReservaPendiente {
		return model.Reserva{}, errs.ErrReservaCerrada
	}
	documento, err := s.repo.GetDocumento(ctx, reserva.DocumentoID)
	if err != nil {
		return model.Reserva{}, err
	}
	if !documento.Disponible {
		return model.Reserva{}, errs.ErrEjemplarNoDisponible
	}
	return s.repo.UpdateReservaEstado(ctx, id, model.ReservaActiva, nil)
}

func (s *Service) CompletarReserva(ctx context.Context, id int) (model.Reserva, error) {
	reserva, err := s.repo.GetReserva(ctx, id)
	if err != nil {
		return model.Reserva{}, err
	}
	if reserva.Estado != model.ReservaActiva {
		return model.Reserva{}, errs.ErrReservaCerrada
	}
	return s.repo.UpdateReservaEstado(ctx, id, model.ReservaCompletada, nil)
}

func (s *Service) CancelarReserva(ctx context.Context, id int, motivo string) (model.Reserva, error) {
	reserva, err := s.repo.GetReserva(ctx, id)
	if err != nil {
		return model.Reserva{}, err
	}
	if reserva.Estado != model.ReservaPendiente && reserva.Estado != model.ReservaActiva {
		return model.Reserva{}, errs.ErrReservaCerrada
	}
	return s.repo.UpdateReservaEstado(ctx, id, model.ReservaCancelada, &motivo)
}
