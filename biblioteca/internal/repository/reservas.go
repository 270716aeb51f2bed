package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
)

type ReservaRepository interface {
	CreateReserva(ctx context.Context, req model.ReservaCreateRequest) (model.Reserva, error)
	GetReserva(ctx context.Context, id int) (model.Reserva, error)
	ListReservas(ctx context.Context, usuarioID int) ([]model.Reserva, error)
	UpdateReservaEstado(ctx context.Context, id int, estado model.EstadoReserva, motivoCancelacion *string) (model.Reserva, error)
}

func (r *repository) CreateReserva(ctx context.Context, req model.ReservaCreateRequest) (model.Reserva, error) {
	query, args, err := qb.Insert(reservasTableName).
		Columns("usuario_id", "documento_id", "fecha_reserva", "fecha_objetivo").
		Values(req.UsuarioID, req.DocumentoID, time.Now().UTC(), req.FechaObjetivo.Format(time.DateOnly)).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Reserva{}, err
	}

	var reserva model.Reserva
	if err := r.db.GetContext(ctx, &reserva, query, args...); err != nil {
		return model.Reserva{}, wrapPgError(err)
	}
	return reserva, nil
}

func (r *repository) GetReserva(ctx context.Context, id int) (model.Reserva, error) {
	query, args, err := qb.Select("*").
		From(reservasTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Reserva{}, err
	}

	var reserva model.Reserva
	if err := r.db.GetContext(ctx, &reserva, query, args...); err != nil {
		return model.Reserva{}, wrapPgError(err)
	}
	return reserva, nil
}

func (r *repository) ListReservas(ctx context.Context, usuarioID int) ([]model.Reserva, error) {
	query, args, err := qb.Select("*").
		From(reservasTableName).
		Where(sq.Eq{"usuario_id": usuarioID}).
		OrderBy("fecha_reserva desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var reservas []model.Reserva
	if err := r.db.SelectContext(ctx, &reservas, query, args...); err != nil {
		return nil, err
	}
	return reservas, nil
}

func (r *repository) UpdateReservaEstado(ctx context.Context, id int, estado model.EstadoReserva, motivoCancelacion *string) (model.Reserva, error) {
	q := qb.Update(reservasTableName).
		Set("estado", estado).
		Where(sq.Eq{"id": id}).
		Suffix("returning *")

	if motivoCancelacion != nil {
		q = q.Set("motivo_cancelacion", *motivoCancelacion)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.Reserva{}, err
	}

	var reserva model.Reserva
	if err := r.db.GetContext(ctx, &reserva, query, args...); err != nil {
		return model.Reserva{}, wrapPgError(err)
	}
	return reserva, nil
}
