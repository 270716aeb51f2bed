package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/errs"
	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
)

type EjemplarRepository interface {
	CreateEjemplar(ctx context.Context, req model.EjemplarCreateRequest) (model.Ejemplar, error)
	GetEjemplar(ctx context.Context, id int) (model.Ejemplar, error)
	ListEjemplares(ctx context.Context, documentoID int, estado model.EstadoEjemplar) ([]model.Ejemplar, error)
	CambiarEstadoEjemplar(ctx context.Context, id int, nuevo model.EstadoEjemplar, actorID *int, motivo string) (model.Ejemplar, error)
	GetHistorialEjemplar(ctx context.Context, ejemplarID int) ([]model.HistorialEjemplar, error)
}

// CreateEjemplar inserts the copy and bumps the documento's existencias
// in the same transaction, so disponible is never stale for a reader.
func (r *repository) CreateEjemplar(ctx context.Context, req model.EjemplarCreateRequest) (model.Ejemplar, error) {
	var ejemplar model.Ejemplar
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		query, args, err := qb.Insert(ejemplaresTableName).
			Columns("documento_id", "codigo", "ubicacion").
			Values(req.DocumentoID, req.Codigo, req.Ubicacion).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		if err = tx.GetContext(ctx, &ejemplar, query, args...); err != nil {
			return wrapPgError(err)
		}

		_, err = tx.ExecContext(ctx,
			`update documentos set existencias = existencias + 1 where id = $1`,
			req.DocumentoID)
		return wrapPgError(err)
	})
	if err != nil {
		return model.Ejemplar{}, err
	}
	return ejemplar, nil
}

func (r *repository) GetEjemplar(ctx context.Context, id int) (model.Ejemplar, error) {
	query, args, err := qb.Select("*").
		From(ejemplaresTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Ejemplar{}, err
	}

	var ejemplar model.Ejemplar
	if err := r.db.GetContext(ctx, &ejemplar, query, args...); err != nil {
		return model.Ejemplar{}, wrapPgError(err)
	}
	return ejemplar, nil
}

func (r *repository) ListEjemplares(ctx context.Context, documentoID int, estado model.EstadoEjemplar) ([]model.Ejemplar, error) {
	q := qb.Select("*").
		From(ejemplaresTableName).
		Where(sq.Eq{"documento_id": documentoID}).
		OrderBy("id")

	if estado != "" {
		q = q.Where(sq.Eq{"estado": estado})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var ejemplares []model.Ejemplar
	if err := r.db.SelectContext(ctx, &ejemplares, query, args...); err != nil {
		return nil, err
	}
	return ejemplares, nil
}

// CambiarEstadoEjemplar is the single write path for a copy's estado.
// The row is locked, a no-op update is skipped entirely (so no historial
// row appears), and retiring a copy decrements existencias. The
// historial row itself is appended by the ejemplares audit trigger
// inside the same transaction.
func (r *repository) CambiarEstadoEjemplar(ctx context.Context, id int, nuevo model.EstadoEjemplar, actorID *int, motivo string) (model.Ejemplar, error) {
	var ejemplar model.Ejemplar
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		query, args, err := qb.Select("*").
			From(ejemplaresTableName).
			Where(sq.Eq{"id": id}).
			Suffix("for update").
			ToSql()
		if err != nil {
			return err
		}
		if err = tx.GetContext(ctx, &ejemplar, query, args...); err != nil {
			return wrapPgError(err)
		}

		if ejemplar.Estado == nuevo {
			return nil
		}
		if !ejemplar.Estado.CanTransition(nuevo) {
			return errs.ErrTransicionInvalida
		}

		if err = setAuditContext(ctx, tx, actorID, motivo); err != nil {
			return err
		}

		query, args, err = qb.Update(ejemplaresTableName).
			Set("estado", nuevo).
			Where(sq.Eq{"id": id}).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		if err = tx.GetContext(ctx, &ejemplar, query, args...); err != nil {
			r.log.Error("CambiarEstadoEjemplar", zap.String("q", query), zap.Any("args", args))
			return wrapPgError(err)
		}

		if nuevo == model.EjemplarBaja {
			_, err = tx.ExecContext(ctx,
				`update documentos set existencias = existencias - 1 where id = $1 and existencias > 0`,
				ejemplar.DocumentoID)
			return wrapPgError(err)
		}
		return nil
	})
	if err != nil {
		return model.Ejemplar{}, err
	}
	return ejemplar, nil
}

func (r *repository) GetHistorialEjemplar(ctx context.Context, ejemplarID int) ([]model.HistorialEjemplar, error) {
	query, args, err := qb.Select("*").
		From(historialTableName).
		Where(sq.Eq{"ejemplar_id": ejemplarID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var historial []model.HistorialEjemplar
	if err := r.db.SelectContext(ctx, &historial, query, args...); err != nil {
		return nil, err
	}
	return historial, nil
}
