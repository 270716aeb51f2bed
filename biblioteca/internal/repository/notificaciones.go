package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
)

type NotificacionRepository interface {
	AppendNotificacion(ctx context.Context, n model.Notificacion) (model.Notificacion, error)
	ListNotificaciones(ctx context.Context, page, size int) (model.ListNotificaciones, error)
}

// AppendNotificacion records one delivery attempt. The log is
// append-only; there is no update path.
func (r *repository) AppendNotificacion(ctx context.Context, n model.Notificacion) (model.Notificacion, error) {
	query, args, err := qb.Insert(notificacionesTableName).
		Columns("tipo", "destinatario", "asunto", "prestamo_id", "exito", "error").
		Values(n.Tipo, n.Destinatario, n.Asunto, n.PrestamoID, n.Exito, n.Error).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Notificacion{}, err
	}

	var saved model.Notificacion
	if err := r.db.GetContext(ctx, &saved, query, args...); err != nil {
		r.log.Error("AppendNotificacion", zap.String("q", query), zap.Error(err))
		return model.Notificacion{}, wrapPgError(err)
	}
	return saved, nil
}

func (r *repository) ListNotificaciones(ctx context.Context, page, size int) (model.ListNotificaciones, error) {
	q := qb.Select("*").
		From(notificacionesTableName).
		OrderBy("created_at desc")

	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListNotificaciones{}, err
	}

	var items []model.Notificacion
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return model.ListNotificaciones{}, err
	}

	return model.ListNotificaciones{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(items),
		},
		Items: items,
	}, nil
}
