package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/errs"
	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
)

type PrestamoRepository interface {
	CreatePrestamo(ctx context.Context, req model.PrestamoCreateRequest, fechaDevolucion time.Time) (model.Prestamo, error)
	GetPrestamo(ctx context.Context, id int) (model.Prestamo, error)
	CountPrestamos(ctx context.Context, usuarioID int, estado model.EstadoPrestamo) (int, error)
	ListPrestamosActivos(ctx context.Context, usuarioID *int, page, size int) (model.ListPrestamos, error)
	HistorialPrestamos(ctx context.Context, usuarioID int, estado model.EstadoPrestamo, page, size int) (model.ListPrestamos, error)
	DevolverPrestamo(ctx context.Context, id int, actorID *int) (model.Prestamo, error)
	CancelarPrestamo(ctx context.Context, id int, actorID *int) (model.Prestamo, error)
	SweepVencidos(ctx context.Context) ([]model.Prestamo, error)
	ListVencidosNoNotificados(ctx context.Context) ([]model.PrestamoNotificacion, error)
	MarkNotificado(ctx context.Context, id int) error
	GetPrestamoActivoPorISBN(ctx context.Context, isbn string) (model.PrestamoPorISBN, error)
	PrestamoStats(ctx context.Context) (model.PrestamoStats, error)
}

// CreatePrestamo performs the checkout as one transaction. The copies
// are locked with FOR UPDATE before the availability check, so two
// concurrent checkouts of the last copy serialize and the loser sees it
// already prestado.
func (r *repository) CreatePrestamo(ctx context.Context, req model.PrestamoCreateRequest, fechaDevolucion time.Time) (model.Prestamo, error) {
	var prestamo model.Prestamo
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		query, args, err := qb.Select("*").
			From(ejemplaresTableName).
			Where(sq.Eq{"id": req.EjemplarIDs}).
			Suffix("for update").
			ToSql()
		if err != nil {
			return err
		}
		var ejemplares []model.Ejemplar
		if err = tx.SelectContext(ctx, &ejemplares, query, args...); err != nil {
			return err
		}
		if len(ejemplares) != len(req.EjemplarIDs) {
			return errs.ErrNotFound
		}
		for _, e := range ejemplares {
			if e.Estado != model.EjemplarDisponible {
				return errs.ErrEjemplarNoDisponible
			}
		}

		query, args, err = qb.Insert(prestamosTableName).
			Columns("tipo", "usuario_id", "biblioteca_id", "bibliotecario_id", "fecha_prestamo", "fecha_devolucion_estimada").
			Values(req.Tipo, req.UsuarioID, req.BibliotecaID, req.BibliotecarioID, time.Now().UTC(), fechaDevolucion).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		if err = tx.GetContext(ctx, &prestamo, query, args...); err != nil {
			r.log.Error("CreatePrestamo", zap.String("q", query), zap.Any("args", args))
			return wrapPgError(err)
		}

		detalle := qb.Insert(detallePrestamoTable).Columns("prestamo_id", "ejemplar_id")
		for _, id := range req.EjemplarIDs {
			detalle = detalle.Values(prestamo.ID, id)
		}
		query, args, err = detalle.ToSql()
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return wrapPgError(err)
		}

		if err = setAuditContext(ctx, tx, req.BibliotecarioID, fmt.Sprintf("prestamo #%d", prestamo.ID)); err != nil {
			return err
		}
		nuevo := model.EjemplarPrestado
		if req.Tipo == model.PrestamoSala {
			nuevo = model.EjemplarEnSala
		}
		query, args, err = qb.Update(ejemplaresTableName).
			Set("estado", nuevo).
			Where(sq.Eq{"id": req.EjemplarIDs}).
			ToSql()
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, query, args...)
		return wrapPgError(err)
	})
	if err != nil {
		return model.Prestamo{}, err
	}
	return prestamo, nil
}

func (r *repository) GetPrestamo(ctx context.Context, id int) (model.Prestamo, error) {
	query, args, err := qb.Select("*").
		From(prestamosTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Prestamo{}, err
	}

	var prestamo model.Prestamo
	if err := r.db.GetContext(ctx, &prestamo, query, args...); err != nil {
		return model.Prestamo{}, wrapPgError(err)
	}
	return prestamo, nil
}

func (r *repository) CountPrestamos(ctx context.Context, usuarioID int, estado model.EstadoPrestamo) (int, error) {
	q := `select count(*) from prestamos where usuario_id = $1 and estado = $2`
	var count int
	if err := r.db.QueryRowContext(ctx, q, usuarioID, estado).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) ListPrestamosActivos(ctx context.Context, usuarioID *int, page, size int) (model.ListPrestamos, error) {
	q := qb.Select("*").
		From(prestamosTableName).
		Where(sq.Eq{"estado": model.PrestamoActivo}).
		OrderBy("fecha_prestamo desc")

	if usuarioID != nil {
		q = q.Where(sq.Eq{"usuario_id": *usuarioID})
	}
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListPrestamos{}, err
	}

	var prestamos []model.Prestamo
	if err := r.db.SelectContext(ctx, &prestamos, query, args...); err != nil {
		return model.ListPrestamos{}, err
	}

	return model.ListPrestamos{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(prestamos),
		},
		Items: prestamos,
	}, nil
}

func (r *repository) HistorialPrestamos(ctx context.Context, usuarioID int, estado model.EstadoPrestamo, page, size int) (model.ListPrestamos, error) {
	q := qb.Select("*").
		From(prestamosTableName).
		Where(sq.Eq{"usuario_id": usuarioID}).
		OrderBy("fecha_prestamo desc")

	if estado != "" {
		q = q.Where(sq.Eq{"estado": estado})
	}
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListPrestamos{}, err
	}

	var prestamos []model.Prestamo
	if err := r.db.SelectContext(ctx, &prestamos, query, args...); err != nil {
		return model.ListPrestamos{}, err
	}

	return model.ListPrestamos{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(prestamos),
		},
		Items: prestamos,
	}, nil
}

func (r *repository) DevolverPrestamo(ctx context.Context, id int, actorID *int) (model.Prestamo, error) {
	return r.cerrarPrestamo(ctx, id, actorID, model.PrestamoDevuelto, model.EjemplarDevuelto)
}

// CancelarPrestamo reverts a checkout that never happened in practice:
// the prestamo closes as cancelado and its copies go straight back on
// the shelf.
func (r *repository) CancelarPrestamo(ctx context.Context, id int, actorID *int) (model.Prestamo, error) {
	return r.cerrarPrestamo(ctx, id, actorID, model.PrestamoCancelado, model.EjemplarDisponible)
}

func (r *repository) cerrarPrestamo(ctx context.Context, id int, actorID *int, estadoPrestamo model.EstadoPrestamo, estadoEjemplar model.EstadoEjemplar) (model.Prestamo, error) {
	var prestamo model.Prestamo
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		query, args, err := qb.Select("*").
			From(prestamosTableName).
			Where(sq.Eq{"id": id}).
			Suffix("for update").
			ToSql()
		if err != nil {
			return err
		}
		if err = tx.GetContext(ctx, &prestamo, query, args...); err != nil {
			return wrapPgError(err)
		}
		if prestamo.Estado != model.PrestamoActivo && prestamo.Estado != model.PrestamoVencido {
			return errs.ErrPrestamoCerrado
		}
		if estadoPrestamo == model.PrestamoCancelado && prestamo.Estado != model.PrestamoActivo {
			return errs.ErrPrestamoCerrado
		}

		if err = tx.GetContext(ctx, &prestamo,
			`update prestamos set estado = $1, fecha_devolucion_real = now() where id = $2 returning *`,
			estadoPrestamo, id); err != nil {
			return wrapPgError(err)
		}

		var ejemplarIDs []int
		if err = tx.SelectContext(ctx, &ejemplarIDs,
			`select ejemplar_id from detalle_prestamo where prestamo_id = $1`, id); err != nil {
			return err
		}

		motivo := fmt.Sprintf("devolucion prestamo #%d", id)
		if estadoPrestamo == model.PrestamoCancelado {
			motivo = fmt.Sprintf("cancelacion prestamo #%d", id)
		}
		if err = setAuditContext(ctx, tx, actorID, motivo); err != nil {
			return err
		}
		query, args, err = qb.Update(ejemplaresTableName).
			Set("estado", estadoEjemplar).
			Where(sq.Eq{"id": ejemplarIDs}).
			ToSql()
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, query, args...)
		return wrapPgError(err)
	})
	if err != nil {
		return model.Prestamo{}, err
	}
	return prestamo, nil
}

// SweepVencidos moves every activo prestamo past its due moment to
// vencido and returns the affected rows.
func (r *repository) SweepVencidos(ctx context.Context) ([]model.Prestamo, error) {
	q := `
update prestamos
	set estado = 'vencido'
where estado = 'activo' and fecha_devolucion_estimada < now()
returning *`

	var prestamos []model.Prestamo
	if err := r.db.SelectContext(ctx, &prestamos, q); err != nil {
		return nil, err
	}
	return prestamos, nil
}

func (r *repository) ListVencidosNoNotificados(ctx context.Context) ([]model.PrestamoNotificacion, error) {
	q := `
select p.*, u.email
from prestamos p
	join usuarios u on u.id = p.usuario_id
where p.estado = 'vencido' and not p.notificado
order by p.fecha_devolucion_estimada`

	var prestamos []model.PrestamoNotificacion
	if err := r.db.SelectContext(ctx, &prestamos, q); err != nil {
		return nil, err
	}
	return prestamos, nil
}

func (r *repository) MarkNotificado(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx,
		`update prestamos set notificado = true where id = $1 and estado = 'vencido'`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetPrestamo(ctx, id); err != nil {
			return err
		}
		return errs.ErrPrestamoNoVencido
	}
	return nil
}

// GetPrestamoActivoPorISBN resolves the newest open prestamo covering
// any ejemplar of the documento whose edicion matches the ISBN.
func (r *repository) GetPrestamoActivoPorISBN(ctx context.Context, isbn string) (model.PrestamoPorISBN, error) {
	documento, err := r.GetDocumentoByISBN(ctx, isbn)
	if err != nil {
		return model.PrestamoPorISBN{}, err
	}

	q := `
select p.*
from prestamos p
	join detalle_prestamo dp on dp.prestamo_id = p.id
	join ejemplares e on e.id = dp.ejemplar_id
where e.documento_id = $1 and p.estado in ('activo', 'vencido')
order by p.fecha_prestamo desc
limit 1`

	var prestamo model.Prestamo
	if err := r.db.GetContext(ctx, &prestamo, q, documento.ID); err != nil {
		return model.PrestamoPorISBN{}, wrapPgError(err)
	}

	usuario, err := r.GetUsuario(ctx, prestamo.UsuarioID)
	if err != nil {
		return model.PrestamoPorISBN{}, err
	}

	return model.PrestamoPorISBN{
		Prestamo:  prestamo,
		Usuario:   usuario,
		Documento: documento,
		Vencido:   prestamo.Estado == model.PrestamoVencido || time.Now().UTC().After(prestamo.FechaDevolucionEstimada),
	}, nil
}

func (r *repository) PrestamoStats(ctx context.Context) (model.PrestamoStats, error) {
	q := `
select count(*) filter (where estado = 'activo')    as total_activos,
       count(*) filter (where estado = 'vencido')   as total_vencidos,
       count(*) filter (where estado = 'devuelto')  as total_devueltos,
       count(*) filter (where tipo = 'sala')        as total_sala,
       count(*) filter (where tipo = 'domicilio')   as total_domicilio
from prestamos`

	var stats model.PrestamoStats
	if err := r.db.GetContext(ctx, &stats, q); err != nil {
		return model.PrestamoStats{}, err
	}
	return stats, nil
}
