package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/errs"
	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
)

type BibliotecaRepository interface {
	CreateBiblioteca(ctx context.Context, req model.BibliotecaCreateRequest) (model.Biblioteca, error)
	ListBibliotecas(ctx context.Context, soloActivas bool) ([]model.Biblioteca, error)
	DeleteBiblioteca(ctx context.Context, id int) error
}

func (r *repository) CreateBiblioteca(ctx context.Context, req model.BibliotecaCreateRequest) (model.Biblioteca, error) {
	query, args, err := qb.Insert(bibliotecasTableName).
		Columns("nombre", "direccion", "telefono").
		Values(req.Nombre, req.Direccion, req.Telefono).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Biblioteca{}, err
	}

	var biblioteca model.Biblioteca
	if err := r.db.GetContext(ctx, &biblioteca, query, args...); err != nil {
		return model.Biblioteca{}, wrapPgError(err)
	}
	return biblioteca, nil
}

func (r *repository) ListBibliotecas(ctx context.Context, soloActivas bool) ([]model.Biblioteca, error) {
	q := qb.Select("*").
		From(bibliotecasTableName).
		OrderBy("id")

	if soloActivas {
		q = q.Where(sq.Eq{"activo": true})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var bibliotecas []model.Biblioteca
	if err := r.db.SelectContext(ctx, &bibliotecas, query, args...); err != nil {
		return nil, err
	}
	return bibliotecas, nil
}

// DeleteBiblioteca is rejected by the database while any prestamo still
// references the row; the restrict violation surfaces as
// ErrHasDependencies.
func (r *repository) DeleteBiblioteca(ctx context.Context, id int) error {
	query, args, err := qb.Delete(bibliotecasTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapPgError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
