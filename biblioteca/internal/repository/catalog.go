package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/errs"
	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
)

type CatalogRepository interface {
	CreateDocumento(ctx context.Context, req model.DocumentoCreateRequest) (model.Documento, error)
	GetDocumento(ctx context.Context, id int) (model.Documento, error)
	GetDocumentoByISBN(ctx context.Context, isbn string) (model.Documento, error)
	ListDocumentos(ctx context.Context, tipo, categoria string, page, size int) (model.ListDocumentos, error)
	SearchDocumentos(ctx context.Context, termino string, page, size int) (model.ListDocumentos, error)
	UpdateDocumento(ctx context.Context, id int, req model.DocumentoUpdateRequest) (model.Documento, error)
	DeleteDocumento(ctx context.Context, id int) error
}

func (r *repository) CreateDocumento(ctx context.Context, req model.DocumentoCreateRequest) (model.Documento, error) {
	query, args, err := qb.Insert(documentosTableName).
		Columns("tipo", "titulo", "autor", "editorial", "resumen", "link", "anio", "edicion", "categoria", "tipo_medio", "existencias").
		Values(req.Tipo, req.Titulo, req.Autor, req.Editorial, req.Resumen, req.Link, req.Anio, req.Edicion, req.Categoria, req.TipoMedio, req.Existencias).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Documento{}, err
	}

	var doc model.Documento
	if err := r.db.GetContext(ctx, &doc, query, args...); err != nil {
		r.log.Error("CreateDocumento", zap.String("q", query), zap.Error(err))
		return model.Documento{}, wrapPgError(err)
	}
	return doc, nil
}

func (r *repository) GetDocumento(ctx context.Context, id int) (model.Documento, error) {
	query, args, err := qb.Select("*").
		From(documentosTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Documento{}, err
	}

	var doc model.Documento
	if err := r.db.GetContext(ctx, &doc, query, args...); err != nil {
		return model.Documento{}, wrapPgError(err)
	}
	return doc, nil
}

// GetDocumentoByISBN looks a documento up by its edicion column, which
// holds the ISBN.
func (r *repository) GetDocumentoByISBN(ctx context.Context, isbn string) (model.Documento, error) {
	query, args, err := qb.Select("*").
		From(documentosTableName).
		Where(sq.Eq{"edicion": isbn}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Documento{}, err
	}

	var doc model.Documento
	if err := r.db.GetContext(ctx, &doc, query, args...); err != nil {
		return model.Documento{}, wrapPgError(err)
	}
	return doc, nil
}

func (r *repository) ListDocumentos(ctx context.Context, tipo, categoria string, page, size int) (model.ListDocumentos, error) {
	q := qb.Select("*").
		From(documentosTableName).
		OrderBy("id")

	if tipo != "" {
		q = q.Where(sq.Eq{"tipo": tipo})
	}
	if categoria != "" {
		q = q.Where(sq.Eq{"categoria": categoria})
	}
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListDocumentos{}, err
	}

	var docs []model.Documento
	if err := r.db.SelectContext(ctx, &docs, query, args...); err != nil {
		return model.ListDocumentos{}, err
	}

	return model.ListDocumentos{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(docs),
		},
		Items: docs,
	}, nil
}

func (r *repository) SearchDocumentos(ctx context.Context, termino string, page, size int) (model.ListDocumentos, error) {
	pattern := "%" + termino + "%"
	q := qb.Select("*").
		From(documentosTableName).
		Where(sq.Or{
			sq.ILike{"titulo": pattern},
			sq.ILike{"autor": pattern},
		}).
		OrderBy("titulo")

	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListDocumentos{}, err
	}
	r.log.Debug("SearchDocumentos", zap.String("query", query), zap.Any("args", args))

	var docs []model.Documento
	if err := r.db.SelectContext(ctx, &docs, query, args...); err != nil {
		return model.ListDocumentos{}, err
	}

	return model.ListDocumentos{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(docs),
		},
		Items: docs,
	}, nil
}

func (r *repository) UpdateDocumento(ctx context.Context, id int, req model.DocumentoUpdateRequest) (model.Documento, error) {
	fields := map[string]interface{}{}
	if req.Tipo != nil {
		fields["tipo"] = *req.Tipo
	}
	if req.Titulo != nil {
		fields["titulo"] = *req.Titulo
	}
	if req.Autor != nil {
		fields["autor"] = *req.Autor
	}
	if req.Editorial != nil {
		fields["editorial"] = *req.Editorial
	}
	if req.Resumen != nil {
		fields["resumen"] = *req.Resumen
	}
	if req.Link != nil {
		fields["link"] = *req.Link
	}
	if req.Anio != nil {
		fields["anio"] = *req.Anio
	}
	if req.Edicion != nil {
		fields["edicion"] = *req.Edicion
	}
	if req.Categoria != nil {
		fields["categoria"] = *req.Categoria
	}
	if req.TipoMedio != nil {
		fields["tipo_medio"] = *req.TipoMedio
	}
	if len(fields) == 0 {
		return r.GetDocumento(ctx, id)
	}

	query, args, err := qb.Update(documentosTableName).
		SetMap(fields).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Documento{}, err
	}

	var doc model.Documento
	if err := r.db.GetContext(ctx, &doc, query, args...); err != nil {
		r.log.Error("UpdateDocumento", zap.String("q", query), zap.Any("args", args))
		return model.Documento{}, wrapPgError(err)
	}
	return doc, nil
}

func (r *repository) DeleteDocumento(ctx context.Context, id int) error {
	query, args, err := qb.Delete(documentosTableName).
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
