package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/errs"
	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
)

type UsuarioRepository interface {
	CreateUsuario(ctx context.Context, req model.UsuarioCreateRequest, passwordHash string, tokenTTL time.Duration) (model.Usuario, model.TokenValidacion, error)
	GetUsuario(ctx context.Context, id int) (model.Usuario, error)
	GetUsuarioByRUT(ctx context.Context, rut string) (model.Usuario, error)
	GetUsuarioByEmail(ctx context.Context, email string) (model.Usuario, error)
	ActivateUsuario(ctx context.Context, token string) (model.Usuario, error)
	SetSancion(ctx context.Context, id int, hasta *time.Time) (model.Usuario, error)
	DeleteUsuario(ctx context.Context, id int) error
}

// CreateUsuario inserts the account inactive together with its one-time
// activation token.
func (r *repository) CreateUsuario(ctx context.Context, req model.UsuarioCreateRequest, passwordHash string, tokenTTL time.Duration) (model.Usuario, model.TokenValidacion, error) {
	var (
		usuario model.Usuario
		token   model.TokenValidacion
	)
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		query, args, err := qb.Insert(usuariosTableName).
			Columns("rut", "nombres", "apellidos", "email", "password_hash", "foto_url").
			Values(model.FormatRUT(req.RUT), req.Nombres, req.Apellidos, req.Email, passwordHash, req.FotoURL).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		if err = tx.GetContext(ctx, &usuario, query, args...); err != nil {
			r.log.Error("CreateUsuario", zap.String("q", query), zap.Error(err))
			return wrapPgError(err)
		}

		query, args, err = qb.Insert(tokensTableName).
			Columns("usuario_id", "token", "expira_en").
			Values(usuario.ID, uuid.New(), time.Now().UTC().Add(tokenTTL)).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		if err = tx.GetContext(ctx, &token, query, args...); err != nil {
			return wrapPgError(err)
		}
		return nil
	})
	if err != nil {
		return model.Usuario{}, model.TokenValidacion{}, err
	}
	return usuario, token, nil
}

func (r *repository) GetUsuario(ctx context.Context, id int) (model.Usuario, error) {
	return r.getUsuario(ctx, sq.Eq{"id": id})
}

func (r *repository) GetUsuarioByRUT(ctx context.Context, rut string) (model.Usuario, error) {
	return r.getUsuario(ctx, sq.Eq{"rut": model.FormatRUT(rut)})
}

func (r *repository) GetUsuarioByEmail(ctx context.Context, email string) (model.Usuario, error) {
	return r.getUsuario(ctx, sq.Eq{"email": email})
}

func (r *repository) getUsuario(ctx context.Context, where sq.Eq) (model.Usuario, error) {
	query, args, err := qb.Select("*").
		From(usuariosTableName).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Usuario{}, err
	}

	var usuario model.Usuario
	if err := r.db.GetContext(ctx, &usuario, query, args...); err != nil {
		return model.Usuario{}, wrapPgError(err)
	}
	return usuario, nil
}

// ActivateUsuario consumes a one-time token: the row is locked, a used
// token is rejected for replay, an expired one for staleness, and the
// account flips to activo in the same transaction.
func (r *repository) ActivateUsuario(ctx context.Context, token string) (model.Usuario, error) {
	var usuario model.Usuario
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		query, args, err := qb.Select("*").
			From(tokensTableName).
			Where(sq.Eq{"token": token}).
			Suffix("for update").
			ToSql()
		if err != nil {
			return err
		}
		var tok model.TokenValidacion
		if err = tx.GetContext(ctx, &tok, query, args...); err != nil {
			return wrapPgError(err)
		}
		if tok.Usado {
			return errs.ErrTokenUsado
		}
		if time.Now().UTC().After(tok.ExpiraEn) {
			return errs.ErrTokenExpirado
		}

		if _, err = tx.ExecContext(ctx,
			`update tokens_validacion set usado = true where id = $1`, tok.ID); err != nil {
			return err
		}
		return tx.GetContext(ctx, &usuario,
			`update usuarios set activo = true where id = $1 returning *`, tok.UsuarioID)
	})
	if err != nil {
		return model.Usuario{}, err
	}
	return usuario, nil
}

func (r *repository) SetSancion(ctx context.Context, id int, hasta *time.Time) (model.Usuario, error) {
	query, args, err := qb.Update(usuariosTableName).
		Set("sancionado_hasta", hasta).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Usuario{}, err
	}

	var usuario model.Usuario
	if err := r.db.GetContext(ctx, &usuario, query, args...); err != nil {
		return model.Usuario{}, wrapPgError(err)
	}
	return usuario, nil
}

// DeleteUsuario removes the account; tokens, prestamos and reservas go
// with it by cascade, while historial rows keep existing with the
// usuario reference nulled.
func (r *repository) DeleteUsuario(ctx context.Context, id int) error {
	query, args, err := qb.Delete(usuariosTableName).
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
