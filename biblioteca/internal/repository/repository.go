package repository

import (
	"context"
	"database/sql"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/errs"
)

//go:generate go run github.com/golang/mock/mockgen -destination=mocks/mock.go -package=mock_repository github.com/duoc-capstone/biblioteca-service/biblioteca/internal/repository Repository

type Repository interface {
	CatalogRepository
	EjemplarRepository
	UsuarioRepository
	BibliotecaRepository
	PrestamoRepository
	ReservaRepository
	NotificacionRepository
	StatsRepository
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (Repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	bibliotecasTableName    = `bibliotecas`
	usuariosTableName       = `usuarios`
	tokensTableName         = `tokens_validacion`
	documentosTableName     = `documentos`
	ejemplaresTableName     = `ejemplares`
	historialTableName      = `historial_ejemplares`
	reservasTableName       = `reservas`
	prestamosTableName      = `prestamos`
	detallePrestamoTable    = `detalle_prestamo`
	notificacionesTableName = `notificaciones`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// inTx runs fn inside a single transaction; any error rolls the whole
// operation back so no partial writes survive.
func (r *repository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Error("tx rollback", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit()
}

// wrapPgError maps driver errors onto the errs sentinels so callers
// never see pg internals.
func wrapPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return errs.ErrConflict
		case pgerrcode.ForeignKeyViolation, pgerrcode.RestrictViolation:
			return errs.ErrHasDependencies
		}
	}
	return err
}

// setAuditContext stores the acting usuario and motivo as
// transaction-local settings; the historial trigger reads them when an
// ejemplar changes estado in the same transaction.
func setAuditContext(ctx context.Context, tx *sqlx.Tx, usuarioID *int, motivo string) error {
	actor := ""
	if usuarioID != nil {
		actor = strconv.Itoa(*usuarioID)
	}
	_, err := tx.ExecContext(ctx,
		`select set_config('app.usuario_id', $1, true), set_config('app.motivo', $2, true)`,
		actor, motivo)
	return err
}
