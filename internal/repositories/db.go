package repositories

import (
	"context"
	_ "embed"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/kanban-board-api/internal/logger"
)

// ErrUniqueViolation is returned when a write hits a unique constraint.
var ErrUniqueViolation = errors.New("unique constraint violation")

const pgUniqueViolation = "23505"

//go:embed schema.sql
var schema string

// Migrate creates the tables and indexes if they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		logger.Log.Errorw("failed to apply schema", "error", err)
	}
	return err
}

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the request transaction when one is present.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return errors.Join(ErrUniqueViolation, err)
	}
	return err
}
