package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

var (
	// ErrNotFound is returned when a row addressed by key does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when an insert hits a unique constraint.
	ErrConflict = errors.New("record already exists")
)

// TxGetter returns the transaction bound to the context, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// pickExecutor prefers the request transaction over the pool.
func pickExecutor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// oneLine squeezes a query into a single log-friendly line.
func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
