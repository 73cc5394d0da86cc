package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-recipe-generator/internal/logger"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// The transaction is committed unless the handler answered with an error status.
// The response is held back until the commit succeeded, so a failed commit
// answers 500 instead of the handler's result.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			ctx := setTxToContext(r.Context(), tx)
			r = r.WithContext(ctx)

			buf := newBufferedResponse(w)
			next.ServeHTTP(buf, r)

			if buf.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				buf.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			buf.flush()
		})
	}
}

// bufferedResponse holds the handler's answer until the transaction outcome is known.
type bufferedResponse struct {
	w          http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func newBufferedResponse(w http.ResponseWriter) *bufferedResponse {
	return &bufferedResponse{w: w, statusCode: http.StatusOK}
}

func (b *bufferedResponse) Header() http.Header {
	return b.w.Header()
}

func (b *bufferedResponse) WriteHeader(code int) {
	b.statusCode = code
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	return b.body.Write(p)
}

func (b *bufferedResponse) flush() {
	b.w.WriteHeader(b.statusCode)
	if _, err := b.w.Write(b.body.Bytes()); err != nil {
		logger.Log.Warnw("failed to write buffered response", "error", err)
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
