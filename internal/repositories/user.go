package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-recipe-generator/internal/logger"
	"github.com/sbilibin2017/gw-recipe-generator/internal/models"
)

const userColumns = `id, username, password_hash, oauth_provider, oauth_id, created_at`

// UserReadRepository handles user lookups.
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByUsername returns the user with the given username, or nil if absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1 LIMIT 1`
	return r.getOne(ctx, query, username)
}

// GetByOAuth returns the user linked to the external identity, or nil if absent.
func (r *UserReadRepository) GetByOAuth(ctx context.Context, provider, oauthID string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE oauth_provider = $1 AND oauth_id = $2
		LIMIT 1
	`
	return r.getOne(ctx, query, provider, oauthID)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, pickExecutor(ctx, r.db, r.txGetter), &user, query, args...)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", args,
		"result", user.UserID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user inserts.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user. A taken username yields ErrConflict.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (id, username, password_hash, oauth_provider, oauth_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	err := sqlx.GetContext(ctx, pickExecutor(ctx, r.db, r.txGetter), &user.CreatedAt, query,
		user.UserID, user.Username, user.PasswordHash, user.OAuthProvider, user.OAuthID)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{user.UserID, user.Username, user.OAuthProvider.String, user.OAuthID.String},
		"result", user.CreatedAt,
		"error", err,
	)

	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}
