package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-recipe-generator/internal/logger"
	"github.com/sbilibin2017/gw-recipe-generator/internal/models"
)

// RecipeWriteRepository handles history writes.
type RecipeWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRecipeWriteRepository(db *sqlx.DB, txGetter TxGetter) *RecipeWriteRepository {
	return &RecipeWriteRepository{db: db, txGetter: txGetter}
}

// Save stores one generation for the user and returns the new row id.
func (r *RecipeWriteRepository) Save(ctx context.Context, userID uuid.UUID, ingredients string, recipes []models.Recipe) (uuid.UUID, error) {
	const query = `
		INSERT INTO recipes (id, user_id, ingredients, recipe_data, is_favorite, created_at)
		VALUES ($1, $2, $3, $4, FALSE, NOW())
	`

	data, err := json.Marshal(recipes)
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	res, err := r.db.ExecContext(ctx, query, id, userID, ingredients, string(data))
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{id, userID, ingredients, len(recipes)},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// ToggleFavorite flips the favorite flag of a recipe owned by the user
// and returns the new value. A missing or foreign recipe yields ErrNotFound.
func (r *RecipeWriteRepository) ToggleFavorite(ctx context.Context, recipeID, userID uuid.UUID) (bool, error) {
	const query = `
		UPDATE recipes
		SET is_favorite = NOT is_favorite
		WHERE id = $1 AND user_id = $2
		RETURNING is_favorite
	`

	var isFavorite bool
	err := sqlx.GetContext(ctx, pickExecutor(ctx, r.db, r.txGetter), &isFavorite, query, recipeID, userID)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{recipeID, userID},
		"result", isFavorite,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrNotFound
	}
	return isFavorite, err
}

// RecipeReadRepository handles history reads.
type RecipeReadRepository struct {
	db *sqlx.DB
}

func NewRecipeReadRepository(db *sqlx.DB) *RecipeReadRepository {
	return &RecipeReadRepository{db: db}
}

// ListByUser returns the newest rows of the user, at most limit of them.
func (r *RecipeReadRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.RecipeDB, error) {
	const query = `
		SELECT id, user_id, ingredients, recipe_data, is_favorite, created_at
		FROM recipes
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows := []models.RecipeDB{}
	err := r.db.SelectContext(ctx, &rows, query, userID, limit)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{userID, limit},
		"result", len(rows),
		"error", err,
	)

	return rows, err
}
