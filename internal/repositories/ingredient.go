package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-recipe-generator/internal/logger"
	"github.com/sbilibin2017/gw-recipe-generator/internal/models"
)

const ingredientColumns = `id, name, emoji, category, created_at`

// IngredientReadRepository handles catalog reads.
type IngredientReadRepository struct {
	db *sqlx.DB
}

func NewIngredientReadRepository(db *sqlx.DB) *IngredientReadRepository {
	return &IngredientReadRepository{db: db}
}

// List returns the whole catalog ordered by category, then id.
func (r *IngredientReadRepository) List(ctx context.Context) ([]models.IngredientDB, error) {
	const query = `SELECT ` + ingredientColumns + ` FROM ingredients ORDER BY category, id`

	var rows []models.IngredientDB
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{},
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

// SearchByName returns ingredients whose name contains the fragment.
// Matching follows the column collation; no extra case folding is applied.
func (r *IngredientReadRepository) SearchByName(ctx context.Context, fragment string) ([]models.IngredientDB, error) {
	const query = `SELECT ` + ingredientColumns + ` FROM ingredients WHERE name LIKE $1 ORDER BY id`

	pattern := "%" + escapeLike(fragment) + "%"
	var rows []models.IngredientDB
	err := r.db.SelectContext(ctx, &rows, query, pattern)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{pattern},
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

// GetByName returns the ingredient with exactly this name, or nil if absent.
func (r *IngredientReadRepository) GetByName(ctx context.Context, name string) (*models.IngredientDB, error) {
	const query = `SELECT ` + ingredientColumns + ` FROM ingredients WHERE name = $1 LIMIT 1`

	var row models.IngredientDB
	err := r.db.GetContext(ctx, &row, query, name)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{name},
		"result", row.ID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// IngredientWriteRepository handles catalog inserts.
type IngredientWriteRepository struct {
	db *sqlx.DB
}

func NewIngredientWriteRepository(db *sqlx.DB) *IngredientWriteRepository {
	return &IngredientWriteRepository{db: db}
}

// Save inserts a new ingredient. When the name is already taken nothing is
// written and ErrConflict is returned.
func (r *IngredientWriteRepository) Save(ctx context.Context, item models.Classification) (*models.IngredientDB, error) {
	const query = `
		INSERT INTO ingredients (name, emoji, category, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (name) DO NOTHING
		RETURNING ` + ingredientColumns + `
	`

	var row models.IngredientDB
	err := r.db.GetContext(ctx, &row, query, item.Name, item.Emoji, item.Category)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{item.Name, item.Emoji, item.Category},
		"result", row.ID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// SeedIfEmpty loads the given items when the catalog has no rows at all.
// It reports how many rows were inserted.
func (r *IngredientWriteRepository) SeedIfEmpty(ctx context.Context, items []models.Classification) (int, error) {
	const countQuery = `SELECT COUNT(*) FROM ingredients`

	var count int
	err := r.db.GetContext(ctx, &count, countQuery)

	logger.Log.Infow(
		"query", countQuery,
		"args", []any{},
		"result", count,
		"error", err,
	)

	if err != nil || count > 0 || len(items) == 0 {
		return 0, err
	}

	placeholders := make([]string, 0, len(items))
	args := make([]any, 0, len(items)*3)
	for i, item := range items {
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d)", i*3+1, i*3+2, i*3+3))
		args = append(args, item.Name, item.Emoji, item.Category)
	}
	query := `INSERT INTO ingredients (name, emoji, category) VALUES ` +
		strings.Join(placeholders, ", ") +
		` ON CONFLICT (name) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query, args...)
	var inserted int64
	if res != nil {
		inserted, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", "INSERT INTO ingredients (name, emoji, category) VALUES ...",
		"args", len(items),
		"result", inserted,
		"error", err,
	)

	return int(inserted), err
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
