package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-recipe-generator/internal/logger"
	"github.com/sbilibin2017/gw-recipe-generator/internal/models"
)

// IngredientCatalogKey is the Redis key holding the serialized catalog.
const IngredientCatalogKey = "ingredients:catalog"

// ErrCacheMiss is returned when the catalog is not cached.
var ErrCacheMiss = errors.New("ingredient catalog not found in cache")

// IngredientCacheRepository caches the ingredient catalog in Redis.
type IngredientCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached catalog
}

// NewIngredientCacheRepository creates a new repository instance with the given TTL
func NewIngredientCacheRepository(client *redis.Client, expiration time.Duration) *IngredientCacheRepository {
	return &IngredientCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetCatalog returns the cached catalog or ErrCacheMiss.
func (r *IngredientCacheRepository) GetCatalog(ctx context.Context) ([]models.Ingredient, error) {
	val, err := r.client.Get(ctx, IngredientCatalogKey).Bytes()
	if err != nil {
		logger.Log.Infow(
			"key", IngredientCatalogKey,
			"result", nil,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var items []models.Ingredient
	if err := json.Unmarshal(val, &items); err != nil {
		logger.Log.Infow(
			"key", IngredientCatalogKey,
			"result", nil,
			"error", err,
		)
		return nil, fmt.Errorf("decode cached catalog: %w", err)
	}

	logger.Log.Infow(
		"key", IngredientCatalogKey,
		"result", len(items),
		"error", nil,
	)

	return items, nil
}

// SetCatalog caches the catalog with expiration.
func (r *IngredientCacheRepository) SetCatalog(ctx context.Context, items []models.Ingredient) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, IngredientCatalogKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", IngredientCatalogKey,
		"items", len(items),
		"result", "ok",
		"error", err,
	)

	return err
}

// InvalidateCatalog drops the cached catalog.
func (r *IngredientCacheRepository) InvalidateCatalog(ctx context.Context) error {
	err := r.client.Del(ctx, IngredientCatalogKey).Err()

	logger.Log.Infow(
		"key", IngredientCatalogKey,
		"result", "deleted",
		"error", err,
	)

	return err
}
