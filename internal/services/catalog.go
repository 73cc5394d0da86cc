package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/time/rate"

	"github.com/sbilibin2017/gw-recipe-generator/internal/assistant"
	"github.com/sbilibin2017/gw-recipe-generator/internal/logger"
	"github.com/sbilibin2017/gw-recipe-generator/internal/metrics"
	"github.com/sbilibin2017/gw-recipe-generator/internal/models"
	"github.com/sbilibin2017/gw-recipe-generator/internal/repositories"
)

//go:generate mockgen -source=catalog.go -destination=mock_catalog.go -package=services

var (
	// ErrQueryRequired is returned for an empty search query.
	ErrQueryRequired = errors.New("query is required")
	// ErrUpstream wraps failures of the completion provider.
	ErrUpstream = errors.New("completion provider failed")
	// ErrRateLimited is returned when a search would exceed the classification budget.
	ErrRateLimited = errors.New("classification rate limit exceeded")
)

// symbolPattern matches emoji and pictographs the model sometimes puts into names.
var symbolPattern = regexp.MustCompile(`[\x{1F300}-\x{1F9FF}\x{2600}-\x{26FF}\x{FE0F}\x{200D}]`)

// IngredientReader defines catalog queries.
type IngredientReader interface {
	List(ctx context.Context) ([]models.IngredientDB, error)                          // Whole catalog
	SearchByName(ctx context.Context, fragment string) ([]models.IngredientDB, error) // Substring match
	GetByName(ctx context.Context, name string) (*models.IngredientDB, error)         // Exact match, nil when absent
}

// IngredientWriter defines catalog inserts.
type IngredientWriter interface {
	Save(ctx context.Context, item models.Classification) (*models.IngredientDB, error)
}

// IngredientCache caches the serialized catalog.
type IngredientCache interface {
	GetCatalog(ctx context.Context) ([]models.Ingredient, error)
	SetCatalog(ctx context.Context, items []models.Ingredient) error
	InvalidateCatalog(ctx context.Context) error
}

// CatalogService serves the ingredient catalog and grows it through the assistant.
type CatalogService struct {
	reader    IngredientReader
	writer    IngredientWriter
	cache     IngredientCache
	assistant assistant.Assistant
	limiter   *rate.Limiter
}

// NewCatalogService creates a new CatalogService. cache and limiter may be nil.
// The limiter only budgets assistant classifications, catalog hits are never limited.
func NewCatalogService(
	reader IngredientReader,
	writer IngredientWriter,
	cache IngredientCache,
	asst assistant.Assistant,
	limiter *rate.Limiter,
) *CatalogService {
	return &CatalogService{
		reader:    reader,
		writer:    writer,
		cache:     cache,
		assistant: asst,
		limiter:   limiter,
	}
}

// List returns the whole catalog ordered by category, then id.
func (s *CatalogService) List(ctx context.Context) ([]models.Ingredient, error) {
	if s.cache != nil {
		items, err := s.cache.GetCatalog(ctx)
		if err == nil {
			metrics.CacheOperationsTotal.WithLabelValues("hit").Inc()
			return items, nil
		}
		metrics.CacheOperationsTotal.WithLabelValues("miss").Inc()
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Warnw("failed to read catalog from cache", "error", err)
		}
	}

	rows, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list ingredients", "error", err)
		return nil, err
	}
	items := toDTOs(rows)

	if s.cache != nil {
		if err := s.cache.SetCatalog(ctx, items); err != nil {
			logger.Log.Warnw("failed to cache catalog", "error", err)
		}
	}
	return items, nil
}

// Search looks the query up in the catalog and falls back to the assistant.
//
// A name that is inserted concurrently by another request loses on the
// unique constraint and is reported as ai_existing.
func (s *CatalogService) Search(ctx context.Context, query string) (*models.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrQueryRequired
	}

	rows, err := s.reader.SearchByName(ctx, query)
	if err != nil {
		logger.Log.Errorw("failed to search ingredients", "query", query, "error", err)
		return nil, err
	}
	if len(rows) > 0 {
		return s.result(models.SourceDB, toDTOs(rows)...), nil
	}

	if s.limiter != nil && !s.limiter.Allow() {
		logger.FromContext(ctx).Warnw("classification budget exhausted", "query", query)
		return nil, ErrRateLimited
	}

	logger.FromContext(ctx).Infow("ingredient not in catalog, asking assistant", "query", query)
	classified, err := s.assistant.ClassifyIngredient(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if !s.assistant.Live() && classified != nil {
		return s.result(models.SourceMock, models.Ingredient{
			ID:       "mock-" + strconv.FormatInt(time.Now().UnixMilli(), 10),
			Name:     query,
			Emoji:    classified.Emoji,
			Category: classified.Category,
		}), nil
	}

	if classified == nil {
		return s.result(models.SourceAI), nil
	}
	name := cleanName(classified.Name)
	if name == "" {
		return s.result(models.SourceAI), nil
	}

	existing, err := s.reader.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.result(models.SourceAIExisting, existing.DTO()), nil
	}

	row, err := s.writer.Save(ctx, models.Classification{
		Name:     name,
		Emoji:    classified.Emoji,
		Category: classified.Category,
	})
	if errors.Is(err, repositories.ErrConflict) {
		existing, err = s.reader.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("ingredient %q vanished after conflict", name)
		}
		return s.result(models.SourceAIExisting, existing.DTO()), nil
	}
	if err != nil {
		logger.Log.Errorw("failed to save classified ingredient", "name", name, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateCatalog(ctx); err != nil {
			logger.Log.Warnw("failed to invalidate catalog cache", "error", err)
		}
	}
	logger.Log.Infow("ingredient added to catalog", "name", name, "category", row.Category)
	return s.result(models.SourceAI, row.DTO()), nil
}

func (s *CatalogService) result(source string, items ...models.Ingredient) *models.SearchResult {
	metrics.IngredientSearchesTotal.WithLabelValues(source).Inc()
	return &models.SearchResult{Source: source, Data: items}
}

// cleanName removes symbols from a model-produced name and normalizes it to NFC.
func cleanName(name string) string {
	return norm.NFC.String(strings.TrimSpace(symbolPattern.ReplaceAllString(name, "")))
}

func toDTOs(rows []models.IngredientDB) []models.Ingredient {
	items := make([]models.Ingredient, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.DTO())
	}
	return items
}
