package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-generator/internal/logger"
	"github.com/sbilibin2017/gw-recipe-generator/internal/models"
	"github.com/sbilibin2017/gw-recipe-generator/internal/services"
)

//go:generate mockgen -source=ingredients.go -destination=mock_ingredients.go -package=handlers

// IngredientLister returns the whole ingredient catalog.
type IngredientLister interface {
	List(ctx context.Context) ([]models.Ingredient, error)
}

// IngredientSearcher resolves a free-text ingredient query.
type IngredientSearcher interface {
	Search(ctx context.Context, query string) (*models.SearchResult, error)
}

// NewIngredientsHandler returns an HTTP handler listing every catalog ingredient.
// @Summary List ingredients
// @Description Returns the ingredient catalog ordered by category and id
// @Tags ingredients
// @Produce json
// @Success 200 {array} models.Ingredient "Ingredient catalog"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch ingredients"
// @Router /ingredients [get]
func NewIngredientsHandler(svc IngredientLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Errorw("list ingredients failed", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch ingredients")
			return
		}
		if items == nil {
			items = []models.Ingredient{}
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// NewIngredientSearchHandler returns an HTTP handler that looks an ingredient up,
// falling back to AI classification for unknown names.
// @Summary Search ingredient
// @Description Exact-name or substring lookup in the catalog; unknown names are classified by the assistant and added to the catalog
// @Tags ingredients
// @Produce json
// @Param query query string true "Ingredient name"
// @Success 200 {object} models.SearchResult "Search result with its source"
// @Failure 400 {object} handlers.ErrorResponse "Query parameter is required"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Failure 500 {object} handlers.ErrorResponse "Failed to search ingredient"
// @Router /ingredients/search [get]
func NewIngredientSearchHandler(svc IngredientSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Search(r.Context(), r.URL.Query().Get("query"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrQueryRequired):
				writeError(w, http.StatusBadRequest, "Query parameter is required")
			case errors.Is(err, services.ErrRateLimited):
				w.Header().Set("Retry-After", "1")
				writeError(w, http.StatusTooManyRequests, "Too many requests")
			default:
				logger.FromContext(r.Context()).Errorw("ingredient search failed", "err", err)
				writeError(w, http.StatusInternalServerError, "Failed to search ingredient")
			}
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}
