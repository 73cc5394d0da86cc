package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipe-generator/internal/logger"
	"github.com/sbilibin2017/gw-recipe-generator/internal/middlewares"
	"github.com/sbilibin2017/gw-recipe-generator/internal/models"
	"github.com/sbilibin2017/gw-recipe-generator/internal/services"
)

//go:generate mockgen -source=recipe_generate.go -destination=mock_recipe_generate.go -package=handlers

// RecipeGenerator defines the interface that the recipe service must implement.
type RecipeGenerator interface {
	Generate(ctx context.Context, ingredients, preferences []string, userID *uuid.UUID) (*models.GenerateResult, error)
}

// GenerateRecipeRequest represents the JSON body for recipe generation.
// Both fields accept an array or a comma-separated string.
// swagger:model GenerateRecipeRequest
type GenerateRecipeRequest struct {
	// Ingredients at hand
	// required: true
	Ingredients models.StringList `json:"ingredients" swaggertype:"array,string" validate:"required,min=1"`

	// Taste or cooking preferences
	Preferences models.StringList `json:"preferences" swaggertype:"array,string"`
}

// GenerateRecipeResponse represents generated recipes
// swagger:model GenerateRecipeResponse
type GenerateRecipeResponse struct {
	Success bool `json:"success"`

	// Generated recipes, passed through as the provider returned them
	Data []models.Recipe `json:"data" swaggertype:"array,object"`

	// History row id, null for guests or when saving failed
	ID *uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
}

// NewGenerateRecipeHandler returns an HTTP handler that asks the assistant for recipes.
// Signed-in callers get the result stored in their history.
// @Summary Generate recipes
// @Description Suggests recipes for the given ingredients. Authentication is optional.
// @Tags recipes
// @Accept json
// @Produce json
// @Param generateRecipeRequest body handlers.GenerateRecipeRequest true "Ingredients and preferences"
// @Success 200 {object} handlers.GenerateRecipeResponse "Generated recipes"
// @Failure 400 {object} handlers.ErrorResponse "Ingredients are required"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Failure 500 {object} handlers.ErrorResponse "Failed to generate recipe"
// @Security BearerAuth
// @Router /recipe/generate [post]
func NewGenerateRecipeHandler(svc RecipeGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateRecipeRequest

		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Ingredients are required")
			return
		}

		var userID *uuid.UUID
		if id := middlewares.IdentityFromContext(r.Context()); id != nil {
			userID = &id.UserID
		}

		res, err := svc.Generate(r.Context(), []string(req.Ingredients), []string(req.Preferences), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrIngredientsRequired):
				writeError(w, http.StatusBadRequest, "Ingredients are required")
			default:
				logger.FromContext(r.Context()).Errorw("recipe generation failed", "err", err)
				writeError(w, http.StatusInternalServerError, "Failed to generate recipe")
			}
			return
		}

		recipes := res.Recipes
		if recipes == nil {
			recipes = []models.Recipe{}
		}
		if res.ID != nil {
			for i := range recipes {
				recipes[i] = recipes[i].WithID(*res.ID)
			}
		}

		writeJSON(w, http.StatusOK, GenerateRecipeResponse{
			Success: true,
			Data:    recipes,
			ID:      res.ID,
		})
	}
}
