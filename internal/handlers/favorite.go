package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipe-generator/internal/logger"
	"github.com/sbilibin2017/gw-recipe-generator/internal/middlewares"
	"github.com/sbilibin2017/gw-recipe-generator/internal/services"
)

//go:generate mockgen -source=favorite.go -destination=mock_favorite.go -package=handlers

// FavoriteToggler flips the favorite flag of a history row.
type FavoriteToggler interface {
	ToggleFavorite(ctx context.Context, recipeID, userID uuid.UUID) (bool, error)
}

// FavoriteResponse represents the new favorite state
// swagger:model FavoriteResponse
type FavoriteResponse struct {
	Success    bool `json:"success"`
	IsFavorite bool `json:"is_favorite"`
}

// NewFavoriteHandler returns an HTTP handler toggling the favorite flag of
// one of the caller's history rows.
// @Summary Toggle favorite
// @Description Flips is_favorite on a recipe owned by the authenticated user
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe id" format(uuid)
// @Success 200 {object} handlers.FavoriteResponse "New favorite state"
// @Failure 400 {object} handlers.ErrorResponse "Invalid recipe id"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 403 {object} handlers.ErrorResponse "Invalid token"
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to toggle favorite"
// @Security BearerAuth
// @Router /recipe/{id}/favorite [post]
func NewFavoriteHandler(svc FavoriteToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := middlewares.IdentityFromContext(r.Context())
		if id == nil {
			writeError(w, http.StatusUnauthorized, "User not authenticated")
			return
		}

		recipeID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid recipe id")
			return
		}

		isFavorite, err := svc.ToggleFavorite(r.Context(), recipeID, id.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRecipeNotFound):
				writeError(w, http.StatusNotFound, "Recipe not found")
			default:
				logger.FromContext(r.Context()).Errorw("toggle favorite failed", "recipe_id", recipeID, "err", err)
				writeError(w, http.StatusInternalServerError, "Failed to toggle favorite")
			}
			return
		}

		writeJSON(w, http.StatusOK, FavoriteResponse{Success: true, IsFavorite: isFavorite})
	}
}
