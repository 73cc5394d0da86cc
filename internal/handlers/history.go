package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipe-generator/internal/logger"
	"github.com/sbilibin2017/gw-recipe-generator/internal/middlewares"
	"github.com/sbilibin2017/gw-recipe-generator/internal/models"
)

//go:generate mockgen -source=history.go -destination=mock_history.go -package=handlers

// HistoryReader returns the caller's most recent generations.
type HistoryReader interface {
	History(ctx context.Context, userID uuid.UUID) ([]models.RecipeDB, error)
}

// NewHistoryHandler returns an HTTP handler listing the caller's recipe history.
// @Summary Recipe history
// @Description Returns the 20 most recent generations of the authenticated user, newest first
// @Tags recipes
// @Produce json
// @Success 200 {array} models.RecipeDB "History rows"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 403 {object} handlers.ErrorResponse "Invalid token"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch history"
// @Security BearerAuth
// @Router /history [get]
func NewHistoryHandler(svc HistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := middlewares.IdentityFromContext(r.Context())
		if id == nil {
			writeError(w, http.StatusUnauthorized, "User not authenticated")
			return
		}

		rows, err := svc.History(r.Context(), id.UserID)
		if err != nil {
			logger.FromContext(r.Context()).Errorw("history fetch failed", "user_id", id.UserID, "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch history")
			return
		}
		if rows == nil {
			rows = []models.RecipeDB{}
		}
		writeJSON(w, http.StatusOK, rows)
	}
}
