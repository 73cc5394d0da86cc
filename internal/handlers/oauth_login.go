package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-generator/internal/logger"
	"github.com/sbilibin2017/gw-recipe-generator/internal/models"
	"github.com/sbilibin2017/gw-recipe-generator/internal/services"
)

//go:generate mockgen -source=oauth_login.go -destination=mock_oauth_login.go -package=handlers

// OAuthLoginer defines the interface that the oauth service must implement.
type OAuthLoginer interface {
	OAuthLogin(ctx context.Context, provider, code string) (*models.AuthResult, error)
}

// OAuthLoginRequest represents the JSON body for the simulated OAuth exchange
// swagger:model OAuthLoginRequest
type OAuthLoginRequest struct {
	// Provider name
	// required: true
	// default: github
	Provider string `json:"provider" validate:"required"`

	// Authorization code, accepted only with the valid_ prefix
	// required: true
	// default: valid_demo
	Code string `json:"code" validate:"required"`
}

// OAuthLoginResponse represents a successful OAuth login
// swagger:model OAuthLoginResponse
type OAuthLoginResponse struct {
	AuthResponse

	// Whether the account was created by this call
	IsNewUser bool `json:"isNewUser"`
}

// NewOAuthLoginHandler returns an HTTP handler for the simulated OAuth login.
// @Summary OAuth login (demo)
// @Description Simulated authorization-code exchange. No provider is contacted; codes must start with valid_.
// @Tags auth
// @Accept json
// @Produce json
// @Param oauthLoginRequest body handlers.OAuthLoginRequest true "OAuth Login Request"
// @Success 200 {object} handlers.OAuthLoginResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Provider and code are required"
// @Failure 401 {object} handlers.ErrorResponse "Invalid OAuth code"
// @Failure 500 {object} handlers.ErrorResponse "OAuth Login failed"
// @Router /auth/oauth-login [post]
func NewOAuthLoginHandler(svc OAuthLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OAuthLoginRequest

		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Provider and code are required")
			return
		}

		res, err := svc.OAuthLogin(r.Context(), req.Provider, req.Code)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidOAuthCode):
				writeError(w, http.StatusUnauthorized, "Invalid OAuth code. Verification failed with provider.")
			default:
				logger.FromContext(r.Context()).Errorw("oauth login failed", "provider", req.Provider, "err", err)
				writeError(w, http.StatusInternalServerError, "OAuth Login failed")
			}
			return
		}

		message := "OAuth Login successful"
		if res.IsNewUser {
			message = "OAuth Registration successful"
		}
		writeJSON(w, http.StatusOK, OAuthLoginResponse{
			AuthResponse: AuthResponse{
				Message: message,
				Token:   res.Token,
				User:    res.User,
			},
			IsNewUser: res.IsNewUser,
		})
	}
}
