package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-generator/internal/logger"
	"github.com/sbilibin2017/gw-recipe-generator/internal/models"
	"github.com/sbilibin2017/gw-recipe-generator/internal/services"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password string) (*models.AuthResult, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username" validate:"required"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents a successful authentication
// swagger:model AuthResponse
type AuthResponse struct {
	// Outcome message
	// default: User registered successfully
	Message string `json:"message"`

	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Public user record
	User models.User `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique username. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.AuthResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Username already exists / invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Registration failed"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Username and password are required")
			return
		}

		res, err := svc.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusBadRequest, "Username already exists")
			case errors.Is(err, services.ErrPasswordTooLong):
				writeError(w, http.StatusBadRequest, "Password must be at most 72 bytes")
			default:
				logger.FromContext(r.Context()).Errorw("register failed", "err", err)
				writeError(w, http.StatusInternalServerError, "Registration failed")
			}
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{
			Message: "User registered successfully",
			Token:   res.Token,
			User:    res.User,
		})
	}
}
