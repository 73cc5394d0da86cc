package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-recipe-generator/internal/jwt"
	"github.com/sbilibin2017/gw-recipe-generator/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthState tags the outcome of token verification.
type AuthState int

const (
	Anonymous AuthState = iota
	Authenticated
	Invalid
)

// Identity is the caller behind a valid token.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

// AuthResult is the tagged outcome of Verify. Identity is set only when
// State is Authenticated.
type AuthResult struct {
	State    AuthState
	Identity *Identity
	Err      error
}

type identityKey struct{}

// Verify inspects the bearer token of r. A request without a usable bearer
// token is Anonymous; a token that fails verification is Invalid.
func Verify(ctx context.Context, tokener Tokener, r *http.Request) AuthResult {
	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	if errors.Is(err, jwt.ErrMissingHeader) || errors.Is(err, jwt.ErrInvalidHeader) {
		return AuthResult{State: Anonymous}
	}
	if err != nil {
		return AuthResult{State: Invalid, Err: err}
	}

	claims, err := tokener.GetClaims(ctx, tokenString)
	if err != nil {
		return AuthResult{State: Invalid, Err: err}
	}
	return AuthResult{
		State:    Authenticated,
		Identity: &Identity{UserID: claims.UserID, Username: claims.Username},
	}
}

// AuthMiddleware attaches the caller identity to the request context.
//
// With required set, a request without a token gets 401 and a request with
// an invalid token gets 403. Otherwise both proceed anonymously.
func AuthMiddleware(tokener Tokener, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			res := Verify(ctx, tokener, r)

			switch res.State {
			case Authenticated:
				ctx = WithIdentity(ctx, res.Identity)
			case Invalid:
				logger.FromContext(ctx).Warnw("authorization failed", "err", res.Err)
				if required {
					writeError(w, http.StatusForbidden, "Invalid token")
					return
				}
			case Anonymous:
				if required {
					writeError(w, http.StatusUnauthorized, "Authentication required")
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the authenticated caller, or nil for anonymous requests.
func IdentityFromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityKey{}).(*Identity)
	return id
}

// WithIdentity stores an identity in the context.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
