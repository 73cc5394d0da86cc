package services

import (
	"context"
	"database/sql"
	"errors"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-recipe-generator/internal/logger"
	"github.com/sbilibin2017/gw-recipe-generator/internal/metrics"
	"github.com/sbilibin2017/gw-recipe-generator/internal/models"
	"github.com/sbilibin2017/gw-recipe-generator/internal/repositories"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidOAuthCode   = errors.New("invalid oauth code")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// oauthCodePrefix marks codes accepted by the simulated OAuth exchange.
const oauthCodePrefix = "valid_"

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)       // Returns nil when absent
	GetByOAuth(ctx context.Context, provider, oauthID string) (*models.UserDB, error) // Returns nil when absent
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username string) (string, error)
}

// AuthService handles registration, login and the simulated OAuth flow.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates an account and signs a token for it.
func (svc *AuthService) Register(ctx context.Context, username, password string) (*models.AuthResult, error) {
	if len(password) > maxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if user != nil {
		logger.Log.Warnw("user already exists", "username", username)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user = &models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		PasswordHash: string(hashedPassword),
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}
	metrics.UsersRegisteredTotal.WithLabelValues("password").Inc()

	return svc.issue(ctx, user, false)
}

// Login checks the password and signs a fresh token.
// An unknown username and a wrong password fail the same way.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.AuthResult, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Warnw("login for unknown user", "username", username)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	return svc.issue(ctx, user, false)
}

// OAuthLogin simulates an authorization-code exchange.
//
// DEMO ONLY: no provider is contacted. Any code starting with "valid_" is
// accepted and mapped to a synthetic external identity, so this must never
// face real provider traffic.
func (svc *AuthService) OAuthLogin(ctx context.Context, provider, code string) (*models.AuthResult, error) {
	if !strings.HasPrefix(code, oauthCodePrefix) {
		logger.Log.Warnw("rejected oauth code", "provider", provider)
		return nil, ErrInvalidOAuthCode
	}
	oauthID := provider + "_user_" + code

	user, err := svc.reader.GetByOAuth(ctx, provider, oauthID)
	if err != nil {
		logger.Log.Errorw("failed to look up oauth user", "provider", provider, "err", err)
		return nil, err
	}
	if user != nil {
		return svc.issue(ctx, user, false)
	}

	// the account gets a password nobody knows
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user = &models.UserDB{
		UserID:        uuid.New(),
		Username:      provider + "_" + randomSuffix(6),
		PasswordHash:  string(hashedPassword),
		OAuthProvider: sql.NullString{String: provider, Valid: true},
		OAuthID:       sql.NullString{String: oauthID, Valid: true},
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to create oauth user", "provider", provider, "err", err)
		return nil, err
	}
	metrics.UsersRegisteredTotal.WithLabelValues("oauth").Inc()
	logger.Log.Infow("oauth user created", "provider", provider, "username", user.Username)

	return svc.issue(ctx, user, true)
}

func (svc *AuthService) issue(ctx context.Context, user *models.UserDB, isNew bool) (*models.AuthResult, error) {
	token, err := svc.jwt.Generate(ctx, user.UserID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, err
	}
	return &models.AuthResult{
		Token:     token,
		User:      user.Public(),
		IsNewUser: isNew,
	}, nil
}

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[rand.Intn(len(base36))]
	}
	return string(b)
}
