package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-recipe-generator/internal/assistant"
	"github.com/sbilibin2017/gw-recipe-generator/internal/logger"
	"github.com/sbilibin2017/gw-recipe-generator/internal/metrics"
	"github.com/sbilibin2017/gw-recipe-generator/internal/models"
	"github.com/sbilibin2017/gw-recipe-generator/internal/repositories"
)

//go:generate mockgen -source=recipe.go -destination=mock_recipe.go -package=services

// HistoryLimit caps the number of history rows returned.
const HistoryLimit = 20

const publishTimeout = 5 * time.Second

var (
	// ErrIngredientsRequired is returned when no ingredient was supplied.
	ErrIngredientsRequired = errors.New("ingredients are required")
	// ErrRecipeNotFound is returned for a missing or foreign recipe.
	ErrRecipeNotFound = errors.New("recipe not found")
)

// RecipeWriter defines history writes.
type RecipeWriter interface {
	Save(ctx context.Context, userID uuid.UUID, ingredients string, recipes []models.Recipe) (uuid.UUID, error) // Stores one generation
	ToggleFavorite(ctx context.Context, recipeID, userID uuid.UUID) (bool, error)                               // Flips the favorite flag
}

// RecipeReader defines history reads.
type RecipeReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.RecipeDB, error) // Newest first
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// RecipeService generates recipes and manages the history of signed-in users.
type RecipeService struct {
	writer      RecipeWriter
	reader      RecipeReader
	assistant   assistant.Assistant
	kafkaWriter KafkaWriter
	publishes   sync.WaitGroup
}

// NewRecipeService creates a new RecipeService. kafkaWriter may be nil.
func NewRecipeService(
	writer RecipeWriter,
	reader RecipeReader,
	asst assistant.Assistant,
	kafkaWriter KafkaWriter,
) *RecipeService {
	return &RecipeService{
		writer:      writer,
		reader:      reader,
		assistant:   asst,
		kafkaWriter: kafkaWriter,
	}
}

// Generate asks the assistant for recipes. For a signed-in user the result is
// also stored in the history; a failed save is logged and does not fail the call.
// The recipe event is published in the background.
func (s *RecipeService) Generate(ctx context.Context, ingredients, preferences []string, userID *uuid.UUID) (*models.GenerateResult, error) {
	if len(ingredients) == 0 {
		return nil, ErrIngredientsRequired
	}

	log := logger.FromContext(ctx)
	log.Infow("generating recipes",
		"ingredients", ingredients,
		"preferences", preferences,
		"live", s.assistant.Live(),
	)

	recipes, err := s.assistant.SuggestRecipes(ctx, ingredients, preferences)
	if err != nil {
		log.Errorw("recipe generation failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	metrics.RecipesGeneratedTotal.WithLabelValues(mode(s.assistant)).Inc()

	result := &models.GenerateResult{Recipes: recipes}
	if userID == nil {
		return result, nil
	}

	joined := strings.Join(ingredients, ",")
	id, err := s.writer.Save(ctx, *userID, joined, recipes)
	if err != nil {
		log.Errorw("failed to save history", "user_id", userID, "error", err)
		return result, nil
	}
	result.ID = &id

	event := models.RecipeEvent{
		EventID:     uuid.NewString(),
		RecipeID:    id.String(),
		UserID:      userID.String(),
		Ingredients: joined,
		RecipeCount: len(recipes),
		Timestamp:   time.Now().Unix(),
	}
	pubCtx := context.WithoutCancel(ctx)
	s.publishes.Add(1)
	go func() {
		defer s.publishes.Done()
		s.publishRecipeEvent(pubCtx, event)
	}()
	return result, nil
}

// Wait blocks until every event publish started by Generate has finished.
func (s *RecipeService) Wait() {
	s.publishes.Wait()
}

// ToggleFavorite flips the favorite flag of a recipe owned by the user.
func (s *RecipeService) ToggleFavorite(ctx context.Context, recipeID, userID uuid.UUID) (bool, error) {
	isFavorite, err := s.writer.ToggleFavorite(ctx, recipeID, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, ErrRecipeNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to toggle favorite", "recipe_id", recipeID, "user_id", userID, "error", err)
		return false, err
	}
	return isFavorite, nil
}

// History returns the newest HistoryLimit rows of the user.
func (s *RecipeService) History(ctx context.Context, userID uuid.UUID) ([]models.RecipeDB, error) {
	rows, err := s.reader.ListByUser(ctx, userID, HistoryLimit)
	if err != nil {
		logger.Log.Errorw("failed to fetch history", "user_id", userID, "error", err)
		return nil, err
	}
	return rows, nil
}

// publishRecipeEvent publishes a saved generation to Kafka.
func (s *RecipeService) publishRecipeEvent(ctx context.Context, event models.RecipeEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "recipe_id", event.RecipeID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal recipe event for Kafka", "recipe_id", event.RecipeID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish recipe event to Kafka", "recipe_id", event.RecipeID, "error", err)
	} else {
		logger.Log.Infow("Recipe event published to Kafka", "recipe_id", event.RecipeID, "recipes", event.RecipeCount)
	}
}

func mode(a assistant.Assistant) string {
	if a.Live() {
		return "live"
	}
	return "mock"
}
