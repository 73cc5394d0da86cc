// Package assistant provides the completion-provider capability used for
// ingredient classification, recipe suggestions and story narration.
//
// Two implementations exist: LLM calls a chat completion API, Mock returns
// deterministic placeholder data. The process picks one at startup.
package assistant

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-recipe-generator/internal/models"
)

//go:generate mockgen -source=assistant.go -destination=mock_assistant.go -package=assistant

// ErrMalformedOutput is returned when the model answer cannot be interpreted.
var ErrMalformedOutput = errors.New("malformed model output")

// Assistant is the completion-provider capability.
type Assistant interface {
	// Live reports whether a real provider is behind the assistant.
	Live() bool
	// ClassifyIngredient returns nil when the query is not a food ingredient.
	ClassifyIngredient(ctx context.Context, query string) (*models.Classification, error)
	SuggestRecipes(ctx context.Context, ingredients, preferences []string) ([]models.Recipe, error)
	NarrateStory(ctx context.Context, ingredients []string, emit func(string) error) error
}

// Completer is a chat completion backend.
type Completer interface {
	Complete(ctx context.Context, system, user string, temperature float32) (string, error)              // One-shot completion
	Stream(ctx context.Context, system, user string, temperature float32, emit func(string) error) error // Streaming completion
}
