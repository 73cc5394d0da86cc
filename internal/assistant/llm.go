package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/sbilibin2017/gw-recipe-generator/internal/logger"
	"github.com/sbilibin2017/gw-recipe-generator/internal/models"
)

var fencePattern = regexp.MustCompile("```json\\n?|```")

// LLM implements Assistant on top of a chat completion backend.
type LLM struct {
	completer Completer
}

// NewLLM creates a live assistant.
func NewLLM(completer Completer) *LLM {
	return &LLM{completer: completer}
}

func (a *LLM) Live() bool { return true }

// ClassifyIngredient asks the model for the canonical name, emoji and category of query.
func (a *LLM) ClassifyIngredient(ctx context.Context, query string) (*models.Classification, error) {
	content, err := a.completer.Complete(ctx, classifySystemPrompt, query, classifyTemperature)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Infow("ingredient classified", "query", query, "content", content)

	if strings.TrimSpace(content) == "" {
		content = "null"
	}

	var result *models.Classification
	if err := json.Unmarshal([]byte(stripFences(content)), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if result == nil || result.Name == "" {
		return nil, nil
	}
	if !result.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrMalformedOutput, result.Category)
	}
	return result, nil
}

// SuggestRecipes asks the model for three recipes that use only the given ingredients.
// Output that is not JSON at all is turned into a single placeholder recipe.
func (a *LLM) SuggestRecipes(ctx context.Context, ingredients, preferences []string) ([]models.Recipe, error) {
	content, err := a.completer.Complete(ctx, recipeSystemPrompt(preferences), recipeUserPrompt(ingredients), recipeTemperature)
	if err != nil {
		return nil, err
	}
	if content == "" {
		content = "[]"
	}

	recipes, err := parseRecipes(stripFences(content))
	if err != nil {
		logger.FromContext(ctx).Warnw("model returned malformed recipes", "error", err, "content", content)
		return []models.Recipe{placeholderRecipe(content)}, nil
	}
	return recipes, nil
}

// NarrateStory streams a story about the ingredients to emit.
func (a *LLM) NarrateStory(ctx context.Context, ingredients []string, emit func(string) error) error {
	return a.completer.Stream(ctx, storySystemPrompt, storyUserPrompt(ingredients), storyTemperature, emit)
}

func stripFences(s string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(s, ""))
}

// parseRecipes accepts any JSON document. An array yields its elements and
// any other value is wrapped as a single recipe. Members are not validated.
func parseRecipes(s string) ([]models.Recipe, error) {
	data := []byte(s)
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: not JSON", ErrMalformedOutput)
	}
	if !bytes.HasPrefix(data, []byte("[")) {
		return []models.Recipe{models.Recipe(data)}, nil
	}

	recipes := []models.Recipe{}
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func placeholderRecipe(raw string) models.Recipe {
	return models.NewRecipe(models.RecipeCard{
		Name:        "解析失败",
		Difficulty:  "未知",
		Time:        "未知",
		Ingredients: []string{},
		Utensils:    []string{},
		Steps: []models.RecipeStep{
			{Step: 1, Description: "AI 返回的数据格式有误，请重试。", Duration: "0秒", Visual: "error"},
		},
		Note: raw,
	})
}
