package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecipeStep is one ordered cooking step.
// swagger:model RecipeStep
type RecipeStep struct {
	// example: 1
	Step int `json:"step"`
	// example: 将番茄切块
	Description string `json:"description"`
	// example: 30秒
	Duration string `json:"duration"`
	// example: Sliced tomatoes on cutting board
	Visual string `json:"visual"`
}

// RecipeCard is the recipe shape the completion provider is asked for.
// Provider output is not forced into it; see Recipe.
// swagger:model Recipe
type RecipeCard struct {
	// History row the recipe was saved under, absent for guests.
	ID *uuid.UUID `json:"id,omitempty"`
	// example: 番茄炒蛋
	Name string `json:"name"`
	// Cover image prompt.
	// example: Plate of tomato scrambled eggs, soft lighting
	Image string `json:"image,omitempty"`
	// example: 简单
	Difficulty string `json:"difficulty"`
	// example: 20分钟
	Time        string       `json:"time"`
	Ingredients []string     `json:"ingredients"`
	Utensils    []string     `json:"utensils"`
	Steps       []RecipeStep `json:"steps"`
	// example: 大厨贴士
	Note string `json:"note"`
}

// Recipe is one generated recipe exactly as the provider returned it.
// Unknown fields and loosely typed values survive storage and responses.
type Recipe json.RawMessage

// NewRecipe encodes a card into a Recipe.
func NewRecipe(card RecipeCard) Recipe {
	data, err := json.Marshal(card)
	if err != nil {
		return Recipe("{}")
	}
	return Recipe(data)
}

// MarshalJSON implements json.Marshaler.
func (r Recipe) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	*r = append(Recipe(nil), data...)
	return nil
}

// WithID returns the recipe with its "id" member set to id.
// Recipes that are not JSON objects are returned unchanged.
func (r Recipe) WithID(id uuid.UUID) Recipe {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(r, &fields); err != nil || fields == nil {
		return r
	}

	idJSON, _ := json.Marshal(id)
	if _, ok := fields["id"]; !ok {
		// keep the provider's member order
		body := bytes.TrimSpace(r)
		rest := bytes.TrimSpace(body[1:])
		out := append([]byte(`{"id":`), idJSON...)
		if len(rest) > 0 && rest[0] != '}' {
			out = append(out, ',')
		}
		return Recipe(append(out, rest...))
	}

	fields["id"] = idJSON
	data, err := json.Marshal(fields)
	if err != nil {
		return r
	}
	return Recipe(data)
}

// RecipeDB represents a recipes row in the database
type RecipeDB struct {
	ID          uuid.UUID `json:"id" db:"id"`                   // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`         // Owning user
	Ingredients string    `json:"ingredients" db:"ingredients"` // Comma-joined ingredient list
	RecipeData  JSON      `json:"recipe_data" db:"recipe_data"` // Generated recipes, stored as-is
	IsFavorite  bool      `json:"is_favorite" db:"is_favorite"` // Favorite flag
	CreatedAt   time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
}

// GenerateResult is the outcome of a recipe generation.
type GenerateResult struct {
	Recipes []Recipe
	ID      *uuid.UUID
}

// RecipeEvent is published after a generation has been saved to history.
type RecipeEvent struct {
	EventID     string `json:"event_id"`
	RecipeID    string `json:"recipe_id"`
	UserID      string `json:"user_id"`
	Ingredients string `json:"ingredients"`
	RecipeCount int    `json:"recipe_count"`
	Timestamp   int64  `json:"timestamp"`
}

// JSON is a raw JSON document read from a jsonb column and passed through untouched.
type JSON json.RawMessage

// Scan implements sql.Scanner.
func (j *JSON) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append(JSON(nil), v...)
	case string:
		*j = JSON(v)
	default:
		return fmt.Errorf("unsupported type %T for JSON column", src)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (j JSON) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}
