package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// Category classifies an ingredient.
type Category string

const (
	CategoryVegetable Category = "vegetable"
	CategoryMeat      Category = "meat"
	CategorySeafood   Category = "seafood"
	CategoryStaple    Category = "staple"
	CategoryDairy     Category = "dairy"
	CategoryFruit     Category = "fruit"
	CategoryCondiment Category = "condiment"
)

// Categories lists every valid category.
var Categories = []Category{
	CategoryVegetable,
	CategoryMeat,
	CategorySeafood,
	CategoryStaple,
	CategoryDairy,
	CategoryFruit,
	CategoryCondiment,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// IngredientDB represents an ingredient row in the database
type IngredientDB struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Emoji     string    `db:"emoji"`
	Category  Category  `db:"category"`
	CreatedAt time.Time `db:"created_at"`
}

// Ingredient is a catalog entry as exposed over HTTP.
// Ids are strings so that unsaved mock entries can carry a synthetic id.
// swagger:model Ingredient
type Ingredient struct {
	// example: 1
	ID string `json:"id"`
	// example: 番茄
	Name string `json:"name"`
	// example: 🍅
	Emoji string `json:"emoji"`
	// example: vegetable
	Category Category `json:"category"`
}

// DTO converts a database row to its HTTP representation.
func (i IngredientDB) DTO() Ingredient {
	return Ingredient{
		ID:       strconv.FormatInt(i.ID, 10),
		Name:     i.Name,
		Emoji:    i.Emoji,
		Category: i.Category,
	}
}

// Search result sources.
const (
	SourceDB         = "db"
	SourceAI         = "ai"
	SourceAIExisting = "ai_existing"
	SourceMock       = "mock"
)

// SearchResult is the outcome of a catalog search.
// swagger:model SearchResult
type SearchResult struct {
	// example: db
	Source string       `json:"source"`
	Data   []Ingredient `json:"data"`
}

// MarshalJSON keeps an empty result as [] instead of null.
func (r SearchResult) MarshalJSON() ([]byte, error) {
	type alias SearchResult
	if r.Data == nil {
		r.Data = []Ingredient{}
	}
	return json.Marshal(alias(r))
}

// Classification is the model's answer for an unknown ingredient name.
type Classification struct {
	Name     string   `json:"name"`
	Emoji    string   `json:"emoji"`
	Category Category `json:"category"`
}
