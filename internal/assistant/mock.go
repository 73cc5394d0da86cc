package assistant

import (
	"context"

	"github.com/sbilibin2017/gw-recipe-generator/internal/models"
)

// MockStory is the canned story returned without a provider.
const MockStory = "厨神正在闭关修炼，暂时无法讲述江湖传说..."

const (
	mockIngredientEmoji = "🥘"
	unknownIngredient   = "未知食材"
)

// Mock implements Assistant without calling out.
type Mock struct{}

func NewMock() *Mock {
	return &Mock{}
}

func (Mock) Live() bool { return false }

// ClassifyIngredient echoes the query back as a vegetable.
func (Mock) ClassifyIngredient(_ context.Context, query string) (*models.Classification, error) {
	return &models.Classification{
		Name:     query,
		Emoji:    mockIngredientEmoji,
		Category: models.CategoryVegetable,
	}, nil
}

// SuggestRecipes returns two fixed recipes built around the first ingredient.
func (Mock) SuggestRecipes(_ context.Context, ingredients, _ []string) ([]models.Recipe, error) {
	first := unknownIngredient
	if len(ingredients) > 0 && ingredients[0] != "" {
		first = ingredients[0]
	}

	with := func(extra ...string) []string {
		list := make([]string, 0, len(ingredients)+len(extra))
		list = append(list, ingredients...)
		return append(list, extra...)
	}

	cards := []models.RecipeCard{
		{
			Name:        "AI 特制：" + first + " 炒蛋 (模拟)",
			Image:       "Plate of scrambled eggs with tomatoes, professional food photography",
			Difficulty:  "简单",
			Time:        "10分钟",
			Ingredients: with("油", "盐"),
			Utensils:    []string{"平底锅", "锅铲", "盘子"},
			Steps: []models.RecipeStep{
				{Step: 1, Description: "将所有食材洗净切好", Duration: "60秒", Visual: "Chopping vegetables on a board"},
				{Step: 2, Description: "这是一个模拟生成的步骤，因为未配置 API Key", Duration: "30秒", Visual: "Cooking pot on stove"},
			},
			Note: "当前使用的是模拟数据。",
		},
		{
			Name:        "清蒸 " + first + " (模拟)",
			Image:       "Steamed food in a bamboo steamer, steam rising, delicious",
			Difficulty:  "中等",
			Time:        "15分钟",
			Ingredients: with("水", "盐"),
			Utensils:    []string{"蒸锅", "盘子"},
			Steps: []models.RecipeStep{
				{Step: 1, Description: "准备好食材", Duration: "30秒", Visual: "Fresh ingredients on plate"},
				{Step: 2, Description: "上锅蒸煮", Duration: "600秒", Visual: "Steaming pot with steam"},
			},
			Note: "记得配置 API Key 体验真实功能。",
		},
	}

	recipes := make([]models.Recipe, 0, len(cards))
	for _, card := range cards {
		recipes = append(recipes, models.NewRecipe(card))
	}
	return recipes, nil
}

// NarrateStory emits MockStory once.
func (Mock) NarrateStory(_ context.Context, _ []string, emit func(string) error) error {
	return emit(MockStory)
}
