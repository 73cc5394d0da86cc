package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-recipe-generator/internal/models"
)

const twoRecipes = `[{"name":"番茄炒蛋","image":"eggs","difficulty":"简单","time":"10分钟","ingredients":["番茄","鸡蛋","油"],"utensils":["锅"],"steps":[{"step":1,"description":"炒","duration":"60秒","visual":"pan"}],"note":"趁热"},{"name":"番茄蛋汤","difficulty":"简单","time":"15分钟","ingredients":["番茄","鸡蛋","水"],"utensils":["锅"],"steps":[],"note":""}]`

func TestLLM_ClassifyIngredient(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		err      error
		expected *models.Classification
		wantErr  error
	}{
		{
			name:     "plain json",
			content:  `{"name":"榴莲","emoji":"🍈","category":"fruit"}`,
			expected: &models.Classification{Name: "榴莲", Emoji: "🍈", Category: models.CategoryFruit},
		},
		{
			name:     "fenced json",
			content:  "```json\n{\"name\":\"秋葵\",\"emoji\":\"🌿\",\"category\":\"vegetable\"}\n```",
			expected: &models.Classification{Name: "秋葵", Emoji: "🌿", Category: models.CategoryVegetable},
		},
		{
			name:    "not an ingredient",
			content: "null",
		},
		{
			name:    "empty answer",
			content: "",
		},
		{
			name:    "missing name",
			content: `{"emoji":"🍈","category":"fruit"}`,
		},
		{
			name:    "unknown category",
			content: `{"name":"八角","emoji":"⭐","category":"spice"}`,
			wantErr: ErrMalformedOutput,
		},
		{
			name:    "not json",
			content: "I think it's a fruit",
			wantErr: ErrMalformedOutput,
		},
		{
			name:    "provider error",
			err:     errors.New("timeout"),
			wantErr: errors.New("timeout"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			completer := NewMockCompleter(ctrl)
			completer.EXPECT().
				Complete(gomock.Any(), classifySystemPrompt, "榴莲", float32(classifyTemperature)).
				Return(tt.content, tt.err)

			got, err := NewLLM(completer).ClassifyIngredient(context.Background(), "榴莲")
			if tt.wantErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.wantErr, ErrMalformedOutput) {
					assert.ErrorIs(t, err, ErrMalformedOutput)
				}
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLLM_SuggestRecipes(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, recipes []models.Recipe)
	}{
		{
			name:    "array",
			content: twoRecipes,
			check: func(t *testing.T, recipes []models.Recipe) {
				cards := decodeCards(t, recipes)
				require.Len(t, cards, 2)
				assert.Equal(t, "番茄炒蛋", cards[0].Name)
				assert.Equal(t, 1, cards[0].Steps[0].Step)
			},
		},
		{
			name:    "fenced array",
			content: "```json\n" + twoRecipes + "\n```",
			check: func(t *testing.T, recipes []models.Recipe) {
				assert.Len(t, recipes, 2)
			},
		},
		{
			name:    "single object is wrapped",
			content: `{"name":"凉拌黄瓜","difficulty":"简单","time":"5分钟","ingredients":["黄瓜","盐"],"utensils":[],"steps":[],"note":""}`,
			check: func(t *testing.T, recipes []models.Recipe) {
				cards := decodeCards(t, recipes)
				require.Len(t, cards, 1)
				assert.Equal(t, "凉拌黄瓜", cards[0].Name)
			},
		},
		{
			name:    "loosely typed members pass through",
			content: `[{"name":"凉拌黄瓜","time":5,"steps":[{"step":"1","description":"拍碎"}],"calories":120}]`,
			check: func(t *testing.T, recipes []models.Recipe) {
				require.Len(t, recipes, 1)
				assert.JSONEq(t, `{"name":"凉拌黄瓜","time":5,"steps":[{"step":"1","description":"拍碎"}],"calories":120}`, string(recipes[0]))
			},
		},
		{
			name:    "prose becomes placeholder",
			content: "Sorry, I cannot help with that.",
			check: func(t *testing.T, recipes []models.Recipe) {
				cards := decodeCards(t, recipes)
				require.Len(t, cards, 1)
				assert.Equal(t, "解析失败", cards[0].Name)
				assert.Equal(t, "未知", cards[0].Difficulty)
				assert.Equal(t, "Sorry, I cannot help with that.", cards[0].Note)
				require.Len(t, cards[0].Steps, 1)
				assert.Equal(t, "error", cards[0].Steps[0].Visual)
			},
		},
		{
			name:    "truncated json becomes placeholder",
			content: `[{"name":"番茄炒蛋"`,
			check: func(t *testing.T, recipes []models.Recipe) {
				cards := decodeCards(t, recipes)
				require.Len(t, cards, 1)
				assert.Equal(t, "解析失败", cards[0].Name)
			},
		},
		{
			name:    "empty answer is an empty list",
			content: "",
			check: func(t *testing.T, recipes []models.Recipe) {
				assert.NotNil(t, recipes)
				assert.Empty(t, recipes)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			completer := NewMockCompleter(ctrl)
			completer.EXPECT().
				Complete(gomock.Any(), recipeSystemPrompt(nil), "现有食材：番茄,鸡蛋", float32(recipeTemperature)).
				Return(tt.content, nil)

			recipes, err := NewLLM(completer).SuggestRecipes(context.Background(), []string{"番茄", "鸡蛋"}, nil)
			require.NoError(t, err)
			tt.check(t, recipes)
		})
	}
}

func TestLLM_SuggestRecipes_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := NewMockCompleter(ctrl)
	completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("502"))

	recipes, err := NewLLM(completer).SuggestRecipes(context.Background(), []string{"番茄"}, nil)
	assert.Error(t, err)
	assert.Nil(t, recipes)
}

func TestRecipeSystemPrompt(t *testing.T) {
	plain := recipeSystemPrompt(nil)
	assert.NotContains(t, plain, "用户偏好")
	assert.Contains(t, plain, "水、油、盐、糖")
	assert.Contains(t, plain, "3 个菜谱对象")

	biased := recipeSystemPrompt([]string{"辣", "清淡"})
	assert.Contains(t, biased, "6. 用户偏好：辣、清淡。请务必优先考虑这些口味或烹饪方式。")
	assert.True(t, strings.Index(biased, "用户偏好") < strings.Index(biased, "要求："))
}

func TestLLM_NarrateStory(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := NewMockCompleter(ctrl)
	completer.EXPECT().
		Stream(gomock.Any(), storySystemPrompt, "食材：番茄,鸡蛋", float32(storyTemperature), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, _ float32, emit func(string) error) error {
			if err := emit("只见"); err != nil {
				return err
			}
			return emit("那番茄")
		})

	var got []string
	err := NewLLM(completer).NarrateStory(context.Background(), []string{"番茄", "鸡蛋"}, func(s string) error {
		got = append(got, s)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"只见", "那番茄"}, got)
	assert.True(t, NewLLM(completer).Live())
}
