package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/sbilibin2017/gw-recipe-generator/internal/assistant"
	"github.com/sbilibin2017/gw-recipe-generator/internal/models"
	"github.com/sbilibin2017/gw-recipe-generator/internal/repositories"
	"github.com/sbilibin2017/gw-recipe-generator/internal/services"
)

type catalogMocks struct {
	reader    *services.MockIngredientReader
	writer    *services.MockIngredientWriter
	cache     *services.MockIngredientCache
	assistant *assistant.MockAssistant
}

func newCatalogService(t *testing.T, withCache bool) (*services.CatalogService, catalogMocks) {
	ctrl := gomock.NewController(t)
	m := catalogMocks{
		reader:    services.NewMockIngredientReader(ctrl),
		writer:    services.NewMockIngredientWriter(ctrl),
		cache:     services.NewMockIngredientCache(ctrl),
		assistant: assistant.NewMockAssistant(ctrl),
	}
	var cache services.IngredientCache
	if withCache {
		cache = m.cache
	}
	return services.NewCatalogService(m.reader, m.writer, cache, m.assistant, nil), m
}

var tomato = models.IngredientDB{ID: 1, Name: "番茄", Emoji: "🍅", Category: models.CategoryVegetable}

func TestCatalogService_List(t *testing.T) {
	t.Run("without cache", func(t *testing.T) {
		svc, m := newCatalogService(t, false)
		m.reader.EXPECT().List(gomock.Any()).Return([]models.IngredientDB{tomato}, nil)

		items, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []models.Ingredient{{ID: "1", Name: "番茄", Emoji: "🍅", Category: models.CategoryVegetable}}, items)
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		svc, m := newCatalogService(t, true)
		cached := []models.Ingredient{{ID: "1", Name: "番茄"}}
		m.cache.EXPECT().GetCatalog(gomock.Any()).Return(cached, nil)

		items, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, cached, items)
	})

	t.Run("cache miss fills the cache", func(t *testing.T) {
		svc, m := newCatalogService(t, true)
		m.cache.EXPECT().GetCatalog(gomock.Any()).Return(nil, repositories.ErrCacheMiss)
		m.reader.EXPECT().List(gomock.Any()).Return([]models.IngredientDB{tomato}, nil)
		m.cache.EXPECT().SetCatalog(gomock.Any(), []models.Ingredient{tomato.DTO()}).Return(errors.New("redis down"))

		items, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("database error", func(t *testing.T) {
		svc, m := newCatalogService(t, false)
		m.reader.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := svc.List(context.Background())
		assert.Error(t, err)
	})
}

func TestCatalogService_Search_EmptyQuery(t *testing.T) {
	svc, _ := newCatalogService(t, false)
	for _, q := range []string{"", "   "} {
		_, err := svc.Search(context.Background(), q)
		assert.ErrorIs(t, err, services.ErrQueryRequired)
	}
}

func TestCatalogService_Search_KnownNameNeverAsksAssistant(t *testing.T) {
	svc, m := newCatalogService(t, false)
	m.reader.EXPECT().SearchByName(gomock.Any(), "番").Return([]models.IngredientDB{tomato}, nil)
	m.assistant.EXPECT().ClassifyIngredient(gomock.Any(), gomock.Any()).Times(0)

	res, err := svc.Search(context.Background(), " 番 ")
	require.NoError(t, err)
	assert.Equal(t, models.SourceDB, res.Source)
	assert.Equal(t, []models.Ingredient{tomato.DTO()}, res.Data)
}

func TestCatalogService_Search_LimiterOnlyBudgetsClassification(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockIngredientReader(ctrl)
	writer := services.NewMockIngredientWriter(ctrl)
	asst := assistant.NewMockAssistant(ctrl)
	svc := services.NewCatalogService(reader, writer, nil, asst, rate.NewLimiter(0, 1))

	reader.EXPECT().SearchByName(gomock.Any(), "番茄").Return([]models.IngredientDB{tomato}, nil).Times(20)
	for i := 0; i < 20; i++ {
		res, err := svc.Search(context.Background(), "番茄")
		require.NoError(t, err)
		assert.Equal(t, models.SourceDB, res.Source)
	}

	reader.EXPECT().SearchByName(gomock.Any(), "榴莲").Return(nil, nil).Times(2)
	asst.EXPECT().ClassifyIngredient(gomock.Any(), "榴莲").Return(&models.Classification{Name: "榴莲", Category: models.CategoryFruit}, nil)
	asst.EXPECT().Live().Return(false)

	res, err := svc.Search(context.Background(), "榴莲")
	require.NoError(t, err)
	assert.Equal(t, models.SourceMock, res.Source)

	_, err = svc.Search(context.Background(), "榴莲")
	assert.ErrorIs(t, err, services.ErrRateLimited)
}

func TestCatalogService_Search_MockAssistant(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockIngredientReader(ctrl)
	writer := services.NewMockIngredientWriter(ctrl)
	svc := services.NewCatalogService(reader, writer, nil, assistant.NewMock(), nil)

	reader.EXPECT().SearchByName(gomock.Any(), "榴莲").Return(nil, nil)

	res, err := svc.Search(context.Background(), "榴莲")
	require.NoError(t, err)
	assert.Equal(t, models.SourceMock, res.Source)
	require.Len(t, res.Data, 1)
	assert.True(t, strings.HasPrefix(res.Data[0].ID, "mock-"))
	assert.Equal(t, "榴莲", res.Data[0].Name)
	assert.Equal(t, "🥘", res.Data[0].Emoji)
	assert.Equal(t, models.CategoryVegetable, res.Data[0].Category)
}

func TestCatalogService_Search_Live(t *testing.T) {
	durian := &models.Classification{Name: "🍈榴莲 ", Emoji: "🍈", Category: models.CategoryFruit}
	saved := &models.IngredientDB{ID: 70, Name: "榴莲", Emoji: "🍈", Category: models.CategoryFruit}

	tests := []struct {
		name       string
		setup      func(m catalogMocks)
		wantSource string
		wantData   []models.Ingredient
		wantErr    error
	}{
		{
			name: "new ingredient is stored",
			setup: func(m catalogMocks) {
				m.assistant.EXPECT().ClassifyIngredient(gomock.Any(), "榴莲").Return(durian, nil)
				m.reader.EXPECT().GetByName(gomock.Any(), "榴莲").Return(nil, nil)
				m.writer.EXPECT().Save(gomock.Any(), models.Classification{Name: "榴莲", Emoji: "🍈", Category: models.CategoryFruit}).Return(saved, nil)
				m.cache.EXPECT().InvalidateCatalog(gomock.Any()).Return(nil)
			},
			wantSource: models.SourceAI,
			wantData:   []models.Ingredient{saved.DTO()},
		},
		{
			name: "reclassified to a known name",
			setup: func(m catalogMocks) {
				m.assistant.EXPECT().ClassifyIngredient(gomock.Any(), "榴莲").Return(durian, nil)
				m.reader.EXPECT().GetByName(gomock.Any(), "榴莲").Return(saved, nil)
			},
			wantSource: models.SourceAIExisting,
			wantData:   []models.Ingredient{saved.DTO()},
		},
		{
			name: "concurrent insert wins",
			setup: func(m catalogMocks) {
				m.assistant.EXPECT().ClassifyIngredient(gomock.Any(), "榴莲").Return(durian, nil)
				gomock.InOrder(
					m.reader.EXPECT().GetByName(gomock.Any(), "榴莲").Return(nil, nil),
					m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrConflict),
					m.reader.EXPECT().GetByName(gomock.Any(), "榴莲").Return(saved, nil),
				)
			},
			wantSource: models.SourceAIExisting,
			wantData:   []models.Ingredient{saved.DTO()},
		},
		{
			name: "not an ingredient",
			setup: func(m catalogMocks) {
				m.assistant.EXPECT().ClassifyIngredient(gomock.Any(), "榴莲").Return(nil, nil)
			},
			wantSource: models.SourceAI,
		},
		{
			name: "name made of symbols only",
			setup: func(m catalogMocks) {
				m.assistant.EXPECT().ClassifyIngredient(gomock.Any(), "榴莲").
					Return(&models.Classification{Name: "🍈", Emoji: "🍈", Category: models.CategoryFruit}, nil)
			},
			wantSource: models.SourceAI,
		},
		{
			name: "assistant failure",
			setup: func(m catalogMocks) {
				m.assistant.EXPECT().ClassifyIngredient(gomock.Any(), "榴莲").Return(nil, errors.New("timeout"))
			},
			wantErr: services.ErrUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newCatalogService(t, true)
			m.reader.EXPECT().SearchByName(gomock.Any(), "榴莲").Return([]models.IngredientDB{}, nil)
			m.assistant.EXPECT().Live().Return(true).AnyTimes()
			tt.setup(m)

			res, err := svc.Search(context.Background(), "榴莲")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSource, res.Source)
			assert.Equal(t, tt.wantData, res.Data)
		})
	}
}
