package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-recipe-generator/internal/models"
	"github.com/sbilibin2017/gw-recipe-generator/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockIngredientLister(ctrl)
	handler := NewIngredientsHandler(mockSvc)

	t.Run("success", func(t *testing.T) {
		items := []models.Ingredient{
			{ID: "1", Name: "番茄", Emoji: "🍅", Category: models.CategoryVegetable},
			{ID: "2", Name: "牛肉", Emoji: "🥩", Category: models.CategoryMeat},
		}
		mockSvc.EXPECT().List(gomock.Any()).Return(items, nil)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ingredients", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var got []models.Ingredient
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, items, got)
	})

	t.Run("empty catalog renders an array", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ingredients", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("storage error", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ingredients", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Failed to fetch ingredients"}`, w.Body.String())
	})
}

func TestIngredientSearchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockIngredientSearcher(ctrl)
	handler := NewIngredientSearchHandler(mockSvc)

	tests := []struct {
		name         string
		url          string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "catalog hit",
			url:  "/api/ingredients/search?query=%E7%95%AA%E8%8C%84",
			mockSetup: func() {
				mockSvc.EXPECT().Search(gomock.Any(), "番茄").Return(&models.SearchResult{
					Source: models.SourceDB,
					Data:   []models.Ingredient{{ID: "1", Name: "番茄", Emoji: "🍅", Category: models.CategoryVegetable}},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"source":"db","data":[{"id":"1","name":"番茄","emoji":"🍅","category":"vegetable"}]}`,
		},
		{
			name: "not food",
			url:  "/api/ingredients/search?query=chair",
			mockSetup: func() {
				mockSvc.EXPECT().Search(gomock.Any(), "chair").Return(&models.SearchResult{Source: models.SourceAI}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"source":"ai","data":[]}`,
		},
		{
			name: "missing query",
			url:  "/api/ingredients/search",
			mockSetup: func() {
				mockSvc.EXPECT().Search(gomock.Any(), "").Return(nil, services.ErrQueryRequired)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Query parameter is required"}`,
		},
		{
			name: "classification budget exhausted",
			url:  "/api/ingredients/search?query=x",
			mockSetup: func() {
				mockSvc.EXPECT().Search(gomock.Any(), "x").Return(nil, services.ErrRateLimited)
			},
			expectedCode: http.StatusTooManyRequests,
			expectedBody: `{"error":"Too many requests"}`,
		},
		{
			name: "upstream failure",
			url:  "/api/ingredients/search?query=x",
			mockSetup: func() {
				mockSvc.EXPECT().Search(gomock.Any(), "x").Return(nil, services.ErrUpstream)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Failed to search ingredient"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
