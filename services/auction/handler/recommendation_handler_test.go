package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	model "auction-engine/internal/models"
	"auction-engine/internal/recommender"
	"auction-engine/services/auction/helpers"
)

// Test GetRecommendationsHandler
func TestGetRecommendationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := NewMockRecommenderInterface(ctrl)
	handler := NewRecommendationHandler(mockEngine)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/users/:user_id/recommendations", handler.GetRecommendationsHandler)

	t.Run("success", func(t *testing.T) {
		mockEngine.EXPECT().
			Recommend(gomock.Any(), "user1", 0).
			Return([]recommender.Recommendation{
				{Product: model.Product{ProductID: "p1", Name: "watch"}, Score: 0.8},
				{Product: model.Product{ProductID: "p2", Name: "camera"}, Score: 0.3},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/user1/recommendations", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]any)
		recommendations := data["recommendations"].([]any)
		require.Len(t, recommendations, 2)
	})

	t.Run("custom_limit", func(t *testing.T) {
		mockEngine.EXPECT().
			Recommend(gomock.Any(), "user1", 5).
			Return([]recommender.Recommendation{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/user1/recommendations?limit=5", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid_limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/user1/recommendations?limit=abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("engine_error", func(t *testing.T) {
		mockEngine.EXPECT().
			Recommend(gomock.Any(), "user1", 0).
			Return(nil, errors.New("storage offline"))

		req := httptest.NewRequest(http.MethodGet, "/users/user1/recommendations", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

// Test SearchHandler
func TestSearchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := NewMockRecommenderInterface(ctrl)
	handler := NewRecommendationHandler(mockEngine)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/search", handler.SearchHandler)

	t.Run("success", func(t *testing.T) {
		mockEngine.EXPECT().
			Search(gomock.Any(), "user1", "telescope").
			Return([]recommender.SearchResult{
				{Product: model.Product{ProductID: "p1", Name: "telescope"}, Score: 10},
			}, nil)

		body, err := json.Marshal(helpers.SearchRequest{UserID: "user1", Query: "telescope"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]any)
		results := data["results"].([]any)
		require.Len(t, results, 1)
	})

	t.Run("missing_query", func(t *testing.T) {
		body, err := json.Marshal(helpers.SearchRequest{UserID: "user1"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("anonymous_search", func(t *testing.T) {
		mockEngine.EXPECT().
			Search(gomock.Any(), "", "camera").
			Return([]recommender.SearchResult{}, nil)

		body, err := json.Marshal(helpers.SearchRequest{Query: "camera"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})
}
