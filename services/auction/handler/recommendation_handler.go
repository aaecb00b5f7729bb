package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"auction-engine/internal/recommender"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"
)

type RecommenderInterface interface {
	Recommend(ctx context.Context, userID string, limit int) ([]recommender.Recommendation, error)
	Search(ctx context.Context, userID, query string) ([]recommender.SearchResult, error)
}

type RecommendationHandler struct {
	engine RecommenderInterface
}

func NewRecommendationHandler(engine RecommenderInterface) *RecommendationHandler {
	return &RecommendationHandler{engine: engine}
}

// GetRecommendationsHandler handles GET /users/:user_id/recommendations
func (h *RecommendationHandler) GetRecommendationsHandler(c *gin.Context) {
	userID := c.Param("user_id")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid limit %q", raw), "invalid limit parameter")
			return
		}
		limit = parsed
	}

	recommendations, err := h.engine.Recommend(c.Request.Context(), userID, limit)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("GetRecommendationsHandler: failed to compute recommendations", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.RecommendationListResponse{Recommendations: recommendations}
	utils.JSONResponse(c, http.StatusOK, resp, "recommendations retrieved successfully")
	helpers.LogSuccess("GetRecommendationsHandler", "recommendations retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(recommendations),
	})
}

// SearchHandler handles POST /search
func (h *RecommendationHandler) SearchHandler(c *gin.Context) {
	var req helpers.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SearchHandler", err)
		return
	}

	results, err := h.engine.Search(c.Request.Context(), req.UserID, req.Query)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SearchHandler: search failed", map[string]any{
			"user_id": req.UserID,
			"query":   req.Query,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.SearchResponse{Results: results}, "search completed successfully")
	helpers.LogSuccess("SearchHandler", "search completed successfully", map[string]any{
		"user_id": req.UserID,
		"query":   req.Query,
		"count":   len(results),
	})
}
