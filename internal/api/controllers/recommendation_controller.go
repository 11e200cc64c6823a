package controllers

import (
	"github.com/gin-gonic/gin"
	"lankatrails/internal/models/request_models"
	"lankatrails/internal/services"
	"lankatrails/pkg/utils"
	"net/http"
)

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationController(recommendationService services.RecommendationServiceInterface) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
	}
}

func (r *RecommendationController) Recommend(c *gin.Context) {
	var prefs request_models.RecommendationPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid preference payload")
		return
	}

	result, err := r.recommendationService.Recommend(c.Request.Context(), prefs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Recommendations generated successfully")
}

// GetEngineConfig exposes the current tuning tables (weights, traveler
// compatibility matrix, interest mapping) for inspection.
func (r *RecommendationController) GetEngineConfig(c *gin.Context) {
	utils.RespondSuccess(c, r.recommendationService.EngineConfig(), "Engine configuration")
}
