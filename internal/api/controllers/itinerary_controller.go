package controllers

import (
	"github.com/gin-gonic/gin"
	"lankatrails/internal/models/request_models"
	"lankatrails/internal/services"
	"lankatrails/pkg/utils"
	"net/http"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

func (i *ItineraryController) BuildItinerary(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary payload")
		return
	}

	if len(req.Destinations) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "At least one destination is required")
		return
	}

	itinerary, err := i.itineraryService.BuildItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary built successfully")
}
