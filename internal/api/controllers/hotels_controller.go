package controllers

import (
	"github.com/gin-gonic/gin"
	"lankatrails/internal/models/request_models"
	"lankatrails/internal/services"
	"lankatrails/pkg/utils"
	"net/http"
)

type HotelsController struct {
	hotelService services.HotelServiceInterface
}

func NewHotelsController(hotelService services.HotelServiceInterface) *HotelsController {
	return &HotelsController{
		hotelService: hotelService,
	}
}

func (h *HotelsController) CreateHotel(c *gin.Context) {
	var req request_models.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid hotel payload")
		return
	}

	id, err := h.hotelService.CreateHotel(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Hotel created successfully")
}

func (h *HotelsController) ListHotels(c *gin.Context) {
	page, pageSize, ok := parsePaging(c)
	if !ok {
		return
	}

	hotels, err := h.hotelService.ListHotels(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, hotels, "Hotels fetched successfully")
}
