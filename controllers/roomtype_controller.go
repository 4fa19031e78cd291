package controllers

import (
	"net/http"
	"strconv"

	"github.com/lvnzip001/butterworth-bnb/models"
	"github.com/lvnzip001/butterworth-bnb/services"
	"github.com/lvnzip001/butterworth-bnb/utils"

	"github.com/gin-gonic/gin"
)

type UpdatePricingRequest struct {
	PricePerNight float64 `json:"price_per_night" binding:"required"`
	Quantity      *int    `json:"quantity" binding:"required"`
}

type RoomTypeController struct {
	RoomTypeSvc *services.RoomTypeService
}

func NewRoomTypeController(svc *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{RoomTypeSvc: svc}
}

// GET /api/room-types?bnb_id=...
func (rc *RoomTypeController) GetRoomTypes(c *gin.Context) {
	bnbID := c.Query("bnb_id")
	var (
		types []models.RoomType
		err   error
	)
	if bnbID != "" {
		types, err = rc.RoomTypeSvc.ListByBnb(bnbID)
	} else {
		types, err = rc.RoomTypeSvc.ListAll()
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

// GET /api/room-types/:id
func (rc *RoomTypeController) GetRoomType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room type id")
		return
	}
	rt, err := rc.RoomTypeSvc.GetByID(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

// PUT /api/admin/room-types/:id/pricing
func (rc *RoomTypeController) UpdatePricing(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room type id")
		return
	}
	var req UpdatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		utils.JSONError(c, http.StatusBadRequest, "price_per_night and quantity are required")
		return
	}
	rt, err := rc.RoomTypeSvc.UpdatePricing(uint(id), req.PricePerNight, *req.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}
