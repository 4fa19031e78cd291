// controllers/checkin_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/lvnzip001/butterworth-bnb/services"
	"github.com/lvnzip001/butterworth-bnb/utils"

	"github.com/gin-gonic/gin"
)

type CheckinRequest struct {
	BookingCode       string `json:"booking_id" binding:"required"`
	IDNumber          string `json:"id_number" binding:"required"`
	EmergencyContact  string `json:"emergency_contact"`
	CheckinTime       string `json:"checkin_time"` // RFC 3339, empty means "now"
	KeyHandedOver     bool   `json:"key_handed_over"`
	RulesAcknowledged bool   `json:"rules_acknowledged"`
	PaymentConfirmed  bool   `json:"payment_confirmed"`
	RoomInspected     bool   `json:"room_inspected"`
	Notes             string `json:"notes"`
}

type CheckoutRequest struct {
	BookingCode   string `json:"booking_id" binding:"required"`
	RoomInspected bool   `json:"room_inspected"`
	KeyCollected  bool   `json:"key_collected"`
	Comments      string `json:"comments"`
}

type CheckinController struct {
	CheckinSvc *services.CheckinService
}

func NewCheckinController(svc *services.CheckinService) *CheckinController {
	return &CheckinController{CheckinSvc: svc}
}

// POST /api/admin/checkins
func (cc *CheckinController) CheckIn(c *gin.Context) {
	var req CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	var checkinTime time.Time
	if req.CheckinTime != "" {
		parsed, err := time.Parse(time.RFC3339, req.CheckinTime)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid checkin_time, use RFC 3339")
			return
		}
		checkinTime = parsed
	}
	checkin, err := cc.CheckinSvc.CheckIn(services.CheckinInput{
		BookingCode:       req.BookingCode,
		IDNumber:          req.IDNumber,
		EmergencyContact:  req.EmergencyContact,
		CheckinTime:       checkinTime,
		KeyHandedOver:     req.KeyHandedOver,
		RulesAcknowledged: req.RulesAcknowledged,
		PaymentConfirmed:  req.PaymentConfirmed,
		RoomInspected:     req.RoomInspected,
		Notes:             req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, checkin)
}

// GET /api/admin/checkins
func (cc *CheckinController) GetCheckins(c *gin.Context) {
	list, err := cc.CheckinSvc.ListActive()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// POST /api/admin/checkins/undo
func (cc *CheckinController) UndoCheckin(c *gin.Context) {
	booking, err := cc.CheckinSvc.UndoLastCheckin()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// POST /api/admin/checkins/checkout
func (cc *CheckinController) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	record, err := cc.CheckinSvc.Checkout(services.CheckoutInput{
		BookingCode:   req.BookingCode,
		RoomInspected: req.RoomInspected,
		KeyCollected:  req.KeyCollected,
		Comments:      req.Comments,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, record)
}

// GET /api/admin/checkins/history/:code
func (cc *CheckinController) History(c *gin.Context) {
	list, err := cc.CheckinSvc.History(c.Param("code"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}
