// controllers/booking_controller.go
package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/lvnzip001/butterworth-bnb/models"
	"github.com/lvnzip001/butterworth-bnb/services"
	"github.com/lvnzip001/butterworth-bnb/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingRequest struct {
	BnbID        string  `json:"bnb_id" binding:"required"`
	RoomTypeID   uint    `json:"room_type_id" binding:"required"`
	GuestName    string  `json:"guest_name" binding:"required"`
	GuestEmail   string  `json:"guest_email" binding:"required"`
	GuestPhone   string  `json:"guest_phone" binding:"required"`
	CheckinDate  string  `json:"checkin_date" binding:"required"`  // YYYY-MM-DD
	CheckoutDate string  `json:"checkout_date" binding:"required"` // YYYY-MM-DD
	Adults       int     `json:"adults"`
	Children     int     `json:"children"`
	TotalCost    float64 `json:"total_cost" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateRoomRequest struct {
	RoomTypeID uint `json:"room_type_id" binding:"required"`
}

type DeleteBookingRequest struct {
	Reason       string `json:"reason"`
	RefundStatus string `json:"refund_status"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// serviceStatus maps service sentinel errors to HTTP status codes. Anything
// unrecognized is a backend failure.
func serviceStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrCheckinNotFound),
		errors.Is(err, services.ErrRoomTypeNotFound),
		errors.Is(err, services.ErrBnbNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNegativeAvailability):
		return http.StatusConflict
	case errors.Is(err, services.ErrMissingStayRefs):
		return http.StatusConflict
	case errors.Is(err, services.ErrNothingToUndo):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidRefundStatus),
		errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respondServiceError(c *gin.Context, err error) {
	utils.JSONError(c, serviceStatus(err), err.Error())
}

// POST /api/bookings
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	checkin, err := parseDate(req.CheckinDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkin_date, use YYYY-MM-DD")
		return
	}
	checkout, err := parseDate(req.CheckoutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkout_date, use YYYY-MM-DD")
		return
	}

	booking, err := bc.BookingSvc.CreateBooking(services.CreateBookingInput{
		BnbID:        req.BnbID,
		RoomTypeID:   req.RoomTypeID,
		GuestName:    req.GuestName,
		GuestEmail:   req.GuestEmail,
		GuestPhone:   req.GuestPhone,
		CheckinDate:  checkin,
		CheckoutDate: checkout,
		Adults:       req.Adults,
		Children:     req.Children,
		TotalCost:    req.TotalCost,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Confirmation email is best effort; the booking stands either way.
	go func(b models.Booking) {
		subject := "Booking received: " + b.BookingCode
		body := fmt.Sprintf(
			"Hi %s,\n\nWe received your booking %s for %s to %s. "+
				"We will confirm once payment clears.\n\nTotal: %.2f",
			b.GuestName, b.BookingCode,
			b.CheckinDate.Format("2006-01-02"), b.CheckoutDate.Format("2006-01-02"),
			b.TotalCost,
		)
		if err := utils.SendCustomerEmail(b.GuestEmail, subject, body); err != nil {
			log.Printf("booking confirmation email failed for %s: %v", b.BookingCode, err)
		}
	}(*booking)

	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GET /api/admin/bookings
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.BookingSvc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GET /api/admin/bookings/:id  (numeric id or booking code)
func (bc *BookingController) GetBooking(c *gin.Context) {
	raw := c.Param("id")
	var (
		booking *models.Booking
		err     error
	)
	if id, convErr := strconv.ParseUint(raw, 10, 64); convErr == nil {
		booking, err = bc.BookingSvc.GetByID(uint(id))
	} else {
		booking, err = bc.BookingSvc.GetByCode(raw)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// PATCH /api/admin/bookings/:id/status
func (bc *BookingController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	if err := bc.BookingSvc.UpdateStatus(uint(id), req.Status); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id, "status": req.Status})
}

// PATCH /api/admin/bookings/:id/room
func (bc *BookingController) UpdateRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	if err := bc.BookingSvc.UpdateRoomType(uint(id), req.RoomTypeID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id, "room_type_id": req.RoomTypeID})
}

// DELETE /api/admin/bookings/:id
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	var req DeleteBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	if err := bc.BookingSvc.Delete(uint(id), req.Reason, req.RefundStatus); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}
