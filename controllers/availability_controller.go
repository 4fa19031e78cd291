// controllers/availability_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/lvnzip001/butterworth-bnb/services"
	"github.com/lvnzip001/butterworth-bnb/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	AvailabilitySvc *services.AvailabilityService
}

func NewAvailabilityController(svc *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{AvailabilitySvc: svc}
}

// GET /api/availability?bnb_id=...&from=YYYY-MM-DD&to=YYYY-MM-DD
// Defaults to the next 60 days when the range is omitted.
func (ac *AvailabilityController) GetRange(c *gin.Context) {
	bnbID := c.Query("bnb_id")
	if bnbID == "" {
		utils.JSONError(c, http.StatusBadRequest, "bnb_id is required")
		return
	}

	now := time.Now().UTC()
	from := now
	to := now.AddDate(0, 0, 60)

	if raw := c.Query("from"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid from date, use YYYY-MM-DD")
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid to date, use YYYY-MM-DD")
			return
		}
		to = parsed
	}
	if !to.After(from) {
		utils.JSONError(c, http.StatusBadRequest, "to must be after from")
		return
	}

	rows, err := ac.AvailabilitySvc.ListRange(bnbID, from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}
