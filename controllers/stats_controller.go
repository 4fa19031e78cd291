// controllers/stats_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/lvnzip001/butterworth-bnb/services"
	"github.com/lvnzip001/butterworth-bnb/utils"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	StatsSvc *services.StatsService
}

func NewStatsController(svc *services.StatsService) *StatsController {
	return &StatsController{StatsSvc: svc}
}

// GET /api/admin/stats/kpis
func (sc *StatsController) GetKPIs(c *gin.Context) {
	report, err := sc.StatsSvc.KPIs()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, report)
}

// GET /api/admin/stats/usage
func (sc *StatsController) GetUsage(c *gin.Context) {
	usage, err := sc.StatsSvc.Usage()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, usage)
}

// GET /api/admin/stats/archive?offset=0&limit=50
func (sc *StatsController) GetArchive(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	rows, total, err := sc.StatsSvc.ArchiveList(offset, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"total":  total,
		"offset": offset,
		"rows":   rows,
	})
}

// GET /api/admin/stats/summary
func (sc *StatsController) GetMonthlySummary(c *gin.Context) {
	summary, err := sc.StatsSvc.MonthlySummary()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}
