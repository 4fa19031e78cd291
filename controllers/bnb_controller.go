package controllers

import (
	"errors"
	"net/http"

	"github.com/lvnzip001/butterworth-bnb/config"
	"github.com/lvnzip001/butterworth-bnb/models"
	"github.com/lvnzip001/butterworth-bnb/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetBnbs(c *gin.Context) {
	var properties []models.Bnb
	if err := config.DB.Find(&properties).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve properties")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, properties)
}

func GetBnbByID(c *gin.Context) {
	var property models.Bnb
	if err := config.DB.Where("id = ?", c.Param("id")).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "bnb_not_found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve property")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, property)
}
