package controllers

import (
	"net/http"
	"strings"

	"github.com/lvnzip001/butterworth-bnb/config"
	"github.com/lvnzip001/butterworth-bnb/models"
	"github.com/lvnzip001/butterworth-bnb/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type registerPayload struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an admin account pending approval. New accounts cannot
// log in until an existing admin flips Approved.
func Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	fullName := strings.TrimSpace(payload.FullName)
	if email == "" || fullName == "" || len(payload.Password) < 8 {
		utils.JSONError(c, http.StatusBadRequest, "full name, email and a password of at least 8 characters are required")
		return
	}

	var existing models.Admin
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.JSONError(c, http.StatusConflict, "an account with this email already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to hash password")
		return
	}

	admin := models.Admin{
		FullName: fullName,
		Email:    email,
		Password: string(hash),
		Approved: false,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create account")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"id":       admin.ID,
		"email":    admin.Email,
		"approved": admin.Approved,
		"message":  "account created, awaiting approval",
	})
}

func Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if email == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "email and password required")
		return
	}

	var admin models.Admin
	if err := config.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if !admin.Approved {
		utils.JSONError(c, http.StatusForbidden, "account pending approval")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(payload.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate token")
		return
	}
	if err := config.DB.Model(&admin).Update("session_token", token).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store session")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":        admin.ID,
			"full_name": admin.FullName,
			"email":     admin.Email,
		},
	})
}
