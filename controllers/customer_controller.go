// controllers/customer_controller.go
package controllers

import (
	"net/http"

	"github.com/lvnzip001/butterworth-bnb/services"
	"github.com/lvnzip001/butterworth-bnb/utils"

	"github.com/gin-gonic/gin"
)

type EmailCustomerRequest struct {
	To      string `json:"to" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type SMSCustomerRequest struct {
	To      string `json:"to" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type CustomerController struct {
	CustomerSvc *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{CustomerSvc: svc}
}

// GET /api/admin/customers
func (ctc *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := ctc.CustomerSvc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customers)
}

// POST /api/admin/customers/email
func (ctc *CustomerController) EmailCustomer(c *gin.Context) {
	var req EmailCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	if err := ctc.CustomerSvc.EmailCustomer(req.To, req.Subject, req.Message); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"sent": true, "to": utils.MaskEmail(req.To)})
}

// POST /api/admin/customers/sms
func (ctc *CustomerController) SMSCustomer(c *gin.Context) {
	var req SMSCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	if err := ctc.CustomerSvc.SMSCustomer(req.To, req.Message); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"sent": true})
}
