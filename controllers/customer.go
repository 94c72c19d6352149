package controllers

import (
	"errors"
	"net/http"

	"localpro-backend/models"
	"localpro-backend/realtime"
	"localpro-backend/services"
	"localpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type CustomerController struct {
	DB        *gorm.DB
	Hub       *realtime.Hub
	UploadDir string
	Notifier  *services.NotifierService
}

// CreateCustomerInput defines the expected structure for creating a customer.
// Fields bind from JSON bodies and from multipart forms carrying an image.
type CreateCustomerInput struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Phone   string `json:"phone" form:"phone"`
	Email   string `json:"email" form:"email"`
	Status  string `json:"status" form:"status"`
	Joined  string `json:"joined" form:"joined"`
	Actions *int   `json:"actions" form:"actions"`
}

// UpdateCustomerInput defines the expected structure for updating a customer
type UpdateCustomerInput struct {
	Name    *string `json:"name" form:"name"`
	Phone   *string `json:"phone" form:"phone"`
	Email   *string `json:"email" form:"email"`
	Status  *string `json:"status" form:"status"`
	Joined  *string `json:"joined" form:"joined"`
	Actions *int    `json:"actions" form:"actions"`
}

// CreateCustomer creates a new customer, stores an optional image attachment
// and emits 'customerCreated' plus a recomputed 'customerCount'.
func (ctl *CustomerController) CreateCustomer(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer := models.Customer{
		Name:   input.Name,
		Phone:  input.Phone,
		Email:  input.Email,
		Status: input.Status,
		Joined: input.Joined,
	}
	if input.Actions != nil {
		customer.Actions = *input.Actions
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := utils.SaveUpload(c, file, ctl.UploadDir)
		if err != nil {
			zlog.Error().Err(err).Msg("save customer image")
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store image")
			return
		}
		customer.Image = path
	}

	if err := ctl.DB.Create(&customer).Error; err != nil {
		zlog.Error().Err(err).Msg("create customer")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	ctl.Hub.Broadcast("customerCreated", customer)
	ctl.broadcastCount()

	if ctl.Notifier != nil {
		go ctl.Notifier.SendWelcome(customer)
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves all customers, newest first
func (ctl *CustomerController) GetCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := ctl.DB.Order("created_at DESC").Find(&customers).Error; err != nil {
		zlog.Error().Err(err).Msg("list customers")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func (ctl *CustomerController) GetCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var customer models.Customer
	if err := ctl.DB.First(&customer, "id = ?", customerUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			zlog.Error().Err(err).Msg("get customer")
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer merges the supplied fields into an existing customer and
// emits 'customerUpdated'.
func (ctl *CustomerController) UpdateCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := ctl.DB.First(&customer, "id = ?", customerUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			zlog.Error().Err(err).Msg("load customer")
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Status != nil {
		customer.Status = *input.Status
	}
	if input.Joined != nil {
		customer.Joined = *input.Joined
	}
	if input.Actions != nil {
		customer.Actions = *input.Actions
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := utils.SaveUpload(c, file, ctl.UploadDir)
		if err != nil {
			zlog.Error().Err(err).Msg("save customer image")
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store image")
			return
		}
		customer.Image = path
	}

	if err := ctl.DB.Save(&customer).Error; err != nil {
		zlog.Error().Err(err).Msg("update customer")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	ctl.Hub.Broadcast("customerUpdated", customer)

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer permanently and emits 'customerDeleted'
// plus a recomputed 'customerCount'.
func (ctl *CustomerController) DeleteCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	result := ctl.DB.Delete(&models.Customer{}, "id = ?", customerUUID)
	if result.Error != nil {
		zlog.Error().Err(result.Error).Msg("delete customer")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	ctl.Hub.Broadcast("customerDeleted", gin.H{"id": customerUUID})
	ctl.broadcastCount()

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}

// broadcastCount re-aggregates the customer count and pushes it to every
// subscriber. Count failures only skip the broadcast, never the request.
func (ctl *CustomerController) broadcastCount() {
	var count int64
	if err := ctl.DB.Model(&models.Customer{}).Count(&count).Error; err != nil {
		zlog.Error().Err(err).Msg("count customers")
		return
	}
	ctl.Hub.Broadcast("customerCount", gin.H{"count": count})
}
