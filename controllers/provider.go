package controllers

import (
	"errors"
	"net/http"

	"localpro-backend/models"
	"localpro-backend/realtime"
	"localpro-backend/utils"

	"github.com/gin-gonic/gin"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ProviderController struct {
	DB  *gorm.DB
	Hub *realtime.Hub
}

type CreateProviderInput struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Phone    string  `json:"phone" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Status   string  `json:"status"`
	Jobs     int     `json:"jobs"`
	Rating   float64 `json:"rating"`
	Address  string  `json:"address"`
	Verified *bool   `json:"verified"`
}

// CreateProvider registers a new provider. Email uniqueness is guaranteed by
// the unique index; the lookup beforehand only makes the common failure fast.
func (ctl *ProviderController) CreateProvider(c *gin.Context) {
	var input CreateProviderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	var existing models.Provider
	if err := ctl.DB.First(&existing, "email = ?", input.Email).Error; err == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Provider already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		zlog.Error().Err(err).Msg("lookup provider")
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	provider := models.Provider{
		Name:     input.Name,
		Category: input.Category,
		Phone:    input.Phone,
		Email:    input.Email,
		Status:   input.Status,
		Jobs:     input.Jobs,
		Rating:   input.Rating,
		Address:  input.Address,
	}
	if input.Verified != nil {
		provider.Verified = *input.Verified
	}

	if err := ctl.DB.Create(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusBadRequest, "Provider already exists")
			return
		}
		zlog.Error().Err(err).Msg("create provider")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create provider")
		return
	}

	ctl.Hub.Broadcast("providerCreated", provider)

	c.JSON(http.StatusCreated, provider)
}

// GetProviders retrieves all providers, newest first
func (ctl *ProviderController) GetProviders(c *gin.Context) {
	var providers []models.Provider
	if err := ctl.DB.Order("created_at DESC").Find(&providers).Error; err != nil {
		zlog.Error().Err(err).Msg("list providers")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch providers")
		return
	}
	c.JSON(http.StatusOK, providers)
}

// GetProviderStats returns provider counts by status
func (ctl *ProviderController) GetProviderStats(c *gin.Context) {
	var total, active, pending int64

	if err := ctl.DB.Model(&models.Provider{}).Count(&total).Error; err != nil {
		zlog.Error().Err(err).Msg("provider stats")
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching stats")
		return
	}
	if err := ctl.DB.Model(&models.Provider{}).Where("status = ?", "Active").Count(&active).Error; err != nil {
		zlog.Error().Err(err).Msg("provider stats")
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching stats")
		return
	}
	if err := ctl.DB.Model(&models.Provider{}).Where("status = ?", "Pending").Count(&pending).Error; err != nil {
		zlog.Error().Err(err).Msg("provider stats")
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalProviders":   total,
		"activeProviders":  active,
		"pendingProviders": pending,
	})
}
