package controllers

import (
	"net/http"

	"localpro-backend/models"
	"localpro-backend/utils"

	"github.com/gin-gonic/gin"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

type DashboardOverview struct {
	TotalCustomers int64   `json:"totalCustomers"`
	TotalJobs      int64   `json:"totalJobs"`
	TotalProviders int64   `json:"totalProviders"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

// GetDashboardOverview returns the totals backing the dashboard stat cards.
func (ctl *DashboardController) GetDashboardOverview(c *gin.Context) {
	var overview DashboardOverview

	if err := ctl.DB.Model(&models.Customer{}).Count(&overview.TotalCustomers).Error; err != nil {
		zlog.Error().Err(err).Msg("dashboard counts")
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}
	if err := ctl.DB.Model(&models.Job{}).Count(&overview.TotalJobs).Error; err != nil {
		zlog.Error().Err(err).Msg("dashboard counts")
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}
	if err := ctl.DB.Model(&models.Provider{}).Count(&overview.TotalProviders).Error; err != nil {
		zlog.Error().Err(err).Msg("dashboard counts")
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}
	if err := ctl.DB.Model(&models.FinanceTransaction{}).
		Where("status = ?", "Completed").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&overview.TotalRevenue).Error; err != nil {
		zlog.Error().Err(err).Msg("dashboard revenue")
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, overview)
}
