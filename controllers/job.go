package controllers

import (
	"errors"
	"net/http"

	"localpro-backend/models"
	"localpro-backend/realtime"
	"localpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type JobController struct {
	DB        *gorm.DB
	Hub       *realtime.Hub
	UploadDir string
}

type CreateJobInput struct {
	Customer    string `json:"customer" form:"customer"`
	Provider    string `json:"provider" form:"provider"`
	Category    string `json:"category" form:"category"`
	SubService  string `json:"subService" form:"subService"`
	Description string `json:"description" form:"description"`
	Requirement string `json:"requirement" form:"requirement"`
	Status      string `json:"status" form:"status"`
}

// CreateJob creates a job with a generated display id and emits 'jobAdded'.
func (ctl *JobController) CreateJob(c *gin.Context) {
	var input CreateJobInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	job := models.Job{
		JobID:       utils.GenerateJobID(),
		Customer:    input.Customer,
		Provider:    input.Provider,
		Category:    input.Category,
		SubService:  input.SubService,
		Description: input.Description,
		Requirement: input.Requirement,
		Status:      input.Status,
	}
	if job.Customer == "" {
		job.Customer = "New Customer"
	}
	if job.Provider == "" {
		job.Provider = "Pending"
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := utils.SaveUpload(c, file, ctl.UploadDir)
		if err != nil {
			zlog.Error().Err(err).Msg("save job image")
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store image")
			return
		}
		job.Image = path
	}

	if err := ctl.DB.Create(&job).Error; err != nil {
		zlog.Error().Err(err).Msg("create job")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create job")
		return
	}

	ctl.Hub.Broadcast("jobAdded", job)

	c.JSON(http.StatusCreated, job)
}

// GetJobs retrieves all jobs, newest first
func (ctl *JobController) GetJobs(c *gin.Context) {
	var jobs []models.Job
	if err := ctl.DB.Order("created_at DESC").Find(&jobs).Error; err != nil {
		zlog.Error().Err(err).Msg("list jobs")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob retrieves a single job by ID
func (ctl *JobController) GetJob(c *gin.Context) {
	jobUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	var job models.Job
	if err := ctl.DB.First(&job, "id = ?", jobUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Job not found")
		} else {
			zlog.Error().Err(err).Msg("get job")
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, job)
}
