package models

import (
	"time"

	"localpro-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Job struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// Display id like "#tf4821". Not unique, collisions are accepted.
	JobID string `gorm:"not null" json:"jobId"`

	// Customer and provider are display labels copied at creation time,
	// not references to other records.
	Customer    string `json:"customer"`
	Provider    string `json:"provider"`
	Category    string `json:"category"`
	SubService  string `json:"subService"`
	Description string `json:"description"`
	Requirement string `json:"requirement"`
	Image       string `json:"image"`
	Status      string `json:"status"`
	Date        string `json:"date"` // display string at creation time

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) (err error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.Status == "" {
		j.Status = "Pending"
	}
	if j.Date == "" {
		j.Date = utils.FormatDisplayDate(time.Now())
	}
	return
}
