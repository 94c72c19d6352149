package models

import (
	"time"

	"localpro-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name    string `gorm:"not null" json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Status  string `json:"status"` // Active, Suspended or Pending
	Joined  string `json:"joined"` // display string like "10/9/2024"
	Actions int    `gorm:"default:0" json:"actions"`
	Image   string `json:"image"` // stored as '/uploads/12345-filename.jpg'

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Initialize UUID and defaults before creating
func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = "Active"
	}
	if c.Joined == "" {
		c.Joined = utils.FormatDisplayDate(time.Now())
	}
	return
}
