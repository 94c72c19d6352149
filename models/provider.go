package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Provider struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name     string    `gorm:"not null" json:"name"`
	Category string    `gorm:"not null" json:"category"`
	Phone    string    `gorm:"not null" json:"phone"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Status   string    `json:"status"` // Active, Pending or Suspended
	Jobs     int       `gorm:"default:0" json:"jobs"`
	Rating   float64   `gorm:"default:0" json:"rating"`
	Address  string    `json:"address"`
	Joined   time.Time `json:"joined"`
	Verified bool      `gorm:"default:false" json:"verified"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Provider) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = "Pending"
	}
	if p.Joined.IsZero() {
		p.Joined = time.Now()
	}
	return
}
