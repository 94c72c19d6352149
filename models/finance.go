package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FinanceTransaction struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	TransactionID string    `gorm:"uniqueIndex;not null" json:"transactionId"`
	ProviderName  string    `gorm:"not null" json:"providerName"`
	JobCategory   string    `gorm:"not null" json:"jobCategory"`
	Amount        float64   `gorm:"not null" json:"amount"`
	Status        string    `json:"status"` // Pending, Completed or Failed
	Date          time.Time `json:"date"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t *FinanceTransaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = "Pending"
	}
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	return
}
