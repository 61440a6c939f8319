package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentMethodCash      = "cash"
	PaymentMethodETransfer = "e_transfer"
)

// Payment is an immutable record of money received for a job.
type Payment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	JobID string `gorm:"type:uuid;not null" json:"job_id"`
	Job   Job    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ClientName  string    `gorm:"size:100" json:"client_name"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Method      string    `gorm:"size:20;not null" json:"method"`
	PaymentDate time.Time `gorm:"type:date;not null" json:"payment_date"`

	CreatedAt time.Time `json:"created_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
