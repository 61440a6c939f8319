package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document is an immutable quote or invoice snapshot; there is no update path.
type Document struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	JobID string `gorm:"type:uuid;not null" json:"job_id"`
	Job   Job    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	DocumentType string `gorm:"size:10;not null" json:"document_type"`

	ChargeTo          string `gorm:"size:100" json:"charge_to"`
	JobAddress        string `gorm:"size:255" json:"job_address"`
	DescriptionOfWork string `gorm:"type:text" json:"description_of_work"`

	LabourCharge float64 `json:"labour_charge"`
	Total        float64 `json:"total"`

	DisclaimerText string  `gorm:"type:text" json:"disclaimer_text"`
	FilePath       *string `gorm:"size:255" json:"file_path"`

	LineItems []LineItem `gorm:"foreignKey:DocumentID" json:"line_items,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

const (
	DocumentTypeQuote   = "quote"
	DocumentTypeInvoice = "invoice"
)

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
