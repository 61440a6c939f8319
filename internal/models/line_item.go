package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LineItem is one priced material entry. LineTotal is fixed at creation
// and never recomputed.
type LineItem struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	DocumentID string `gorm:"type:uuid;not null" json:"document_id"`

	Quantity  int     `gorm:"not null" json:"quantity"`
	ItemName  string  `gorm:"size:100;not null" json:"item_name"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

func (li *LineItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == "" {
		li.ID = uuid.NewString()
	}
	return nil
}
