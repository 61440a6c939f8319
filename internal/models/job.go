package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Job struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	CustomerID string   `gorm:"type:uuid;not null" json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"customer"`

	Status string `gorm:"size:20;default:'draft'" json:"status"`

	JobAddress  string `gorm:"size:255;not null" json:"job_address"`
	Description string `gorm:"type:text" json:"description"`

	ScheduledDate time.Time `gorm:"type:date;not null" json:"scheduled_date"`
	ScheduledTime string    `gorm:"size:5" json:"scheduled_time"`

	TimeIn     *time.Time `json:"time_in"`
	TimeOut    *time.Time `json:"time_out"`
	TotalHours *float64   `json:"total_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}
