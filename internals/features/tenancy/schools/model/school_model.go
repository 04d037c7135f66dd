package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status sekolah (tenant). active ⇒ school_trial_expires_at IS NULL.
const (
	SchoolStatusTrial     = "trial"
	SchoolStatusActive    = "active"
	SchoolStatusSuspended = "suspended"
)

type SchoolModel struct {
	SchoolID   uuid.UUID `gorm:"column:school_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_id"`
	SchoolName string    `gorm:"column:school_name;type:varchar(150);not null" json:"school_name"`
	SchoolSlug string    `gorm:"column:school_slug;type:varchar(120);uniqueIndex;not null" json:"school_slug"`

	SchoolLogoURL *string `gorm:"column:school_logo_url;type:text" json:"school_logo_url,omitempty"`
	SchoolAddress string  `gorm:"column:school_address;type:text" json:"school_address"`
	SchoolCity    string  `gorm:"column:school_city;type:varchar(100)" json:"school_city"`
	SchoolPhone   string  `gorm:"column:school_phone;type:varchar(30)" json:"school_phone"`
	SchoolEmail   string  `gorm:"column:school_email;type:varchar(255)" json:"school_email"`

	SchoolStatus         string     `gorm:"column:school_status;type:varchar(20);not null;default:'trial'" json:"school_status"`
	SchoolTrialExpiresAt *time.Time `gorm:"column:school_trial_expires_at;type:timestamptz" json:"school_trial_expires_at,omitempty"`

	SchoolCurrentPlanID *uuid.UUID `gorm:"column:school_current_plan_id;type:uuid" json:"school_current_plan_id,omitempty"`

	SchoolCreatedAt time.Time      `gorm:"column:school_created_at;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt time.Time      `gorm:"column:school_updated_at;autoUpdateTime" json:"school_updated_at"`
	SchoolDeletedAt gorm.DeletedAt `gorm:"column:school_deleted_at;index" json:"school_deleted_at,omitempty"`
}

func (SchoolModel) TableName() string {
	return "schools"
}
