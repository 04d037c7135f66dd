package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchoolServicePlan struct {
	SchoolServicePlanID uuid.UUID `gorm:"column:school_service_plan_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"school_service_plan_id"`

	SchoolServicePlanCode        string  `gorm:"column:school_service_plan_code;size:30;unique;not null" json:"school_service_plan_code"`
	SchoolServicePlanName        string  `gorm:"column:school_service_plan_name;size:100;not null" json:"school_service_plan_name"`
	SchoolServicePlanDescription *string `gorm:"column:school_service_plan_description" json:"school_service_plan_description,omitempty"`

	SchoolServicePlanMaxTeachers  *int `gorm:"column:school_service_plan_max_teachers" json:"school_service_plan_max_teachers,omitempty"`
	SchoolServicePlanMaxStudents  *int `gorm:"column:school_service_plan_max_students" json:"school_service_plan_max_students,omitempty"`
	SchoolServicePlanMaxStorageMB *int `gorm:"column:school_service_plan_max_storage_mb" json:"school_service_plan_max_storage_mb,omitempty"`

	SchoolServicePlanAllowCustomDomain bool `gorm:"column:school_service_plan_allow_custom_domain;not null;default:false" json:"school_service_plan_allow_custom_domain"`
	SchoolServicePlanAllowDocuments    bool `gorm:"column:school_service_plan_allow_documents;not null;default:true" json:"school_service_plan_allow_documents"`
	SchoolServicePlanAllowBackups      bool `gorm:"column:school_service_plan_allow_backups;not null;default:false" json:"school_service_plan_allow_backups"`

	// NUMERIC(12,2) — float64 untuk simple; kalau butuh presisi uang, ganti ke decimal
	SchoolServicePlanPriceMonthly *float64 `gorm:"column:school_service_plan_price_monthly;type:numeric(12,2)" json:"school_service_plan_price_monthly,omitempty"`
	SchoolServicePlanPriceYearly  *float64 `gorm:"column:school_service_plan_price_yearly;type:numeric(12,2)"  json:"school_service_plan_price_yearly,omitempty"`

	SchoolServicePlanIsActive bool `gorm:"column:school_service_plan_is_active;not null;default:true" json:"school_service_plan_is_active"`

	SchoolServicePlanCreatedAt time.Time      `gorm:"column:school_service_plan_created_at;autoCreateTime" json:"school_service_plan_created_at"`
	SchoolServicePlanUpdatedAt time.Time      `gorm:"column:school_service_plan_updated_at;autoUpdateTime" json:"school_service_plan_updated_at"`
	SchoolServicePlanDeletedAt gorm.DeletedAt `gorm:"column:school_service_plan_deleted_at;index" json:"school_service_plan_deleted_at,omitempty"`
}

func (SchoolServicePlan) TableName() string {
	return "school_service_plans"
}
