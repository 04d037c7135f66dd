package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolAdminModel mengikat user ke satu sekolah dengan satu role tenant.
type SchoolAdminModel struct {
	SchoolAdminID       uuid.UUID `gorm:"column:school_admin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_admin_id"`
	SchoolAdminUserID   uuid.UUID `gorm:"column:school_admin_user_id;type:uuid;not null;index:idx_school_admins_user_school,unique,priority:1" json:"school_admin_user_id"`
	SchoolAdminSchoolID uuid.UUID `gorm:"column:school_admin_school_id;type:uuid;not null;index:idx_school_admins_user_school,unique,priority:2" json:"school_admin_school_id"`

	// admin / staff / teacher
	SchoolAdminRole string `gorm:"column:school_admin_role;type:varchar(20);not null;default:'admin'" json:"school_admin_role" validate:"required,oneof=admin staff teacher"`

	SchoolAdminCreatedAt time.Time      `gorm:"column:school_admin_created_at;autoCreateTime" json:"school_admin_created_at"`
	SchoolAdminDeletedAt gorm.DeletedAt `gorm:"column:school_admin_deleted_at;index" json:"school_admin_deleted_at,omitempty"`
}

func (SchoolAdminModel) TableName() string {
	return "school_admins"
}
