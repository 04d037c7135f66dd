package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassSectionModel struct {
	ClassSectionID       uuid.UUID `gorm:"column:class_section_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_section_id"`
	ClassSectionSchoolID uuid.UUID `gorm:"column:class_section_school_id;type:uuid;not null;index:idx_class_sections_school_name,unique,priority:1" json:"class_section_school_id"`

	// contoh: "7A", "X IPA 2"
	ClassSectionName  string `gorm:"column:class_section_name;type:varchar(100);not null;index:idx_class_sections_school_name,unique,priority:2" json:"class_section_name" validate:"required,min=1,max=100"`
	ClassSectionLevel string `gorm:"column:class_section_level;type:varchar(50)" json:"class_section_level"`

	// tahun ajaran, contoh: "2024/2025"
	ClassSectionAcademicYear string `gorm:"column:class_section_academic_year;type:varchar(20)" json:"class_section_academic_year"`

	ClassSectionHomeroomTeacherID *uuid.UUID `gorm:"column:class_section_homeroom_teacher_id;type:uuid" json:"class_section_homeroom_teacher_id,omitempty"`
	ClassSectionCapacity          *int       `gorm:"column:class_section_capacity" json:"class_section_capacity,omitempty"`

	ClassSectionCreatedAt time.Time      `gorm:"column:class_section_created_at;autoCreateTime" json:"class_section_created_at"`
	ClassSectionUpdatedAt time.Time      `gorm:"column:class_section_updated_at;autoUpdateTime" json:"class_section_updated_at"`
	ClassSectionDeletedAt gorm.DeletedAt `gorm:"column:class_section_deleted_at;index" json:"class_section_deleted_at,omitempty"`
}

func (ClassSectionModel) TableName() string {
	return "class_sections"
}
