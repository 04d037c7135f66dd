package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status siswa. pre_enrolled = pendaftaran publik yang belum disetujui admin.
const (
	StudentStatusActive      = "active"
	StudentStatusInactive    = "inactive"
	StudentStatusSuspended   = "suspended"
	StudentStatusPreEnrolled = "pre_enrolled"
)

type StudentModel struct {
	StudentID       uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentSchoolID uuid.UUID `gorm:"column:student_school_id;type:uuid;not null;index:idx_students_school_code,unique,priority:1" json:"student_school_id"`

	// Kode registrasi: YYYY + urutan 3 digit, unik per sekolah.
	StudentRegistrationCode string `gorm:"column:student_registration_code;type:varchar(16);not null;index:idx_students_school_code,unique,priority:2" json:"student_registration_code"`

	StudentName      string     `gorm:"column:student_name;type:varchar(150);not null" json:"student_name" validate:"required,min=2,max=150"`
	StudentGender    string     `gorm:"column:student_gender;type:varchar(10)" json:"student_gender" validate:"omitempty,oneof=male female"`
	StudentBirthDate *time.Time `gorm:"column:student_birth_date;type:date" json:"student_birth_date,omitempty"`

	StudentGuardianName  string `gorm:"column:student_guardian_name;type:varchar(150)" json:"student_guardian_name"`
	StudentGuardianPhone string `gorm:"column:student_guardian_phone;type:varchar(30)" json:"student_guardian_phone"`
	StudentGuardianEmail string `gorm:"column:student_guardian_email;type:varchar(255)" json:"student_guardian_email" validate:"omitempty,email"`

	StudentStatus         string     `gorm:"column:student_status;type:varchar(20);not null;default:'active'" json:"student_status"`
	StudentClassSectionID *uuid.UUID `gorm:"column:student_class_section_id;type:uuid" json:"student_class_section_id,omitempty"`
	StudentEnrolledAt     *time.Time `gorm:"column:student_enrolled_at;type:timestamptz" json:"student_enrolled_at,omitempty"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string {
	return "students"
}

// TempRegistrationCode membuat kode sementara untuk pre-enrollment.
// Prefix "PRE-" tidak pernah cocok dengan pola tahun YYYY sehingga
// tidak ikut terhitung di penomoran kode resmi.
func TempRegistrationCode() string {
	return "PRE-" + uuid.NewString()[:8]
}
