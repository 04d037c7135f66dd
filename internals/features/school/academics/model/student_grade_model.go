package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Satu baris = satu nilai mapel untuk satu siswa di satu periode.
type StudentGradeModel struct {
	StudentGradeID        uuid.UUID `gorm:"column:student_grade_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_grade_id"`
	StudentGradeSchoolID  uuid.UUID `gorm:"column:student_grade_school_id;type:uuid;not null;index" json:"student_grade_school_id"`
	StudentGradeStudentID uuid.UUID `gorm:"column:student_grade_student_id;type:uuid;not null;index:idx_grades_student_subject_term,unique,priority:1" json:"student_grade_student_id"`

	StudentGradeSubject string `gorm:"column:student_grade_subject;type:varchar(100);not null;index:idx_grades_student_subject_term,unique,priority:2" json:"student_grade_subject" validate:"required,min=1,max=100"`

	// contoh: "2024/2025-ganjil"
	StudentGradeTerm string `gorm:"column:student_grade_term;type:varchar(30);not null;index:idx_grades_student_subject_term,unique,priority:3" json:"student_grade_term" validate:"required,max=30"`

	StudentGradeScore float64 `gorm:"column:student_grade_score;type:numeric(5,2);not null" json:"student_grade_score" validate:"min=0,max=100"`
	StudentGradeNotes string  `gorm:"column:student_grade_notes;type:text" json:"student_grade_notes"`

	StudentGradeCreatedAt time.Time      `gorm:"column:student_grade_created_at;autoCreateTime" json:"student_grade_created_at"`
	StudentGradeUpdatedAt time.Time      `gorm:"column:student_grade_updated_at;autoUpdateTime" json:"student_grade_updated_at"`
	StudentGradeDeletedAt gorm.DeletedAt `gorm:"column:student_grade_deleted_at;index" json:"student_grade_deleted_at,omitempty"`
}

func (StudentGradeModel) TableName() string {
	return "student_grades"
}
