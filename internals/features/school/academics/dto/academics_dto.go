// file: internals/features/school/academics/dto/academics_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/academics/model"
)

/* =========================================================
   CLASS SECTION
========================================================= */

type CreateClassSectionRequest struct {
	ClassSectionName         string `json:"class_section_name" validate:"required,min=1,max=100"`
	ClassSectionLevel        string `json:"class_section_level" validate:"omitempty,max=50"`
	ClassSectionAcademicYear string `json:"class_section_academic_year" validate:"omitempty,max=20"`

	ClassSectionHomeroomTeacherID *uuid.UUID `json:"class_section_homeroom_teacher_id"`
	ClassSectionCapacity          *int       `json:"class_section_capacity" validate:"omitempty,min=1,max=200"`
}

func (r *CreateClassSectionRequest) ToModel(schoolID uuid.UUID) *model.ClassSectionModel {
	return &model.ClassSectionModel{
		ClassSectionSchoolID:          schoolID,
		ClassSectionName:              r.ClassSectionName,
		ClassSectionLevel:             r.ClassSectionLevel,
		ClassSectionAcademicYear:      r.ClassSectionAcademicYear,
		ClassSectionHomeroomTeacherID: r.ClassSectionHomeroomTeacherID,
		ClassSectionCapacity:          r.ClassSectionCapacity,
	}
}

type UpdateClassSectionRequest struct {
	ClassSectionName         *string `json:"class_section_name" validate:"omitempty,min=1,max=100"`
	ClassSectionLevel        *string `json:"class_section_level" validate:"omitempty,max=50"`
	ClassSectionAcademicYear *string `json:"class_section_academic_year" validate:"omitempty,max=20"`

	ClassSectionHomeroomTeacherID *uuid.UUID `json:"class_section_homeroom_teacher_id"`
	ClassSectionCapacity          *int       `json:"class_section_capacity" validate:"omitempty,min=1,max=200"`
}

func (r *UpdateClassSectionRequest) ApplyToModel(m *model.ClassSectionModel) {
	if r.ClassSectionName != nil {
		m.ClassSectionName = *r.ClassSectionName
	}
	if r.ClassSectionLevel != nil {
		m.ClassSectionLevel = *r.ClassSectionLevel
	}
	if r.ClassSectionAcademicYear != nil {
		m.ClassSectionAcademicYear = *r.ClassSectionAcademicYear
	}
	if r.ClassSectionHomeroomTeacherID != nil {
		m.ClassSectionHomeroomTeacherID = r.ClassSectionHomeroomTeacherID
	}
	if r.ClassSectionCapacity != nil {
		m.ClassSectionCapacity = r.ClassSectionCapacity
	}
}

type ClassSectionResponse struct {
	ClassSectionID           string `json:"class_section_id"`
	ClassSectionSchoolID     string `json:"class_section_school_id"`
	ClassSectionName         string `json:"class_section_name"`
	ClassSectionLevel        string `json:"class_section_level,omitempty"`
	ClassSectionAcademicYear string `json:"class_section_academic_year,omitempty"`

	ClassSectionHomeroomTeacherID *uuid.UUID `json:"class_section_homeroom_teacher_id,omitempty"`
	ClassSectionCapacity          *int       `json:"class_section_capacity,omitempty"`
	ClassSectionStudentCount      *int64     `json:"class_section_student_count,omitempty"`

	ClassSectionCreatedAt time.Time `json:"class_section_created_at"`
	ClassSectionUpdatedAt time.Time `json:"class_section_updated_at"`
}

func NewClassSectionResponse(m *model.ClassSectionModel) *ClassSectionResponse {
	if m == nil {
		return nil
	}
	return &ClassSectionResponse{
		ClassSectionID:                m.ClassSectionID.String(),
		ClassSectionSchoolID:          m.ClassSectionSchoolID.String(),
		ClassSectionName:              m.ClassSectionName,
		ClassSectionLevel:             m.ClassSectionLevel,
		ClassSectionAcademicYear:      m.ClassSectionAcademicYear,
		ClassSectionHomeroomTeacherID: m.ClassSectionHomeroomTeacherID,
		ClassSectionCapacity:          m.ClassSectionCapacity,
		ClassSectionCreatedAt:         m.ClassSectionCreatedAt,
		ClassSectionUpdatedAt:         m.ClassSectionUpdatedAt,
	}
}

func NewClassSectionResponses(ms []model.ClassSectionModel) []*ClassSectionResponse {
	out := make([]*ClassSectionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewClassSectionResponse(&ms[i]))
	}
	return out
}

/* =========================================================
   STUDENT GRADE
========================================================= */

type UpsertStudentGradeRequest struct {
	StudentGradeStudentID uuid.UUID `json:"student_grade_student_id" validate:"required"`
	StudentGradeSubject   string    `json:"student_grade_subject" validate:"required,min=1,max=100"`
	StudentGradeTerm      string    `json:"student_grade_term" validate:"required,max=30"`
	StudentGradeScore     float64   `json:"student_grade_score" validate:"min=0,max=100"`
	StudentGradeNotes     string    `json:"student_grade_notes"`
}

func (r *UpsertStudentGradeRequest) ToModel(schoolID uuid.UUID) *model.StudentGradeModel {
	return &model.StudentGradeModel{
		StudentGradeSchoolID:  schoolID,
		StudentGradeStudentID: r.StudentGradeStudentID,
		StudentGradeSubject:   r.StudentGradeSubject,
		StudentGradeTerm:      r.StudentGradeTerm,
		StudentGradeScore:     r.StudentGradeScore,
		StudentGradeNotes:     r.StudentGradeNotes,
	}
}

type StudentGradeResponse struct {
	StudentGradeID        string  `json:"student_grade_id"`
	StudentGradeStudentID string  `json:"student_grade_student_id"`
	StudentGradeSubject   string  `json:"student_grade_subject"`
	StudentGradeTerm      string  `json:"student_grade_term"`
	StudentGradeScore     float64 `json:"student_grade_score"`
	StudentGradeNotes     string  `json:"student_grade_notes,omitempty"`

	StudentGradeCreatedAt time.Time `json:"student_grade_created_at"`
	StudentGradeUpdatedAt time.Time `json:"student_grade_updated_at"`
}

func NewStudentGradeResponse(m *model.StudentGradeModel) *StudentGradeResponse {
	if m == nil {
		return nil
	}
	return &StudentGradeResponse{
		StudentGradeID:        m.StudentGradeID.String(),
		StudentGradeStudentID: m.StudentGradeStudentID.String(),
		StudentGradeSubject:   m.StudentGradeSubject,
		StudentGradeTerm:      m.StudentGradeTerm,
		StudentGradeScore:     m.StudentGradeScore,
		StudentGradeNotes:     m.StudentGradeNotes,
		StudentGradeCreatedAt: m.StudentGradeCreatedAt,
		StudentGradeUpdatedAt: m.StudentGradeUpdatedAt,
	}
}

func NewStudentGradeResponses(ms []model.StudentGradeModel) []*StudentGradeResponse {
	out := make([]*StudentGradeResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewStudentGradeResponse(&ms[i]))
	}
	return out
}
