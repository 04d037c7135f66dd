// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/students/model"
)

/* =========================================================
   REQUEST DTO
   Catatan:
   - registration_code TIDAK pernah diterima dari client;
     selalu diterbitkan server (lihat service.GenerateRegistrationCode).
========================================================= */

type CreateStudentRequest struct {
	StudentName      string     `json:"student_name" validate:"required,min=2,max=150"`
	StudentGender    string     `json:"student_gender" validate:"omitempty,oneof=male female"`
	StudentBirthDate *time.Time `json:"student_birth_date"`

	StudentGuardianName  string `json:"student_guardian_name" validate:"omitempty,max=150"`
	StudentGuardianPhone string `json:"student_guardian_phone" validate:"omitempty,max=30"`
	StudentGuardianEmail string `json:"student_guardian_email" validate:"omitempty,email"`

	StudentClassSectionID *uuid.UUID `json:"student_class_section_id"`

	// tahun angkatan untuk kode registrasi; kosong = tahun berjalan
	RegistrationYear *int `json:"registration_year" validate:"omitempty,min=2000,max=9999"`
}

func (r *CreateStudentRequest) ToModel(schoolID uuid.UUID) *model.StudentModel {
	return &model.StudentModel{
		StudentSchoolID:       schoolID,
		StudentName:           r.StudentName,
		StudentGender:         r.StudentGender,
		StudentBirthDate:      r.StudentBirthDate,
		StudentGuardianName:   r.StudentGuardianName,
		StudentGuardianPhone:  r.StudentGuardianPhone,
		StudentGuardianEmail:  r.StudentGuardianEmail,
		StudentClassSectionID: r.StudentClassSectionID,
		StudentStatus:         model.StudentStatusActive,
	}
}

type UpdateStudentRequest struct {
	StudentName      *string    `json:"student_name" validate:"omitempty,min=2,max=150"`
	StudentGender    *string    `json:"student_gender" validate:"omitempty,oneof=male female"`
	StudentBirthDate *time.Time `json:"student_birth_date"`

	StudentGuardianName  *string `json:"student_guardian_name" validate:"omitempty,max=150"`
	StudentGuardianPhone *string `json:"student_guardian_phone" validate:"omitempty,max=30"`
	StudentGuardianEmail *string `json:"student_guardian_email" validate:"omitempty,email"`

	StudentClassSectionID *uuid.UUID `json:"student_class_section_id"`
}

// ApplyToModel: partial update, hanya field non-nil.
func (r *UpdateStudentRequest) ApplyToModel(m *model.StudentModel) {
	if r.StudentName != nil {
		m.StudentName = *r.StudentName
	}
	if r.StudentGender != nil {
		m.StudentGender = *r.StudentGender
	}
	if r.StudentBirthDate != nil {
		m.StudentBirthDate = r.StudentBirthDate
	}
	if r.StudentGuardianName != nil {
		m.StudentGuardianName = *r.StudentGuardianName
	}
	if r.StudentGuardianPhone != nil {
		m.StudentGuardianPhone = *r.StudentGuardianPhone
	}
	if r.StudentGuardianEmail != nil {
		m.StudentGuardianEmail = *r.StudentGuardianEmail
	}
	if r.StudentClassSectionID != nil {
		m.StudentClassSectionID = r.StudentClassSectionID
	}
}

type SetStudentStatusRequest struct {
	StudentStatus string `json:"student_status" validate:"required,oneof=active inactive suspended"`
}

/* =========================================================
   Pre-enrollment (pendaftaran publik, menunggu persetujuan admin)
========================================================= */

type PreEnrollRequest struct {
	StudentName      string     `json:"student_name" validate:"required,min=2,max=150"`
	StudentGender    string     `json:"student_gender" validate:"omitempty,oneof=male female"`
	StudentBirthDate *time.Time `json:"student_birth_date"`

	StudentGuardianName  string `json:"student_guardian_name" validate:"required,max=150"`
	StudentGuardianPhone string `json:"student_guardian_phone" validate:"required,max=30"`
	StudentGuardianEmail string `json:"student_guardian_email" validate:"omitempty,email"`
}

func (r *PreEnrollRequest) ToModel(schoolID uuid.UUID) *model.StudentModel {
	return &model.StudentModel{
		StudentSchoolID:      schoolID,
		StudentName:          r.StudentName,
		StudentGender:        r.StudentGender,
		StudentBirthDate:     r.StudentBirthDate,
		StudentGuardianName:  r.StudentGuardianName,
		StudentGuardianPhone: r.StudentGuardianPhone,
		StudentGuardianEmail: r.StudentGuardianEmail,
		StudentStatus:        model.StudentStatusPreEnrolled,
	}
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type StudentResponse struct {
	StudentID               string `json:"student_id"`
	StudentSchoolID         string `json:"student_school_id"`
	StudentRegistrationCode string `json:"student_registration_code"`

	StudentName      string     `json:"student_name"`
	StudentGender    string     `json:"student_gender,omitempty"`
	StudentBirthDate *time.Time `json:"student_birth_date,omitempty"`

	StudentGuardianName  string `json:"student_guardian_name,omitempty"`
	StudentGuardianPhone string `json:"student_guardian_phone,omitempty"`
	StudentGuardianEmail string `json:"student_guardian_email,omitempty"`

	StudentStatus         string     `json:"student_status"`
	StudentClassSectionID *uuid.UUID `json:"student_class_section_id,omitempty"`
	StudentEnrolledAt     *time.Time `json:"student_enrolled_at,omitempty"`

	StudentCreatedAt time.Time `json:"student_created_at"`
	StudentUpdatedAt time.Time `json:"student_updated_at"`
}

func NewStudentResponse(m *model.StudentModel) *StudentResponse {
	if m == nil {
		return nil
	}
	return &StudentResponse{
		StudentID:               m.StudentID.String(),
		StudentSchoolID:         m.StudentSchoolID.String(),
		StudentRegistrationCode: m.StudentRegistrationCode,
		StudentName:             m.StudentName,
		StudentGender:           m.StudentGender,
		StudentBirthDate:        m.StudentBirthDate,
		StudentGuardianName:     m.StudentGuardianName,
		StudentGuardianPhone:    m.StudentGuardianPhone,
		StudentGuardianEmail:    m.StudentGuardianEmail,
		StudentStatus:           m.StudentStatus,
		StudentClassSectionID:   m.StudentClassSectionID,
		StudentEnrolledAt:       m.StudentEnrolledAt,
		StudentCreatedAt:        m.StudentCreatedAt,
		StudentUpdatedAt:        m.StudentUpdatedAt,
	}
}

func NewStudentResponses(ms []model.StudentModel) []*StudentResponse {
	out := make([]*StudentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewStudentResponse(&ms[i]))
	}
	return out
}
