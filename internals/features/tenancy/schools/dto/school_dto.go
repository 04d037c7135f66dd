// file: internals/features/tenancy/schools/dto/school_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/tenancy/schools/model"
)

/* =========================================================
   REQUEST DTO — CREATE / UPDATE (writable fields only)
   Catatan:
   - status & trial_expires_at TIDAK diterima dari create/update biasa;
     keduanya hanya berubah lewat endpoint set-status / extend-trial.
========================================================= */

type CreateSchoolRequest struct {
	SchoolName    string `json:"school_name" validate:"required,min=3,max=150"`
	SchoolSlug    string `json:"school_slug" validate:"omitempty,max=120"`
	SchoolAddress string `json:"school_address"`
	SchoolCity    string `json:"school_city" validate:"omitempty,max=100"`
	SchoolPhone   string `json:"school_phone" validate:"omitempty,max=30"`
	SchoolEmail   string `json:"school_email" validate:"omitempty,email"`

	// hari trial awal; kosong = default server
	TrialDays *int `json:"trial_days" validate:"omitempty,min=1,max=365"`
}

type UpdateSchoolRequest struct {
	SchoolName    *string `json:"school_name" validate:"omitempty,min=3,max=150"`
	SchoolAddress *string `json:"school_address"`
	SchoolCity    *string `json:"school_city" validate:"omitempty,max=100"`
	SchoolPhone   *string `json:"school_phone" validate:"omitempty,max=30"`
	SchoolEmail   *string `json:"school_email" validate:"omitempty,email"`

	SchoolCurrentPlanID *uuid.UUID `json:"school_current_plan_id"`
}

// ApplyToModel: partial update, hanya field non-nil.
func (r *UpdateSchoolRequest) ApplyToModel(m *model.SchoolModel) {
	if r.SchoolName != nil {
		m.SchoolName = *r.SchoolName
	}
	if r.SchoolAddress != nil {
		m.SchoolAddress = *r.SchoolAddress
	}
	if r.SchoolCity != nil {
		m.SchoolCity = *r.SchoolCity
	}
	if r.SchoolPhone != nil {
		m.SchoolPhone = *r.SchoolPhone
	}
	if r.SchoolEmail != nil {
		m.SchoolEmail = *r.SchoolEmail
	}
	if r.SchoolCurrentPlanID != nil {
		m.SchoolCurrentPlanID = r.SchoolCurrentPlanID
	}
}

/* =========================================================
   Status & trial mutations
========================================================= */

type SetSchoolStatusRequest struct {
	SchoolStatus string `json:"school_status" validate:"required,oneof=trial active suspended"`
}

type ExtendTrialRequest struct {
	Days int `json:"days" validate:"required,min=1,max=365"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type SchoolResponse struct {
	SchoolID   string `json:"school_id"`
	SchoolName string `json:"school_name"`
	SchoolSlug string `json:"school_slug"`

	SchoolLogoURL *string `json:"school_logo_url,omitempty"`
	SchoolAddress string  `json:"school_address"`
	SchoolCity    string  `json:"school_city"`
	SchoolPhone   string  `json:"school_phone"`
	SchoolEmail   string  `json:"school_email"`

	SchoolStatus         string     `json:"school_status"`
	SchoolTrialExpiresAt *time.Time `json:"school_trial_expires_at,omitempty"`
	SchoolCurrentPlanID  *uuid.UUID `json:"school_current_plan_id,omitempty"`

	SchoolCreatedAt time.Time `json:"school_created_at"`
	SchoolUpdatedAt time.Time `json:"school_updated_at"`
}

func NewSchoolResponse(m *model.SchoolModel) *SchoolResponse {
	if m == nil {
		return nil
	}
	return &SchoolResponse{
		SchoolID:             m.SchoolID.String(),
		SchoolName:           m.SchoolName,
		SchoolSlug:           m.SchoolSlug,
		SchoolLogoURL:        m.SchoolLogoURL,
		SchoolAddress:        m.SchoolAddress,
		SchoolCity:           m.SchoolCity,
		SchoolPhone:          m.SchoolPhone,
		SchoolEmail:          m.SchoolEmail,
		SchoolStatus:         m.SchoolStatus,
		SchoolTrialExpiresAt: m.SchoolTrialExpiresAt,
		SchoolCurrentPlanID:  m.SchoolCurrentPlanID,
		SchoolCreatedAt:      m.SchoolCreatedAt,
		SchoolUpdatedAt:      m.SchoolUpdatedAt,
	}
}

func NewSchoolResponses(ms []model.SchoolModel) []*SchoolResponse {
	out := make([]*SchoolResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewSchoolResponse(&ms[i]))
	}
	return out
}
