package dto

import (
	"time"

	"schoolku_backend/internals/features/tenancy/schools/model"
)

/* =========================================================
   CREATE / PATCH REQUEST (match model)
========================================================= */

type CreateSchoolServicePlanRequest struct {
	SchoolServicePlanCode        string  `json:"school_service_plan_code" validate:"required,max=30"`
	SchoolServicePlanName        string  `json:"school_service_plan_name" validate:"required,max=100"`
	SchoolServicePlanDescription *string `json:"school_service_plan_description"`

	SchoolServicePlanMaxTeachers  *int `json:"school_service_plan_max_teachers" validate:"omitempty,min=0"`
	SchoolServicePlanMaxStudents  *int `json:"school_service_plan_max_students" validate:"omitempty,min=0"`
	SchoolServicePlanMaxStorageMB *int `json:"school_service_plan_max_storage_mb" validate:"omitempty,min=0"`

	SchoolServicePlanAllowCustomDomain bool `json:"school_service_plan_allow_custom_domain"`
	SchoolServicePlanAllowDocuments    bool `json:"school_service_plan_allow_documents"`
	SchoolServicePlanAllowBackups      bool `json:"school_service_plan_allow_backups"`

	SchoolServicePlanPriceMonthly *float64 `json:"school_service_plan_price_monthly" validate:"omitempty,min=0"`
	SchoolServicePlanPriceYearly  *float64 `json:"school_service_plan_price_yearly" validate:"omitempty,min=0"`

	SchoolServicePlanIsActive *bool `json:"school_service_plan_is_active"`
}

func (r *CreateSchoolServicePlanRequest) ToModel() *model.SchoolServicePlan {
	m := &model.SchoolServicePlan{
		SchoolServicePlanCode:              r.SchoolServicePlanCode,
		SchoolServicePlanName:              r.SchoolServicePlanName,
		SchoolServicePlanDescription:       r.SchoolServicePlanDescription,
		SchoolServicePlanMaxTeachers:       r.SchoolServicePlanMaxTeachers,
		SchoolServicePlanMaxStudents:       r.SchoolServicePlanMaxStudents,
		SchoolServicePlanMaxStorageMB:      r.SchoolServicePlanMaxStorageMB,
		SchoolServicePlanAllowCustomDomain: r.SchoolServicePlanAllowCustomDomain,
		SchoolServicePlanAllowDocuments:    r.SchoolServicePlanAllowDocuments,
		SchoolServicePlanAllowBackups:      r.SchoolServicePlanAllowBackups,
		SchoolServicePlanPriceMonthly:      r.SchoolServicePlanPriceMonthly,
		SchoolServicePlanPriceYearly:       r.SchoolServicePlanPriceYearly,
		SchoolServicePlanIsActive:          true,
	}
	if r.SchoolServicePlanIsActive != nil {
		m.SchoolServicePlanIsActive = *r.SchoolServicePlanIsActive
	}
	return m
}

type PatchSchoolServicePlanRequest struct {
	SchoolServicePlanName        *string `json:"school_service_plan_name" validate:"omitempty,max=100"`
	SchoolServicePlanDescription *string `json:"school_service_plan_description"`

	SchoolServicePlanMaxTeachers  *int `json:"school_service_plan_max_teachers" validate:"omitempty,min=0"`
	SchoolServicePlanMaxStudents  *int `json:"school_service_plan_max_students" validate:"omitempty,min=0"`
	SchoolServicePlanMaxStorageMB *int `json:"school_service_plan_max_storage_mb" validate:"omitempty,min=0"`

	SchoolServicePlanAllowCustomDomain *bool `json:"school_service_plan_allow_custom_domain"`
	SchoolServicePlanAllowDocuments    *bool `json:"school_service_plan_allow_documents"`
	SchoolServicePlanAllowBackups      *bool `json:"school_service_plan_allow_backups"`

	SchoolServicePlanPriceMonthly *float64 `json:"school_service_plan_price_monthly" validate:"omitempty,min=0"`
	SchoolServicePlanPriceYearly  *float64 `json:"school_service_plan_price_yearly" validate:"omitempty,min=0"`

	SchoolServicePlanIsActive *bool `json:"school_service_plan_is_active"`
}

func (r *PatchSchoolServicePlanRequest) ApplyToModel(m *model.SchoolServicePlan) {
	if r.SchoolServicePlanName != nil {
		m.SchoolServicePlanName = *r.SchoolServicePlanName
	}
	if r.SchoolServicePlanDescription != nil {
		m.SchoolServicePlanDescription = r.SchoolServicePlanDescription
	}
	if r.SchoolServicePlanMaxTeachers != nil {
		m.SchoolServicePlanMaxTeachers = r.SchoolServicePlanMaxTeachers
	}
	if r.SchoolServicePlanMaxStudents != nil {
		m.SchoolServicePlanMaxStudents = r.SchoolServicePlanMaxStudents
	}
	if r.SchoolServicePlanMaxStorageMB != nil {
		m.SchoolServicePlanMaxStorageMB = r.SchoolServicePlanMaxStorageMB
	}
	if r.SchoolServicePlanAllowCustomDomain != nil {
		m.SchoolServicePlanAllowCustomDomain = *r.SchoolServicePlanAllowCustomDomain
	}
	if r.SchoolServicePlanAllowDocuments != nil {
		m.SchoolServicePlanAllowDocuments = *r.SchoolServicePlanAllowDocuments
	}
	if r.SchoolServicePlanAllowBackups != nil {
		m.SchoolServicePlanAllowBackups = *r.SchoolServicePlanAllowBackups
	}
	if r.SchoolServicePlanPriceMonthly != nil {
		m.SchoolServicePlanPriceMonthly = r.SchoolServicePlanPriceMonthly
	}
	if r.SchoolServicePlanPriceYearly != nil {
		m.SchoolServicePlanPriceYearly = r.SchoolServicePlanPriceYearly
	}
	if r.SchoolServicePlanIsActive != nil {
		m.SchoolServicePlanIsActive = *r.SchoolServicePlanIsActive
	}
}

/* =========================================================
   RESPONSE
========================================================= */

type SchoolServicePlanResponse struct {
	SchoolServicePlanID          string  `json:"school_service_plan_id"`
	SchoolServicePlanCode        string  `json:"school_service_plan_code"`
	SchoolServicePlanName        string  `json:"school_service_plan_name"`
	SchoolServicePlanDescription *string `json:"school_service_plan_description,omitempty"`

	SchoolServicePlanMaxTeachers  *int `json:"school_service_plan_max_teachers,omitempty"`
	SchoolServicePlanMaxStudents  *int `json:"school_service_plan_max_students,omitempty"`
	SchoolServicePlanMaxStorageMB *int `json:"school_service_plan_max_storage_mb,omitempty"`

	SchoolServicePlanAllowCustomDomain bool `json:"school_service_plan_allow_custom_domain"`
	SchoolServicePlanAllowDocuments    bool `json:"school_service_plan_allow_documents"`
	SchoolServicePlanAllowBackups      bool `json:"school_service_plan_allow_backups"`

	SchoolServicePlanPriceMonthly *float64 `json:"school_service_plan_price_monthly,omitempty"`
	SchoolServicePlanPriceYearly  *float64 `json:"school_service_plan_price_yearly,omitempty"`

	SchoolServicePlanIsActive  bool      `json:"school_service_plan_is_active"`
	SchoolServicePlanCreatedAt time.Time `json:"school_service_plan_created_at"`
	SchoolServicePlanUpdatedAt time.Time `json:"school_service_plan_updated_at"`
}

func NewSchoolServicePlanResponse(m *model.SchoolServicePlan) *SchoolServicePlanResponse {
	if m == nil {
		return nil
	}
	return &SchoolServicePlanResponse{
		SchoolServicePlanID:                m.SchoolServicePlanID.String(),
		SchoolServicePlanCode:              m.SchoolServicePlanCode,
		SchoolServicePlanName:              m.SchoolServicePlanName,
		SchoolServicePlanDescription:       m.SchoolServicePlanDescription,
		SchoolServicePlanMaxTeachers:       m.SchoolServicePlanMaxTeachers,
		SchoolServicePlanMaxStudents:       m.SchoolServicePlanMaxStudents,
		SchoolServicePlanMaxStorageMB:      m.SchoolServicePlanMaxStorageMB,
		SchoolServicePlanAllowCustomDomain: m.SchoolServicePlanAllowCustomDomain,
		SchoolServicePlanAllowDocuments:    m.SchoolServicePlanAllowDocuments,
		SchoolServicePlanAllowBackups:      m.SchoolServicePlanAllowBackups,
		SchoolServicePlanPriceMonthly:      m.SchoolServicePlanPriceMonthly,
		SchoolServicePlanPriceYearly:       m.SchoolServicePlanPriceYearly,
		SchoolServicePlanIsActive:          m.SchoolServicePlanIsActive,
		SchoolServicePlanCreatedAt:         m.SchoolServicePlanCreatedAt,
		SchoolServicePlanUpdatedAt:         m.SchoolServicePlanUpdatedAt,
	}
}

func NewSchoolServicePlanResponses(ms []model.SchoolServicePlan) []*SchoolServicePlanResponse {
	out := make([]*SchoolServicePlanResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewSchoolServicePlanResponse(&ms[i]))
	}
	return out
}
