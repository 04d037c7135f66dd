// file: internals/features/finance/payroll/dto/payroll_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/finance/payroll/model"
)

/* =========================================================
   EMPLOYEE
========================================================= */

type CreateEmployeeRequest struct {
	EmployeeName     string `json:"employee_name" validate:"required,min=2,max=150"`
	EmployeePosition string `json:"employee_position" validate:"omitempty,max=100"`
	EmployeePhone    string `json:"employee_phone" validate:"omitempty,max=30"`
	EmployeeEmail    string `json:"employee_email" validate:"omitempty,email"`

	EmployeeBaseSalary float64    `json:"employee_base_salary" validate:"min=0"`
	EmployeeJoinedAt   *time.Time `json:"employee_joined_at"`
}

func (r *CreateEmployeeRequest) ToModel(schoolID uuid.UUID) *model.EmployeeModel {
	return &model.EmployeeModel{
		EmployeeSchoolID:   schoolID,
		EmployeeName:       r.EmployeeName,
		EmployeePosition:   r.EmployeePosition,
		EmployeePhone:      r.EmployeePhone,
		EmployeeEmail:      r.EmployeeEmail,
		EmployeeBaseSalary: r.EmployeeBaseSalary,
		EmployeeJoinedAt:   r.EmployeeJoinedAt,
		EmployeeStatus:     model.EmployeeStatusActive,
	}
}

type UpdateEmployeeRequest struct {
	EmployeeName     *string `json:"employee_name" validate:"omitempty,min=2,max=150"`
	EmployeePosition *string `json:"employee_position" validate:"omitempty,max=100"`
	EmployeePhone    *string `json:"employee_phone" validate:"omitempty,max=30"`
	EmployeeEmail    *string `json:"employee_email" validate:"omitempty,email"`

	EmployeeBaseSalary *float64 `json:"employee_base_salary" validate:"omitempty,min=0"`
	EmployeeStatus     *string  `json:"employee_status" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateEmployeeRequest) ApplyToModel(m *model.EmployeeModel) {
	if r.EmployeeName != nil {
		m.EmployeeName = *r.EmployeeName
	}
	if r.EmployeePosition != nil {
		m.EmployeePosition = *r.EmployeePosition
	}
	if r.EmployeePhone != nil {
		m.EmployeePhone = *r.EmployeePhone
	}
	if r.EmployeeEmail != nil {
		m.EmployeeEmail = *r.EmployeeEmail
	}
	if r.EmployeeBaseSalary != nil {
		m.EmployeeBaseSalary = *r.EmployeeBaseSalary
	}
	if r.EmployeeStatus != nil {
		m.EmployeeStatus = *r.EmployeeStatus
	}
}

type EmployeeResponse struct {
	EmployeeID       string `json:"employee_id"`
	EmployeeName     string `json:"employee_name"`
	EmployeePosition string `json:"employee_position,omitempty"`
	EmployeePhone    string `json:"employee_phone,omitempty"`
	EmployeeEmail    string `json:"employee_email,omitempty"`

	EmployeeBaseSalary float64    `json:"employee_base_salary"`
	EmployeeStatus     string     `json:"employee_status"`
	EmployeeJoinedAt   *time.Time `json:"employee_joined_at,omitempty"`

	EmployeeCreatedAt time.Time `json:"employee_created_at"`
	EmployeeUpdatedAt time.Time `json:"employee_updated_at"`
}

func NewEmployeeResponse(m *model.EmployeeModel) *EmployeeResponse {
	if m == nil {
		return nil
	}
	return &EmployeeResponse{
		EmployeeID:         m.EmployeeID.String(),
		EmployeeName:       m.EmployeeName,
		EmployeePosition:   m.EmployeePosition,
		EmployeePhone:      m.EmployeePhone,
		EmployeeEmail:      m.EmployeeEmail,
		EmployeeBaseSalary: m.EmployeeBaseSalary,
		EmployeeStatus:     m.EmployeeStatus,
		EmployeeJoinedAt:   m.EmployeeJoinedAt,
		EmployeeCreatedAt:  m.EmployeeCreatedAt,
		EmployeeUpdatedAt:  m.EmployeeUpdatedAt,
	}
}

func NewEmployeeResponses(ms []model.EmployeeModel) []*EmployeeResponse {
	out := make([]*EmployeeResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewEmployeeResponse(&ms[i]))
	}
	return out
}

/* =========================================================
   PAYSLIP
========================================================= */

type CreatePayslipRequest struct {
	PayslipEmployeeID uuid.UUID `json:"payslip_employee_id" validate:"required"`
	PayslipPeriod     string    `json:"payslip_period" validate:"required,len=7"`

	PayslipAllowance float64 `json:"payslip_allowance" validate:"min=0"`
	PayslipDeduction float64 `json:"payslip_deduction" validate:"min=0"`
	PayslipNotes     string  `json:"payslip_notes"`
}

type PayslipResponse struct {
	PayslipID         string `json:"payslip_id"`
	PayslipEmployeeID string `json:"payslip_employee_id"`
	PayslipPeriod     string `json:"payslip_period"`

	PayslipBaseSalary float64 `json:"payslip_base_salary"`
	PayslipAllowance  float64 `json:"payslip_allowance"`
	PayslipDeduction  float64 `json:"payslip_deduction"`
	PayslipNetPay     float64 `json:"payslip_net_pay"`

	PayslipStatus string     `json:"payslip_status"`
	PayslipPaidAt *time.Time `json:"payslip_paid_at,omitempty"`
	PayslipNotes  string     `json:"payslip_notes,omitempty"`

	PayslipCreatedAt time.Time `json:"payslip_created_at"`
	PayslipUpdatedAt time.Time `json:"payslip_updated_at"`
}

func NewPayslipResponse(m *model.PayslipModel) *PayslipResponse {
	if m == nil {
		return nil
	}
	return &PayslipResponse{
		PayslipID:         m.PayslipID.String(),
		PayslipEmployeeID: m.PayslipEmployeeID.String(),
		PayslipPeriod:     m.PayslipPeriod,
		PayslipBaseSalary: m.PayslipBaseSalary,
		PayslipAllowance:  m.PayslipAllowance,
		PayslipDeduction:  m.PayslipDeduction,
		PayslipNetPay:     m.PayslipNetPay,
		PayslipStatus:     m.PayslipStatus,
		PayslipPaidAt:     m.PayslipPaidAt,
		PayslipNotes:      m.PayslipNotes,
		PayslipCreatedAt:  m.PayslipCreatedAt,
		PayslipUpdatedAt:  m.PayslipUpdatedAt,
	}
}

func NewPayslipResponses(ms []model.PayslipModel) []*PayslipResponse {
	out := make([]*PayslipResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewPayslipResponse(&ms[i]))
	}
	return out
}
