package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PayslipStatusDraft = "draft"
	PayslipStatusPaid  = "paid"
)

// Satu payslip per pegawai per periode "YYYY-MM".
type PayslipModel struct {
	PayslipID         uuid.UUID `gorm:"column:payslip_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payslip_id"`
	PayslipSchoolID   uuid.UUID `gorm:"column:payslip_school_id;type:uuid;not null;index" json:"payslip_school_id"`
	PayslipEmployeeID uuid.UUID `gorm:"column:payslip_employee_id;type:uuid;not null;index:idx_payslips_employee_period,unique,priority:1" json:"payslip_employee_id"`

	PayslipPeriod string `gorm:"column:payslip_period;type:varchar(7);not null;index:idx_payslips_employee_period,unique,priority:2" json:"payslip_period" validate:"required,len=7"`

	PayslipBaseSalary float64 `gorm:"column:payslip_base_salary;type:numeric(14,2);not null" json:"payslip_base_salary"`
	PayslipAllowance  float64 `gorm:"column:payslip_allowance;type:numeric(14,2);not null;default:0" json:"payslip_allowance"`
	PayslipDeduction  float64 `gorm:"column:payslip_deduction;type:numeric(14,2);not null;default:0" json:"payslip_deduction"`
	PayslipNetPay     float64 `gorm:"column:payslip_net_pay;type:numeric(14,2);not null" json:"payslip_net_pay"`

	PayslipStatus string     `gorm:"column:payslip_status;type:varchar(20);not null;default:'draft'" json:"payslip_status"`
	PayslipPaidAt *time.Time `gorm:"column:payslip_paid_at;type:timestamptz" json:"payslip_paid_at,omitempty"`
	PayslipNotes  string     `gorm:"column:payslip_notes;type:text" json:"payslip_notes"`

	PayslipCreatedAt time.Time      `gorm:"column:payslip_created_at;autoCreateTime" json:"payslip_created_at"`
	PayslipUpdatedAt time.Time      `gorm:"column:payslip_updated_at;autoUpdateTime" json:"payslip_updated_at"`
	PayslipDeletedAt gorm.DeletedAt `gorm:"column:payslip_deleted_at;index" json:"payslip_deleted_at,omitempty"`
}

func (PayslipModel) TableName() string {
	return "payslips"
}
