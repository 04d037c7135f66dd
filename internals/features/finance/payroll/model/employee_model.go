package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
)

type EmployeeModel struct {
	EmployeeID       uuid.UUID `gorm:"column:employee_id;type:uuid;default:gen_random_uuid();primaryKey" json:"employee_id"`
	EmployeeSchoolID uuid.UUID `gorm:"column:employee_school_id;type:uuid;not null;index" json:"employee_school_id"`

	EmployeeName     string `gorm:"column:employee_name;type:varchar(150);not null" json:"employee_name" validate:"required,min=2,max=150"`
	EmployeePosition string `gorm:"column:employee_position;type:varchar(100)" json:"employee_position"`
	EmployeePhone    string `gorm:"column:employee_phone;type:varchar(30)" json:"employee_phone"`
	EmployeeEmail    string `gorm:"column:employee_email;type:varchar(255)" json:"employee_email" validate:"omitempty,email"`

	EmployeeBaseSalary float64 `gorm:"column:employee_base_salary;type:numeric(14,2);not null;default:0" json:"employee_base_salary"`
	EmployeeStatus     string  `gorm:"column:employee_status;type:varchar(20);not null;default:'active'" json:"employee_status"`

	EmployeeJoinedAt *time.Time `gorm:"column:employee_joined_at;type:date" json:"employee_joined_at,omitempty"`

	EmployeeCreatedAt time.Time      `gorm:"column:employee_created_at;autoCreateTime" json:"employee_created_at"`
	EmployeeUpdatedAt time.Time      `gorm:"column:employee_updated_at;autoUpdateTime" json:"employee_updated_at"`
	EmployeeDeletedAt gorm.DeletedAt `gorm:"column:employee_deleted_at;index" json:"employee_deleted_at,omitempty"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}
