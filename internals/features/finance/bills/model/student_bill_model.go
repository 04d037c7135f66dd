package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status tagihan siswa.
const (
	BillStatusUnpaid    = "unpaid"
	BillStatusPending   = "pending" // snap token dibuat, menunggu settlement
	BillStatusPaid      = "paid"
	BillStatusCancelled = "cancelled"
)

type StudentBillModel struct {
	StudentBillID        uuid.UUID `gorm:"column:student_bill_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_bill_id"`
	StudentBillSchoolID  uuid.UUID `gorm:"column:student_bill_school_id;type:uuid;not null;index" json:"student_bill_school_id"`
	StudentBillStudentID uuid.UUID `gorm:"column:student_bill_student_id;type:uuid;not null;index" json:"student_bill_student_id"`

	// contoh: "SPP Agustus 2026"
	StudentBillTitle  string  `gorm:"column:student_bill_title;type:varchar(150);not null" json:"student_bill_title"`
	StudentBillAmount float64 `gorm:"column:student_bill_amount;type:numeric(14,2);not null" json:"student_bill_amount"`

	StudentBillStatus  string     `gorm:"column:student_bill_status;type:varchar(20);not null;default:'unpaid'" json:"student_bill_status"`
	StudentBillDueDate *time.Time `gorm:"column:student_bill_due_date;type:date" json:"student_bill_due_date,omitempty"`

	// jejak pembayaran midtrans
	StudentBillOrderID      string     `gorm:"column:student_bill_order_id;type:varchar(64);uniqueIndex" json:"student_bill_order_id"`
	StudentBillPaymentToken string     `gorm:"column:student_bill_payment_token;type:varchar(128)" json:"student_bill_payment_token,omitempty"`
	StudentBillPaidAt       *time.Time `gorm:"column:student_bill_paid_at;type:timestamptz" json:"student_bill_paid_at,omitempty"`

	StudentBillCreatedAt time.Time      `gorm:"column:student_bill_created_at;autoCreateTime" json:"student_bill_created_at"`
	StudentBillUpdatedAt time.Time      `gorm:"column:student_bill_updated_at;autoUpdateTime" json:"student_bill_updated_at"`
	StudentBillDeletedAt gorm.DeletedAt `gorm:"column:student_bill_deleted_at;index" json:"student_bill_deleted_at,omitempty"`
}

func (StudentBillModel) TableName() string {
	return "student_bills"
}
