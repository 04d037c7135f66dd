// file: internals/features/finance/bills/dto/student_bill_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/finance/bills/model"
)

type CreateStudentBillRequest struct {
	StudentBillStudentID uuid.UUID  `json:"student_bill_student_id" validate:"required"`
	StudentBillTitle     string     `json:"student_bill_title" validate:"required,min=3,max=150"`
	StudentBillAmount    float64    `json:"student_bill_amount" validate:"required,gt=0"`
	StudentBillDueDate   *time.Time `json:"student_bill_due_date"`
}

func (r *CreateStudentBillRequest) ToModel(schoolID uuid.UUID, orderID string) *model.StudentBillModel {
	return &model.StudentBillModel{
		StudentBillSchoolID:  schoolID,
		StudentBillStudentID: r.StudentBillStudentID,
		StudentBillTitle:     r.StudentBillTitle,
		StudentBillAmount:    r.StudentBillAmount,
		StudentBillDueDate:   r.StudentBillDueDate,
		StudentBillStatus:    model.BillStatusUnpaid,
		StudentBillOrderID:   orderID,
	}
}

// PayStudentBillRequest: identitas pembayar untuk snap token.
type PayStudentBillRequest struct {
	PayerName  string `json:"payer_name" validate:"required,min=2,max=150"`
	PayerEmail string `json:"payer_email" validate:"omitempty,email"`
}

type StudentBillResponse struct {
	StudentBillID        string `json:"student_bill_id"`
	StudentBillStudentID string `json:"student_bill_student_id"`

	StudentBillTitle  string  `json:"student_bill_title"`
	StudentBillAmount float64 `json:"student_bill_amount"`

	StudentBillStatus  string     `json:"student_bill_status"`
	StudentBillDueDate *time.Time `json:"student_bill_due_date,omitempty"`

	StudentBillOrderID string     `json:"student_bill_order_id"`
	StudentBillPaidAt  *time.Time `json:"student_bill_paid_at,omitempty"`

	StudentBillCreatedAt time.Time `json:"student_bill_created_at"`
	StudentBillUpdatedAt time.Time `json:"student_bill_updated_at"`
}

func NewStudentBillResponse(m *model.StudentBillModel) *StudentBillResponse {
	if m == nil {
		return nil
	}
	return &StudentBillResponse{
		StudentBillID:        m.StudentBillID.String(),
		StudentBillStudentID: m.StudentBillStudentID.String(),
		StudentBillTitle:     m.StudentBillTitle,
		StudentBillAmount:    m.StudentBillAmount,
		StudentBillStatus:    m.StudentBillStatus,
		StudentBillDueDate:   m.StudentBillDueDate,
		StudentBillOrderID:   m.StudentBillOrderID,
		StudentBillPaidAt:    m.StudentBillPaidAt,
		StudentBillCreatedAt: m.StudentBillCreatedAt,
		StudentBillUpdatedAt: m.StudentBillUpdatedAt,
	}
}

func NewStudentBillResponses(ms []model.StudentBillModel) []*StudentBillResponse {
	out := make([]*StudentBillResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewStudentBillResponse(&ms[i]))
	}
	return out
}
