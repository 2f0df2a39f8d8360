package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFeeRequest struct {
	FeeStudentID uuid.UUID  `json:"fee_student_id" validate:"required"`
	FeeType      string     `json:"fee_type"       validate:"required,oneof=tuition registration library transport other"`
	FeeLabel     string     `json:"fee_label"      validate:"required,min=2,max=120"`
	FeeAmount    int64      `json:"fee_amount"     validate:"required,gt=0"`
	FeeDueDate   *time.Time `json:"fee_due_date"`
}

type UpdateFeeRequest struct {
	FeeLabel   *string    `json:"fee_label"  validate:"omitempty,min=2,max=120"`
	FeeAmount  *int64     `json:"fee_amount" validate:"omitempty,gt=0"`
	FeeDueDate *time.Time `json:"fee_due_date"`
	FeeStatus  *string    `json:"fee_status" validate:"omitempty,oneof=unpaid pending paid cancelled"`
}

type ListFeeQuery struct {
	StudentID *uuid.UUID `query:"studentId"`
	Type      *string    `query:"type"   validate:"omitempty,oneof=tuition registration library transport other"`
	Status    *string    `query:"status" validate:"omitempty,oneof=unpaid pending paid cancelled"`
}

type PayFeeResponse struct {
	FeeID      uuid.UUID `json:"fee_id"`
	OrderID    string    `json:"order_id"`
	SnapToken  string    `json:"snap_token"`
	RedirectTo string    `json:"redirect_url"`
}
