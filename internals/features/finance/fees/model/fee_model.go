package model

import (
	"time"

	"github.com/google/uuid"
)

type FeeModel struct {
	FeeID       uuid.UUID `gorm:"column:fee_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_id"`
	FeeSchoolID uuid.UUID `gorm:"column:fee_school_id;type:uuid;not null;index" json:"fee_school_id"`

	FeeStudentID uuid.UUID `gorm:"column:fee_student_id;type:uuid;not null;index" json:"fee_student_id"`

	// tuition | registration | library | transport | other
	FeeType    string     `gorm:"column:fee_type;type:varchar(30);not null" json:"fee_type"`
	FeeLabel   string     `gorm:"column:fee_label;type:varchar(120);not null" json:"fee_label"`
	FeeAmount  int64      `gorm:"column:fee_amount;not null" json:"fee_amount"`
	FeeDueDate *time.Time `gorm:"column:fee_due_date;type:date" json:"fee_due_date,omitempty"`

	// unpaid | pending | paid | cancelled
	FeeStatus  string     `gorm:"column:fee_status;type:varchar(20);default:'unpaid'" json:"fee_status"`
	FeeOrderID *string    `gorm:"column:fee_order_id;type:varchar(64)" json:"fee_order_id,omitempty"`
	FeePaidAt  *time.Time `gorm:"column:fee_paid_at" json:"fee_paid_at,omitempty"`

	FeeCreatedAt time.Time `gorm:"column:fee_created_at;autoCreateTime" json:"fee_created_at"`
	FeeUpdatedAt time.Time `gorm:"column:fee_updated_at;autoUpdateTime" json:"fee_updated_at"`
}

func (FeeModel) TableName() string { return "fees" }

func (m *FeeModel) SetSchoolID(id uuid.UUID) { m.FeeSchoolID = id }
