package model

import (
	"time"

	"github.com/google/uuid"
)

// ResourceRequestModel is a teacher's ask for classroom supplies, routed to
// school management for approval and fulfilment.
type ResourceRequestModel struct {
	RequestID       uuid.UUID `gorm:"column:request_id;type:uuid;default:gen_random_uuid();primaryKey" json:"request_id"`
	RequestSchoolID uuid.UUID `gorm:"column:request_school_id;type:uuid;not null;index" json:"request_school_id"`

	RequestItem        string  `gorm:"column:request_item;type:varchar(150);not null" json:"request_item"`
	RequestDescription *string `gorm:"column:request_description;type:text" json:"request_description,omitempty"`
	RequestQuantity    int     `gorm:"column:request_quantity;default:1" json:"request_quantity"`

	// pending | approved | rejected | fulfilled
	RequestStatus       string  `gorm:"column:request_status;type:varchar(20);default:'pending'" json:"request_status"`
	RequestAdminComment *string `gorm:"column:request_admin_comment;type:text" json:"request_admin_comment,omitempty"`

	RequestTeacherID uuid.UUID `gorm:"column:request_teacher_id;type:uuid;not null;index" json:"request_teacher_id"`

	RequestCreatedAt time.Time `gorm:"column:request_created_at;autoCreateTime" json:"request_created_at"`
	RequestUpdatedAt time.Time `gorm:"column:request_updated_at;autoUpdateTime" json:"request_updated_at"`
}

func (ResourceRequestModel) TableName() string { return "resource_requests" }

func (m *ResourceRequestModel) SetSchoolID(id uuid.UUID) { m.RequestSchoolID = id }
