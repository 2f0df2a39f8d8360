package dto

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/resources/model"
)

type CreateResourceRequestRequest struct {
	RequestItem        string  `json:"request_item"        validate:"required,min=1,max=150"`
	RequestDescription *string `json:"request_description"`
	RequestQuantity    int     `json:"request_quantity"    validate:"omitempty,gt=0"`
}

func (r *CreateResourceRequestRequest) ToModel(teacherID uuid.UUID) *model.ResourceRequestModel {
	qty := r.RequestQuantity
	if qty == 0 {
		qty = 1
	}
	return &model.ResourceRequestModel{
		RequestItem:        r.RequestItem,
		RequestDescription: r.RequestDescription,
		RequestQuantity:    qty,
		RequestStatus:      "pending",
		RequestTeacherID:   teacherID,
	}
}

type UpdateResourceRequestStatusRequest struct {
	RequestStatus       string  `json:"request_status"        validate:"required,oneof=approved rejected fulfilled"`
	RequestAdminComment *string `json:"request_admin_comment"`
}
