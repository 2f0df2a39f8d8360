package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/users/user/model"
)

/* ========== REQUEST DTOs ========== */

type UpdateUserRequest struct {
	UserFullName *string `json:"user_full_name" validate:"omitempty,min=2,max=120"`
	UserRole     *string `json:"user_role"      validate:"omitempty,oneof=headmaster dos dod admin teacher accountant receptionist librarian student parent"`
	UserPhone    *string `json:"user_phone"     validate:"omitempty,max=20"`
	UserIsActive *bool   `json:"user_is_active"`
}

type ListUserQuery struct {
	Role   *string `query:"role" validate:"omitempty,oneof=headmaster dos dod admin teacher accountant receptionist librarian student parent"`
	Search *string `query:"search"`
}

/* ========== RESPONSE DTO ========== */

type UserResponse struct {
	UserID       uuid.UUID  `json:"user_id"`
	UserSchoolID *uuid.UUID `json:"user_school_id,omitempty"`
	UserFullName string     `json:"user_full_name"`
	UserEmail    string     `json:"user_email"`
	UserRole     string     `json:"user_role"`
	UserPhone    *string    `json:"user_phone,omitempty"`
	UserIsActive bool       `json:"user_is_active"`
	CreatedAt    time.Time  `json:"user_created_at"`
	UpdatedAt    time.Time  `json:"user_updated_at"`
}

func NewUserResponse(m *model.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		UserID:       m.UserID,
		UserSchoolID: m.UserSchoolID,
		UserFullName: m.UserFullName,
		UserEmail:    m.UserEmail,
		UserRole:     m.UserRole,
		UserPhone:    m.UserPhone,
		UserIsActive: m.UserIsActive,
		CreatedAt:    m.UserCreatedAt,
		UpdatedAt:    m.UserUpdatedAt,
	}
}

func NewUserResponses(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewUserResponse(&ms[i]))
	}
	return out
}

func (r *UpdateUserRequest) ApplyToModel(m *model.UserModel) {
	if r.UserFullName != nil {
		m.UserFullName = *r.UserFullName
	}
	if r.UserRole != nil {
		m.UserRole = *r.UserRole
	}
	if r.UserPhone != nil {
		m.UserPhone = r.UserPhone
	}
	if r.UserIsActive != nil {
		m.UserIsActive = *r.UserIsActive
	}
}
