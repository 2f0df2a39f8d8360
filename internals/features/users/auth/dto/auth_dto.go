package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "schoolku_backend/internals/features/users/user/model"
)

/* ========== REQUEST DTOs ========== */

type RegisterRequest struct {
	UserFullName string  `json:"user_full_name" validate:"required,min=2,max=120"`
	UserEmail    string  `json:"user_email"     validate:"required,email,max=100"`
	UserPassword string  `json:"user_password"  validate:"required,min=8,max=72"`
	UserRole     string  `json:"user_role"      validate:"omitempty,oneof=headmaster dos dod admin teacher accountant receptionist librarian student parent"`
	UserPhone    *string `json:"user_phone"     validate:"omitempty,max=20"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email"    validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

/* ========== RESPONSE DTOs ========== */

type UserResponse struct {
	UserID       uuid.UUID  `json:"user_id"`
	UserSchoolID *uuid.UUID `json:"user_school_id,omitempty"`
	UserFullName string     `json:"user_full_name"`
	UserEmail    string     `json:"user_email"`
	UserRole     string     `json:"user_role"`
	UserPhone    *string    `json:"user_phone,omitempty"`
	UserIsActive bool       `json:"user_is_active"`
	CreatedAt    time.Time  `json:"user_created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func NewUserResponse(m *userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:       m.UserID,
		UserSchoolID: m.UserSchoolID,
		UserFullName: m.UserFullName,
		UserEmail:    m.UserEmail,
		UserRole:     m.UserRole,
		UserPhone:    m.UserPhone,
		UserIsActive: m.UserIsActive,
		CreatedAt:    m.UserCreatedAt,
	}
}

func (r *RegisterRequest) ToModel() *userModel.UserModel {
	role := r.UserRole
	if role == "" {
		role = "student"
	}
	return &userModel.UserModel{
		UserFullName: r.UserFullName,
		UserEmail:    r.UserEmail,
		UserRole:     role,
		UserPhone:    r.UserPhone,
		UserIsActive: true,
	}
}
