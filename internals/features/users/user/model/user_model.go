package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the users table. Every account except super admins
// belongs to exactly one school.
type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserSchoolID *uuid.UUID `gorm:"type:uuid;index" json:"user_school_id,omitempty"`

	UserFullName string  `gorm:"type:varchar(120);not null" json:"user_full_name"`
	UserEmail    string  `gorm:"type:varchar(100);uniqueIndex;not null" json:"user_email"`
	UserPassword string  `gorm:"type:text;not null" json:"-"`
	UserRole     string  `gorm:"type:varchar(30);not null;default:'student';index" json:"user_role"`
	UserPhone    *string `gorm:"type:varchar(20)" json:"user_phone,omitempty"`

	UserIsActive bool `gorm:"not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) SetSchoolID(id uuid.UUID) { m.UserSchoolID = &id }
