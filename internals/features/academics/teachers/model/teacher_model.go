package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type TeacherModel struct {
	TeacherID       uuid.UUID `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`
	TeacherSchoolID uuid.UUID `gorm:"column:teacher_school_id;type:uuid;not null;index" json:"teacher_school_id"`

	TeacherStaffNo   string         `gorm:"column:teacher_staff_no;type:varchar(50);not null" json:"teacher_staff_no"`
	TeacherFullName  string         `gorm:"column:teacher_full_name;type:varchar(120);not null" json:"teacher_full_name"`
	TeacherEmail     *string        `gorm:"column:teacher_email;type:varchar(255)" json:"teacher_email,omitempty"`
	TeacherPhone     *string        `gorm:"column:teacher_phone;type:varchar(20)" json:"teacher_phone,omitempty"`
	TeacherSubjects  pq.StringArray `gorm:"column:teacher_subjects;type:text[]" json:"teacher_subjects"`
	TeacherUserID    *uuid.UUID     `gorm:"column:teacher_user_id;type:uuid" json:"teacher_user_id,omitempty"`
	TeacherHiredAt   *time.Time     `gorm:"column:teacher_hired_at" json:"teacher_hired_at,omitempty"`

	// active | on_leave | resigned
	TeacherEmploymentStatus string `gorm:"column:teacher_employment_status;type:varchar(20);default:'active'" json:"teacher_employment_status"`

	TeacherCreatedAt time.Time `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (m *TeacherModel) SetSchoolID(id uuid.UUID) { m.TeacherSchoolID = id }
