package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentModel struct {
	StudentID       uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentSchoolID uuid.UUID `gorm:"column:student_school_id;type:uuid;not null;index" json:"student_school_id"`

	StudentAdmissionNo string     `gorm:"column:student_admission_no;type:varchar(50);not null" json:"student_admission_no"`
	StudentFirstName   string     `gorm:"column:student_first_name;type:varchar(100);not null" json:"student_first_name"`
	StudentLastName    string     `gorm:"column:student_last_name;type:varchar(100);not null" json:"student_last_name"`
	StudentGender      string     `gorm:"column:student_gender;type:varchar(10)" json:"student_gender"`
	StudentDateOfBirth *time.Time `gorm:"column:student_date_of_birth" json:"student_date_of_birth,omitempty"`

	StudentClassID *uuid.UUID `gorm:"column:student_class_id;type:uuid;index" json:"student_class_id,omitempty"`
	StudentUserID  *uuid.UUID `gorm:"column:student_user_id;type:uuid" json:"student_user_id,omitempty"`

	StudentGuardianName  *string `gorm:"column:student_guardian_name;type:varchar(120)" json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string `gorm:"column:student_guardian_phone;type:varchar(20)" json:"student_guardian_phone,omitempty"`
	StudentAddress       *string `gorm:"column:student_address;type:text" json:"student_address,omitempty"`

	// active | graduated | transferred | suspended
	StudentStatus string `gorm:"column:student_status;type:varchar(20);default:'active'" json:"student_status"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) SetSchoolID(id uuid.UUID) { m.StudentSchoolID = id }
