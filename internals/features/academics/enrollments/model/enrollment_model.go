package model

import (
	"time"

	"github.com/google/uuid"
)

type EnrollmentModel struct {
	EnrollmentID       uuid.UUID `gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_id"`
	EnrollmentSchoolID uuid.UUID `gorm:"column:enrollment_school_id;type:uuid;not null;index" json:"enrollment_school_id"`

	EnrollmentStudentID    uuid.UUID `gorm:"column:enrollment_student_id;type:uuid;not null;index" json:"enrollment_student_id"`
	EnrollmentClassID      uuid.UUID `gorm:"column:enrollment_class_id;type:uuid;not null;index" json:"enrollment_class_id"`
	EnrollmentAcademicYear string    `gorm:"column:enrollment_academic_year;type:varchar(20);not null" json:"enrollment_academic_year"`

	// enrolled | completed | withdrawn
	EnrollmentStatus string `gorm:"column:enrollment_status;type:varchar(20);default:'enrolled'" json:"enrollment_status"`

	EnrollmentCreatedAt time.Time `gorm:"column:enrollment_created_at;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time `gorm:"column:enrollment_updated_at;autoUpdateTime" json:"enrollment_updated_at"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

func (m *EnrollmentModel) SetSchoolID(id uuid.UUID) { m.EnrollmentSchoolID = id }
