package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceModel struct {
	AttendanceID       uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`
	AttendanceSchoolID uuid.UUID `gorm:"column:attendance_school_id;type:uuid;not null;index" json:"attendance_school_id"`

	AttendanceStudentID uuid.UUID `gorm:"column:attendance_student_id;type:uuid;not null;index" json:"attendance_student_id"`
	AttendanceClassID   uuid.UUID `gorm:"column:attendance_class_id;type:uuid;not null;index" json:"attendance_class_id"`
	AttendanceDate      time.Time `gorm:"column:attendance_date;type:date;not null" json:"attendance_date"`

	// present | absent | late | excused
	AttendanceStatus  string  `gorm:"column:attendance_status;type:varchar(10);not null" json:"attendance_status"`
	AttendanceRemarks *string `gorm:"column:attendance_remarks;type:text" json:"attendance_remarks,omitempty"`

	AttendanceRecordedBy *uuid.UUID `gorm:"column:attendance_recorded_by;type:uuid" json:"attendance_recorded_by,omitempty"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string { return "attendance_records" }

func (m *AttendanceModel) SetSchoolID(id uuid.UUID) { m.AttendanceSchoolID = id }
