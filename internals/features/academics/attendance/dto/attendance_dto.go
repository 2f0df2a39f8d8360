package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/academics/attendance/model"
)

type RecordAttendanceRequest struct {
	AttendanceStudentID uuid.UUID `json:"attendance_student_id" validate:"required"`
	AttendanceClassID   uuid.UUID `json:"attendance_class_id"   validate:"required"`
	AttendanceDate      time.Time `json:"attendance_date"       validate:"required"`
	AttendanceStatus    string    `json:"attendance_status"     validate:"required,oneof=present absent late excused"`
	AttendanceRemarks   *string   `json:"attendance_remarks"`
}

// BulkRecordAttendanceRequest covers the common case of a teacher marking a
// whole class for one date in a single call.
type BulkRecordAttendanceRequest struct {
	AttendanceClassID uuid.UUID             `json:"attendance_class_id" validate:"required"`
	AttendanceDate    time.Time             `json:"attendance_date"     validate:"required"`
	Entries           []BulkAttendanceEntry `json:"entries"             validate:"required,min=1,dive"`
}

type BulkAttendanceEntry struct {
	AttendanceStudentID uuid.UUID `json:"attendance_student_id" validate:"required"`
	AttendanceStatus    string    `json:"attendance_status"     validate:"required,oneof=present absent late excused"`
	AttendanceRemarks   *string   `json:"attendance_remarks"`
}

type ListAttendanceQuery struct {
	StudentID *uuid.UUID `query:"studentId"`
	ClassID   *uuid.UUID `query:"classId"`
	DateFrom  *time.Time `query:"dateFrom"`
	DateTo    *time.Time `query:"dateTo"`
	Status    *string    `query:"status" validate:"omitempty,oneof=present absent late excused"`
}

func (r *RecordAttendanceRequest) ToModel(recordedBy *uuid.UUID) *model.AttendanceModel {
	return &model.AttendanceModel{
		AttendanceStudentID:  r.AttendanceStudentID,
		AttendanceClassID:    r.AttendanceClassID,
		AttendanceDate:       r.AttendanceDate,
		AttendanceStatus:     r.AttendanceStatus,
		AttendanceRemarks:    r.AttendanceRemarks,
		AttendanceRecordedBy: recordedBy,
	}
}
