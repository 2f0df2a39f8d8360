package dto

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/academics/timetable/model"
)

type CreateTimetableEntryRequest struct {
	TimetableDayOfWeek string     `json:"timetable_day_of_week" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	TimetableStartTime string     `json:"timetable_start_time"  validate:"required,len=5"`
	TimetableEndTime   string     `json:"timetable_end_time"    validate:"required,len=5"`
	TimetableClassID   uuid.UUID  `json:"timetable_class_id"    validate:"required"`
	TimetableSubjectID uuid.UUID  `json:"timetable_subject_id"  validate:"required"`
	TimetableTeacherID *uuid.UUID `json:"timetable_teacher_id"`
	TimetableRoom      *string    `json:"timetable_room"        validate:"omitempty,max=50"`
}

func (r *CreateTimetableEntryRequest) ToModel() *model.TimetableModel {
	return &model.TimetableModel{
		TimetableDayOfWeek: r.TimetableDayOfWeek,
		TimetableStartTime: r.TimetableStartTime,
		TimetableEndTime:   r.TimetableEndTime,
		TimetableClassID:   r.TimetableClassID,
		TimetableSubjectID: r.TimetableSubjectID,
		TimetableTeacherID: r.TimetableTeacherID,
		TimetableRoom:      r.TimetableRoom,
	}
}
