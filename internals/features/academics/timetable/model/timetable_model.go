package model

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// TimetableModel is one recurring lesson slot: a class meets a subject on a
// weekday between two clock times.
type TimetableModel struct {
	TimetableID       uuid.UUID `gorm:"column:timetable_id;type:uuid;default:gen_random_uuid();primaryKey" json:"timetable_id"`
	TimetableSchoolID uuid.UUID `gorm:"column:timetable_school_id;type:uuid;not null;index" json:"timetable_school_id"`

	// monday .. sunday
	TimetableDayOfWeek string `gorm:"column:timetable_day_of_week;type:varchar(10);not null" json:"timetable_day_of_week"`
	// "08:00" / "09:30", 24h clock
	TimetableStartTime string `gorm:"column:timetable_start_time;type:varchar(5);not null" json:"timetable_start_time"`
	TimetableEndTime   string `gorm:"column:timetable_end_time;type:varchar(5);not null" json:"timetable_end_time"`

	TimetableClassID   uuid.UUID  `gorm:"column:timetable_class_id;type:uuid;not null;index" json:"timetable_class_id"`
	TimetableSubjectID uuid.UUID  `gorm:"column:timetable_subject_id;type:uuid;not null" json:"timetable_subject_id"`
	TimetableTeacherID *uuid.UUID `gorm:"column:timetable_teacher_id;type:uuid;index" json:"timetable_teacher_id,omitempty"`
	TimetableRoom      *string    `gorm:"column:timetable_room;type:varchar(50)" json:"timetable_room,omitempty"`

	TimetableCreatedAt time.Time `gorm:"column:timetable_created_at;autoCreateTime" json:"timetable_created_at"`
	TimetableUpdatedAt time.Time `gorm:"column:timetable_updated_at;autoUpdateTime" json:"timetable_updated_at"`
}

func (TimetableModel) TableName() string { return "timetables" }

func (m *TimetableModel) SetSchoolID(id uuid.UUID) { m.TimetableSchoolID = id }

var dayRank = map[string]int{
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
	"sunday":    7,
}

// SortEntries orders slots the way a printed timetable reads: Monday first,
// then by start time. Day names sort alphabetically in SQL, so ordering
// happens here.
func SortEntries(entries []TimetableModel) {
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := dayRank[entries[i].TimetableDayOfWeek], dayRank[entries[j].TimetableDayOfWeek]
		if di != dj {
			return di < dj
		}
		return entries[i].TimetableStartTime < entries[j].TimetableStartTime
	})
}
