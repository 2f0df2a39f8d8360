package model

import (
	"time"

	"github.com/google/uuid"
)

type ClassModel struct {
	ClassID       uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`
	ClassSchoolID uuid.UUID `gorm:"column:class_school_id;type:uuid;not null;index" json:"class_school_id"`

	ClassName       string  `gorm:"column:class_name;type:varchar(100);not null" json:"class_name"`
	ClassGradeLevel int     `gorm:"column:class_grade_level;not null" json:"class_grade_level"`
	ClassSection    *string `gorm:"column:class_section;type:varchar(10)" json:"class_section,omitempty"`
	ClassCapacity   int     `gorm:"column:class_capacity;default:40" json:"class_capacity"`

	ClassHomeroomTeacherID *uuid.UUID `gorm:"column:class_homeroom_teacher_id;type:uuid" json:"class_homeroom_teacher_id,omitempty"`
	ClassAcademicYear      string     `gorm:"column:class_academic_year;type:varchar(20)" json:"class_academic_year"`

	ClassCreatedAt time.Time `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at"`
}

func (ClassModel) TableName() string { return "classes" }

func (m *ClassModel) SetSchoolID(id uuid.UUID) { m.ClassSchoolID = id }
