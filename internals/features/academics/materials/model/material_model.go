package model

import (
	"time"

	"github.com/google/uuid"
)

// MaterialModel is a teaching document shared by a teacher: lesson plans,
// schemes of work, notes, assignments. The file itself lives in external
// storage; only the URL is kept.
type MaterialModel struct {
	MaterialID       uuid.UUID `gorm:"column:material_id;type:uuid;default:gen_random_uuid();primaryKey" json:"material_id"`
	MaterialSchoolID uuid.UUID `gorm:"column:material_school_id;type:uuid;not null;index" json:"material_school_id"`

	MaterialTitle       string  `gorm:"column:material_title;type:varchar(150);not null" json:"material_title"`
	MaterialDescription *string `gorm:"column:material_description;type:text" json:"material_description,omitempty"`
	// lesson_plan | scheme_of_work | note | assignment
	MaterialType    string `gorm:"column:material_type;type:varchar(20);not null" json:"material_type"`
	MaterialFileURL string `gorm:"column:material_file_url;type:text;not null" json:"material_file_url"`

	MaterialTeacherID uuid.UUID  `gorm:"column:material_teacher_id;type:uuid;not null;index" json:"material_teacher_id"`
	MaterialSubjectID *uuid.UUID `gorm:"column:material_subject_id;type:uuid;index" json:"material_subject_id,omitempty"`
	MaterialClassID   *uuid.UUID `gorm:"column:material_class_id;type:uuid;index" json:"material_class_id,omitempty"`

	MaterialCreatedAt time.Time `gorm:"column:material_created_at;autoCreateTime" json:"material_created_at"`
	MaterialUpdatedAt time.Time `gorm:"column:material_updated_at;autoUpdateTime" json:"material_updated_at"`
}

func (MaterialModel) TableName() string { return "materials" }

func (m *MaterialModel) SetSchoolID(id uuid.UUID) { m.MaterialSchoolID = id }
