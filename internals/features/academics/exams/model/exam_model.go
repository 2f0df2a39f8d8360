package model

import (
	"time"

	"github.com/google/uuid"
)

type ExamModel struct {
	ExamID       uuid.UUID `gorm:"column:exam_id;type:uuid;default:gen_random_uuid();primaryKey" json:"exam_id"`
	ExamSchoolID uuid.UUID `gorm:"column:exam_school_id;type:uuid;not null;index" json:"exam_school_id"`

	ExamTitle     string    `gorm:"column:exam_title;type:varchar(150);not null" json:"exam_title"`
	ExamSubjectID uuid.UUID `gorm:"column:exam_subject_id;type:uuid;not null;index" json:"exam_subject_id"`
	ExamClassID   uuid.UUID `gorm:"column:exam_class_id;type:uuid;not null;index" json:"exam_class_id"`
	ExamDate      time.Time `gorm:"column:exam_date;type:date;not null" json:"exam_date"`
	ExamMaxScore  float64   `gorm:"column:exam_max_score;default:100" json:"exam_max_score"`

	// scheduled | ongoing | completed | cancelled
	ExamStatus string `gorm:"column:exam_status;type:varchar(20);default:'scheduled'" json:"exam_status"`

	ExamCreatedAt time.Time `gorm:"column:exam_created_at;autoCreateTime" json:"exam_created_at"`
	ExamUpdatedAt time.Time `gorm:"column:exam_updated_at;autoUpdateTime" json:"exam_updated_at"`
}

func (ExamModel) TableName() string { return "exams" }

func (m *ExamModel) SetSchoolID(id uuid.UUID) { m.ExamSchoolID = id }
