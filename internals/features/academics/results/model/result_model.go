package model

import (
	"time"

	"github.com/google/uuid"
)

type ResultModel struct {
	ResultID       uuid.UUID `gorm:"column:result_id;type:uuid;default:gen_random_uuid();primaryKey" json:"result_id"`
	ResultSchoolID uuid.UUID `gorm:"column:result_school_id;type:uuid;not null;index" json:"result_school_id"`

	ResultExamID    uuid.UUID `gorm:"column:result_exam_id;type:uuid;not null;index" json:"result_exam_id"`
	ResultStudentID uuid.UUID `gorm:"column:result_student_id;type:uuid;not null;index" json:"result_student_id"`

	ResultScore     float64 `gorm:"column:result_score;not null" json:"result_score"`
	ResultGrade     string  `gorm:"column:result_grade;type:varchar(5)" json:"result_grade"`
	ResultRemarks   *string `gorm:"column:result_remarks;type:text" json:"result_remarks,omitempty"`
	ResultPublished bool    `gorm:"column:result_published;default:false" json:"result_published"`

	ResultCreatedAt time.Time `gorm:"column:result_created_at;autoCreateTime" json:"result_created_at"`
	ResultUpdatedAt time.Time `gorm:"column:result_updated_at;autoUpdateTime" json:"result_updated_at"`
}

func (ResultModel) TableName() string { return "exam_results" }

func (m *ResultModel) SetSchoolID(id uuid.UUID) { m.ResultSchoolID = id }

// GradeFor maps a score against the exam's max to a letter grade.
func GradeFor(score, maxScore float64) string {
	if maxScore <= 0 {
		return ""
	}
	pct := score / maxScore * 100
	switch {
	case pct >= 90:
		return "A"
	case pct >= 80:
		return "B"
	case pct >= 70:
		return "C"
	case pct >= 60:
		return "D"
	case pct >= 50:
		return "E"
	default:
		return "F"
	}
}
