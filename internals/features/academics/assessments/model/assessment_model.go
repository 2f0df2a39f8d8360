package model

import (
	"time"

	"github.com/google/uuid"
)

// AssessmentModel is a continuous-assessment item (quiz, test, assignment)
// graded per class and subject within a term.
type AssessmentModel struct {
	AssessmentID       uuid.UUID `gorm:"column:assessment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"assessment_id"`
	AssessmentSchoolID uuid.UUID `gorm:"column:assessment_school_id;type:uuid;not null;index" json:"assessment_school_id"`

	AssessmentName string `gorm:"column:assessment_name;type:varchar(120);not null" json:"assessment_name"`
	// quiz | test | assignment | project | exam
	AssessmentType string `gorm:"column:assessment_type;type:varchar(20);not null" json:"assessment_type"`
	// formative | summative
	AssessmentCategory string `gorm:"column:assessment_category;type:varchar(20);default:'formative'" json:"assessment_category"`

	AssessmentMaxMarks  float64 `gorm:"column:assessment_max_marks;not null" json:"assessment_max_marks"`
	AssessmentWeightage float64 `gorm:"column:assessment_weightage;default:100" json:"assessment_weightage"`

	AssessmentAcademicYear string `gorm:"column:assessment_academic_year;type:varchar(20);not null" json:"assessment_academic_year"`
	AssessmentTerm         string `gorm:"column:assessment_term;type:varchar(20);not null" json:"assessment_term"`

	AssessmentSubjectID uuid.UUID `gorm:"column:assessment_subject_id;type:uuid;not null;index" json:"assessment_subject_id"`
	AssessmentClassID   uuid.UUID `gorm:"column:assessment_class_id;type:uuid;not null;index" json:"assessment_class_id"`

	// draft | published
	AssessmentStatus string `gorm:"column:assessment_status;type:varchar(20);default:'draft'" json:"assessment_status"`

	AssessmentCreatedAt time.Time `gorm:"column:assessment_created_at;autoCreateTime" json:"assessment_created_at"`
	AssessmentUpdatedAt time.Time `gorm:"column:assessment_updated_at;autoUpdateTime" json:"assessment_updated_at"`
}

func (AssessmentModel) TableName() string { return "assessments" }

func (m *AssessmentModel) SetSchoolID(id uuid.UUID) { m.AssessmentSchoolID = id }

// MarkModel is one student's mark for one assessment (one row per pair).
type MarkModel struct {
	MarkID       uuid.UUID `gorm:"column:mark_id;type:uuid;default:gen_random_uuid();primaryKey" json:"mark_id"`
	MarkSchoolID uuid.UUID `gorm:"column:mark_school_id;type:uuid;not null;index" json:"mark_school_id"`

	MarkAssessmentID uuid.UUID `gorm:"column:mark_assessment_id;type:uuid;not null;index" json:"mark_assessment_id"`
	MarkStudentID    uuid.UUID `gorm:"column:mark_student_id;type:uuid;not null;index" json:"mark_student_id"`

	MarkScore   float64 `gorm:"column:mark_score;not null" json:"mark_score"`
	MarkRemarks *string `gorm:"column:mark_remarks;type:text" json:"mark_remarks,omitempty"`

	MarkCreatedAt time.Time `gorm:"column:mark_created_at;autoCreateTime" json:"mark_created_at"`
	MarkUpdatedAt time.Time `gorm:"column:mark_updated_at;autoUpdateTime" json:"mark_updated_at"`
}

func (MarkModel) TableName() string { return "assessment_marks" }

func (m *MarkModel) SetSchoolID(id uuid.UUID) { m.MarkSchoolID = id }
