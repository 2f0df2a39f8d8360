package dto

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/academics/assessments/model"
)

type CreateAssessmentRequest struct {
	AssessmentName         string    `json:"assessment_name"          validate:"required,min=1,max=120"`
	AssessmentType         string    `json:"assessment_type"          validate:"required,oneof=quiz test assignment project exam"`
	AssessmentCategory     string    `json:"assessment_category"      validate:"omitempty,oneof=formative summative"`
	AssessmentMaxMarks     float64   `json:"assessment_max_marks"     validate:"required,gt=0"`
	AssessmentWeightage    float64   `json:"assessment_weightage"     validate:"omitempty,gt=0,lte=100"`
	AssessmentAcademicYear string    `json:"assessment_academic_year" validate:"required,min=4,max=20"`
	AssessmentTerm         string    `json:"assessment_term"          validate:"required,min=1,max=20"`
	AssessmentSubjectID    uuid.UUID `json:"assessment_subject_id"    validate:"required"`
	AssessmentClassID      uuid.UUID `json:"assessment_class_id"      validate:"required"`
}

func (r *CreateAssessmentRequest) ToModel() *model.AssessmentModel {
	category := r.AssessmentCategory
	if category == "" {
		category = "formative"
	}
	weightage := r.AssessmentWeightage
	if weightage == 0 {
		weightage = 100
	}
	return &model.AssessmentModel{
		AssessmentName:         r.AssessmentName,
		AssessmentType:         r.AssessmentType,
		AssessmentCategory:     category,
		AssessmentMaxMarks:     r.AssessmentMaxMarks,
		AssessmentWeightage:    weightage,
		AssessmentAcademicYear: r.AssessmentAcademicYear,
		AssessmentTerm:         r.AssessmentTerm,
		AssessmentSubjectID:    r.AssessmentSubjectID,
		AssessmentClassID:      r.AssessmentClassID,
		AssessmentStatus:       "draft",
	}
}

type ListAssessmentQuery struct {
	ClassID      *uuid.UUID `query:"class_id"`
	SubjectID    *uuid.UUID `query:"subject_id"`
	Term         *string    `query:"term"`
	AcademicYear *string    `query:"academic_year"`
}

type MarkEntry struct {
	MarkStudentID uuid.UUID `json:"mark_student_id" validate:"required"`
	MarkScore     float64   `json:"mark_score"      validate:"gte=0"`
	MarkRemarks   *string   `json:"mark_remarks"`
}

// RecordMarksRequest carries a whole class worth of marks in one call.
type RecordMarksRequest struct {
	Marks []MarkEntry `json:"marks" validate:"required,min=1,dive"`
}

type RecordMarksResponse struct {
	Requested int `json:"requested"`
	Saved     int `json:"saved"`
}
