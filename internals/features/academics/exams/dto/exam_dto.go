package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/academics/exams/model"
)

type CreateExamRequest struct {
	ExamTitle     string    `json:"exam_title"      validate:"required,min=2,max=150"`
	ExamSubjectID uuid.UUID `json:"exam_subject_id" validate:"required"`
	ExamClassID   uuid.UUID `json:"exam_class_id"   validate:"required"`
	ExamDate      time.Time `json:"exam_date"       validate:"required"`
	ExamMaxScore  *float64  `json:"exam_max_score"  validate:"omitempty,gt=0"`
}

type UpdateExamRequest struct {
	ExamTitle    *string    `json:"exam_title"     validate:"omitempty,min=2,max=150"`
	ExamDate     *time.Time `json:"exam_date"`
	ExamMaxScore *float64   `json:"exam_max_score" validate:"omitempty,gt=0"`
	ExamStatus   *string    `json:"exam_status"    validate:"omitempty,oneof=scheduled ongoing completed cancelled"`
}

type ListExamQuery struct {
	ClassID   *uuid.UUID `query:"classId"`
	SubjectID *uuid.UUID `query:"subjectId"`
	Status    *string    `query:"status" validate:"omitempty,oneof=scheduled ongoing completed cancelled"`
}

func (r *CreateExamRequest) ToModel() *model.ExamModel {
	m := &model.ExamModel{
		ExamTitle:     r.ExamTitle,
		ExamSubjectID: r.ExamSubjectID,
		ExamClassID:   r.ExamClassID,
		ExamDate:      r.ExamDate,
		ExamMaxScore:  100,
		ExamStatus:    "scheduled",
	}
	if r.ExamMaxScore != nil {
		m.ExamMaxScore = *r.ExamMaxScore
	}
	return m
}

func (r *UpdateExamRequest) ApplyToModel(m *model.ExamModel) {
	if r.ExamTitle != nil {
		m.ExamTitle = *r.ExamTitle
	}
	if r.ExamDate != nil {
		m.ExamDate = *r.ExamDate
	}
	if r.ExamMaxScore != nil {
		m.ExamMaxScore = *r.ExamMaxScore
	}
	if r.ExamStatus != nil {
		m.ExamStatus = *r.ExamStatus
	}
}
