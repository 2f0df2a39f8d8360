package dto

import (
	"github.com/google/uuid"
)

type RecordResultRequest struct {
	ResultExamID    uuid.UUID `json:"result_exam_id"    validate:"required"`
	ResultStudentID uuid.UUID `json:"result_student_id" validate:"required"`
	ResultScore     float64   `json:"result_score"      validate:"min=0"`
	ResultRemarks   *string   `json:"result_remarks"`
}

type ListResultQuery struct {
	ExamID    *uuid.UUID `query:"examId"`
	StudentID *uuid.UUID `query:"studentId"`
	Published *bool      `query:"published"`
}
