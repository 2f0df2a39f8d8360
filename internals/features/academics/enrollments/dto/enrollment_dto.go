package dto

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/academics/enrollments/model"
)

type CreateEnrollmentRequest struct {
	EnrollmentStudentID    uuid.UUID `json:"enrollment_student_id"    validate:"required"`
	EnrollmentClassID      uuid.UUID `json:"enrollment_class_id"      validate:"required"`
	EnrollmentAcademicYear string    `json:"enrollment_academic_year" validate:"required,max=20"`
}

type UpdateEnrollmentRequest struct {
	EnrollmentClassID *uuid.UUID `json:"enrollment_class_id"`
	EnrollmentStatus  *string    `json:"enrollment_status" validate:"omitempty,oneof=enrolled completed withdrawn"`
}

type ListEnrollmentQuery struct {
	StudentID    *uuid.UUID `query:"studentId"`
	ClassID      *uuid.UUID `query:"classId"`
	AcademicYear *string    `query:"academicYear"`
	Status       *string    `query:"status" validate:"omitempty,oneof=enrolled completed withdrawn"`
}

func (r *CreateEnrollmentRequest) ToModel() *model.EnrollmentModel {
	return &model.EnrollmentModel{
		EnrollmentStudentID:    r.EnrollmentStudentID,
		EnrollmentClassID:      r.EnrollmentClassID,
		EnrollmentAcademicYear: r.EnrollmentAcademicYear,
		EnrollmentStatus:       "enrolled",
	}
}
