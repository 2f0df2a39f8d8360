package dto

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/academics/classes/model"
)

type CreateClassRequest struct {
	ClassName              string     `json:"class_name"        validate:"required,min=1,max=100"`
	ClassGradeLevel        int        `json:"class_grade_level" validate:"required,min=1,max=13"`
	ClassSection           *string    `json:"class_section"     validate:"omitempty,max=10"`
	ClassCapacity          *int       `json:"class_capacity"    validate:"omitempty,min=1,max=200"`
	ClassHomeroomTeacherID *uuid.UUID `json:"class_homeroom_teacher_id"`
	ClassAcademicYear      string     `json:"class_academic_year" validate:"required,max=20"`
}

type UpdateClassRequest struct {
	ClassName              *string    `json:"class_name"        validate:"omitempty,min=1,max=100"`
	ClassGradeLevel        *int       `json:"class_grade_level" validate:"omitempty,min=1,max=13"`
	ClassSection           *string    `json:"class_section"     validate:"omitempty,max=10"`
	ClassCapacity          *int       `json:"class_capacity"    validate:"omitempty,min=1,max=200"`
	ClassHomeroomTeacherID *uuid.UUID `json:"class_homeroom_teacher_id"`
	ClassAcademicYear      *string    `json:"class_academic_year" validate:"omitempty,max=20"`
}

type ListClassQuery struct {
	GradeLevel   *int    `query:"gradeLevel" validate:"omitempty,min=1,max=13"`
	AcademicYear *string `query:"academicYear"`
}

func (r *CreateClassRequest) ToModel() *model.ClassModel {
	m := &model.ClassModel{
		ClassName:              r.ClassName,
		ClassGradeLevel:        r.ClassGradeLevel,
		ClassSection:           r.ClassSection,
		ClassCapacity:          40,
		ClassHomeroomTeacherID: r.ClassHomeroomTeacherID,
		ClassAcademicYear:      r.ClassAcademicYear,
	}
	if r.ClassCapacity != nil {
		m.ClassCapacity = *r.ClassCapacity
	}
	return m
}

func (r *UpdateClassRequest) ApplyToModel(m *model.ClassModel) {
	if r.ClassName != nil {
		m.ClassName = *r.ClassName
	}
	if r.ClassGradeLevel != nil {
		m.ClassGradeLevel = *r.ClassGradeLevel
	}
	if r.ClassSection != nil {
		m.ClassSection = r.ClassSection
	}
	if r.ClassCapacity != nil {
		m.ClassCapacity = *r.ClassCapacity
	}
	if r.ClassHomeroomTeacherID != nil {
		m.ClassHomeroomTeacherID = r.ClassHomeroomTeacherID
	}
	if r.ClassAcademicYear != nil {
		m.ClassAcademicYear = *r.ClassAcademicYear
	}
}
