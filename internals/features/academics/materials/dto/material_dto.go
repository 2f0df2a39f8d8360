package dto

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/academics/materials/model"
)

type CreateMaterialRequest struct {
	MaterialTitle       string     `json:"material_title"       validate:"required,min=1,max=150"`
	MaterialDescription *string    `json:"material_description"`
	MaterialType        string     `json:"material_type"        validate:"required,oneof=lesson_plan scheme_of_work note assignment"`
	MaterialFileURL     string     `json:"material_file_url"    validate:"required,url"`
	MaterialSubjectID   *uuid.UUID `json:"material_subject_id"`
	MaterialClassID     *uuid.UUID `json:"material_class_id"`
}

func (r *CreateMaterialRequest) ToModel(teacherID uuid.UUID) *model.MaterialModel {
	return &model.MaterialModel{
		MaterialTitle:       r.MaterialTitle,
		MaterialDescription: r.MaterialDescription,
		MaterialType:        r.MaterialType,
		MaterialFileURL:     r.MaterialFileURL,
		MaterialTeacherID:   teacherID,
		MaterialSubjectID:   r.MaterialSubjectID,
		MaterialClassID:     r.MaterialClassID,
	}
}

type ListMaterialQuery struct {
	ClassID   *uuid.UUID `query:"class_id"`
	SubjectID *uuid.UUID `query:"subject_id"`
	TeacherID *uuid.UUID `query:"teacher_id"`
	Type      *string    `query:"type" validate:"omitempty,oneof=lesson_plan scheme_of_work note assignment"`
}
