package dto

import "schoolku_backend/internals/features/academics/subjects/model"

type CreateSubjectRequest struct {
	SubjectCode        string  `json:"subject_code" validate:"required,min=1,max=20"`
	SubjectName        string  `json:"subject_name" validate:"required,min=1,max=100"`
	SubjectCoefficient float64 `json:"subject_coefficient" validate:"omitempty,gt=0"`
	SubjectDescription *string `json:"subject_description"`
}

type UpdateSubjectRequest struct {
	SubjectName        *string  `json:"subject_name" validate:"omitempty,min=1,max=100"`
	SubjectCoefficient *float64 `json:"subject_coefficient" validate:"omitempty,gt=0"`
	SubjectDescription *string  `json:"subject_description"`
}

func (r *CreateSubjectRequest) ToModel() *model.SubjectModel {
	coef := r.SubjectCoefficient
	if coef == 0 {
		coef = 1
	}
	return &model.SubjectModel{
		SubjectCode:        r.SubjectCode,
		SubjectName:        r.SubjectName,
		SubjectCoefficient: coef,
		SubjectDescription: r.SubjectDescription,
	}
}

func (r *UpdateSubjectRequest) ApplyToModel(m *model.SubjectModel) {
	if r.SubjectName != nil {
		m.SubjectName = *r.SubjectName
	}
	if r.SubjectCoefficient != nil {
		m.SubjectCoefficient = *r.SubjectCoefficient
	}
	if r.SubjectDescription != nil {
		m.SubjectDescription = r.SubjectDescription
	}
}
