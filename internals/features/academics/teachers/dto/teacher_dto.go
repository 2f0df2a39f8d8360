package dto

import (
	"time"

	"schoolku_backend/internals/features/academics/teachers/model"
)

type CreateTeacherRequest struct {
	TeacherStaffNo  string     `json:"teacher_staff_no"  validate:"required,min=1,max=50"`
	TeacherFullName string     `json:"teacher_full_name" validate:"required,min=2,max=120"`
	TeacherEmail    *string    `json:"teacher_email"     validate:"omitempty,email"`
	TeacherPhone    *string    `json:"teacher_phone"     validate:"omitempty,max=20"`
	TeacherSubjects []string   `json:"teacher_subjects"`
	TeacherHiredAt  *time.Time `json:"teacher_hired_at"`
}

type UpdateTeacherRequest struct {
	TeacherFullName         *string  `json:"teacher_full_name" validate:"omitempty,min=2,max=120"`
	TeacherEmail            *string  `json:"teacher_email"     validate:"omitempty,email"`
	TeacherPhone            *string  `json:"teacher_phone"     validate:"omitempty,max=20"`
	TeacherSubjects         []string `json:"teacher_subjects"`
	TeacherEmploymentStatus *string  `json:"teacher_employment_status" validate:"omitempty,oneof=active on_leave resigned"`
}

type ListTeacherQuery struct {
	EmploymentStatus *string `query:"employmentStatus" validate:"omitempty,oneof=active on_leave resigned"`
	Search           *string `query:"search"`
}

func (r *CreateTeacherRequest) ToModel() *model.TeacherModel {
	return &model.TeacherModel{
		TeacherStaffNo:          r.TeacherStaffNo,
		TeacherFullName:         r.TeacherFullName,
		TeacherEmail:            r.TeacherEmail,
		TeacherPhone:            r.TeacherPhone,
		TeacherSubjects:         r.TeacherSubjects,
		TeacherHiredAt:          r.TeacherHiredAt,
		TeacherEmploymentStatus: "active",
	}
}

func (r *UpdateTeacherRequest) ApplyToModel(m *model.TeacherModel) {
	if r.TeacherFullName != nil {
		m.TeacherFullName = *r.TeacherFullName
	}
	if r.TeacherEmail != nil {
		m.TeacherEmail = r.TeacherEmail
	}
	if r.TeacherPhone != nil {
		m.TeacherPhone = r.TeacherPhone
	}
	if r.TeacherSubjects != nil {
		m.TeacherSubjects = r.TeacherSubjects
	}
	if r.TeacherEmploymentStatus != nil {
		m.TeacherEmploymentStatus = *r.TeacherEmploymentStatus
	}
}
