package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/academics/students/model"
)

type CreateStudentRequest struct {
	StudentAdmissionNo   string     `json:"student_admission_no" validate:"required,min=1,max=50"`
	StudentFirstName     string     `json:"student_first_name"   validate:"required,min=1,max=100"`
	StudentLastName      string     `json:"student_last_name"    validate:"required,min=1,max=100"`
	StudentGender        string     `json:"student_gender"       validate:"omitempty,oneof=male female"`
	StudentDateOfBirth   *time.Time `json:"student_date_of_birth"`
	StudentClassID       *uuid.UUID `json:"student_class_id"`
	StudentGuardianName  *string    `json:"student_guardian_name"  validate:"omitempty,max=120"`
	StudentGuardianPhone *string    `json:"student_guardian_phone" validate:"omitempty,max=20"`
	StudentAddress       *string    `json:"student_address"`
}

type UpdateStudentRequest struct {
	StudentFirstName     *string    `json:"student_first_name" validate:"omitempty,min=1,max=100"`
	StudentLastName      *string    `json:"student_last_name"  validate:"omitempty,min=1,max=100"`
	StudentGender        *string    `json:"student_gender"     validate:"omitempty,oneof=male female"`
	StudentDateOfBirth   *time.Time `json:"student_date_of_birth"`
	StudentClassID       *uuid.UUID `json:"student_class_id"`
	StudentGuardianName  *string    `json:"student_guardian_name"  validate:"omitempty,max=120"`
	StudentGuardianPhone *string    `json:"student_guardian_phone" validate:"omitempty,max=20"`
	StudentAddress       *string    `json:"student_address"`
	StudentStatus        *string    `json:"student_status" validate:"omitempty,oneof=active graduated transferred suspended"`
}

type ListStudentQuery struct {
	ClassID *uuid.UUID `query:"classId"`
	Status  *string    `query:"status" validate:"omitempty,oneof=active graduated transferred suspended"`
	Search  *string    `query:"search"`
}

func (r *CreateStudentRequest) ToModel() *model.StudentModel {
	return &model.StudentModel{
		StudentAdmissionNo:   r.StudentAdmissionNo,
		StudentFirstName:     r.StudentFirstName,
		StudentLastName:      r.StudentLastName,
		StudentGender:        r.StudentGender,
		StudentDateOfBirth:   r.StudentDateOfBirth,
		StudentClassID:       r.StudentClassID,
		StudentGuardianName:  r.StudentGuardianName,
		StudentGuardianPhone: r.StudentGuardianPhone,
		StudentAddress:       r.StudentAddress,
		StudentStatus:        "active",
	}
}

func (r *UpdateStudentRequest) ApplyToModel(m *model.StudentModel) {
	if r.StudentFirstName != nil {
		m.StudentFirstName = *r.StudentFirstName
	}
	if r.StudentLastName != nil {
		m.StudentLastName = *r.StudentLastName
	}
	if r.StudentGender != nil {
		m.StudentGender = *r.StudentGender
	}
	if r.StudentDateOfBirth != nil {
		m.StudentDateOfBirth = r.StudentDateOfBirth
	}
	if r.StudentClassID != nil {
		m.StudentClassID = r.StudentClassID
	}
	if r.StudentGuardianName != nil {
		m.StudentGuardianName = r.StudentGuardianName
	}
	if r.StudentGuardianPhone != nil {
		m.StudentGuardianPhone = r.StudentGuardianPhone
	}
	if r.StudentAddress != nil {
		m.StudentAddress = r.StudentAddress
	}
	if r.StudentStatus != nil {
		m.StudentStatus = *r.StudentStatus
	}
}
