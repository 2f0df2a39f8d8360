package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/discipline/model"
)

type CreateIncidentRequest struct {
	IncidentStudentID   uuid.UUID `json:"incident_student_id"  validate:"required"`
	IncidentDate        time.Time `json:"incident_date"        validate:"required"`
	IncidentDescription string    `json:"incident_description" validate:"required,min=5"`
	IncidentSeverity    string    `json:"incident_severity"    validate:"required,oneof=minor moderate severe"`
	IncidentActionTaken *string   `json:"incident_action_taken"`
	IncidentTags        []string  `json:"incident_tags"`
}

type UpdateIncidentRequest struct {
	IncidentDescription *string  `json:"incident_description" validate:"omitempty,min=5"`
	IncidentSeverity    *string  `json:"incident_severity"    validate:"omitempty,oneof=minor moderate severe"`
	IncidentActionTaken *string  `json:"incident_action_taken"`
	IncidentTags        []string `json:"incident_tags"`
}

type ListIncidentQuery struct {
	StudentID *uuid.UUID `query:"studentId"`
	Severity  *string    `query:"severity" validate:"omitempty,oneof=minor moderate severe"`
}

func (r *CreateIncidentRequest) ToModel(reportedBy *uuid.UUID) *model.IncidentModel {
	return &model.IncidentModel{
		IncidentStudentID:   r.IncidentStudentID,
		IncidentDate:        r.IncidentDate,
		IncidentDescription: r.IncidentDescription,
		IncidentSeverity:    r.IncidentSeverity,
		IncidentActionTaken: r.IncidentActionTaken,
		IncidentTags:        r.IncidentTags,
		IncidentReportedBy:  reportedBy,
	}
}

func (r *UpdateIncidentRequest) ApplyToModel(m *model.IncidentModel) {
	if r.IncidentDescription != nil {
		m.IncidentDescription = *r.IncidentDescription
	}
	if r.IncidentSeverity != nil {
		m.IncidentSeverity = *r.IncidentSeverity
	}
	if r.IncidentActionTaken != nil {
		m.IncidentActionTaken = r.IncidentActionTaken
	}
	if r.IncidentTags != nil {
		m.IncidentTags = r.IncidentTags
	}
}
