package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type IncidentModel struct {
	IncidentID       uuid.UUID `gorm:"column:incident_id;type:uuid;default:gen_random_uuid();primaryKey" json:"incident_id"`
	IncidentSchoolID uuid.UUID `gorm:"column:incident_school_id;type:uuid;not null;index" json:"incident_school_id"`

	IncidentStudentID uuid.UUID `gorm:"column:incident_student_id;type:uuid;not null;index" json:"incident_student_id"`
	IncidentDate      time.Time `gorm:"column:incident_date;type:date;not null" json:"incident_date"`

	IncidentDescription string `gorm:"column:incident_description;type:text;not null" json:"incident_description"`
	// minor | moderate | severe
	IncidentSeverity    string         `gorm:"column:incident_severity;type:varchar(10);not null" json:"incident_severity"`
	IncidentActionTaken *string        `gorm:"column:incident_action_taken;type:text" json:"incident_action_taken,omitempty"`
	IncidentTags        pq.StringArray `gorm:"column:incident_tags;type:text[]" json:"incident_tags"`

	IncidentReportedBy *uuid.UUID `gorm:"column:incident_reported_by;type:uuid" json:"incident_reported_by,omitempty"`

	IncidentCreatedAt time.Time `gorm:"column:incident_created_at;autoCreateTime" json:"incident_created_at"`
	IncidentUpdatedAt time.Time `gorm:"column:incident_updated_at;autoUpdateTime" json:"incident_updated_at"`
}

func (IncidentModel) TableName() string { return "discipline_incidents" }

func (m *IncidentModel) SetSchoolID(id uuid.UUID) { m.IncidentSchoolID = id }
