package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel is one school-calendar entry: term boundaries, exam periods,
// holidays and one-off events.
type EventModel struct {
	EventID       uuid.UUID `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventSchoolID uuid.UUID `gorm:"column:event_school_id;type:uuid;not null;index" json:"event_school_id"`

	EventTitle       string  `gorm:"column:event_title;type:varchar(150);not null" json:"event_title"`
	EventDescription *string `gorm:"column:event_description;type:text" json:"event_description,omitempty"`

	EventStartsAt time.Time `gorm:"column:event_starts_at;not null" json:"event_starts_at"`
	EventEndsAt   time.Time `gorm:"column:event_ends_at;not null" json:"event_ends_at"`

	// term | exam | holiday | event
	EventType string `gorm:"column:event_type;type:varchar(20);default:'event'" json:"event_type"`

	EventCreatedAt time.Time `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
}

func (EventModel) TableName() string { return "school_events" }

func (m *EventModel) SetSchoolID(id uuid.UUID) { m.EventSchoolID = id }
