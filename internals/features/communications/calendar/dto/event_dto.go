package dto

import (
	"time"

	"schoolku_backend/internals/features/communications/calendar/model"
)

type CreateEventRequest struct {
	EventTitle       string    `json:"event_title"       validate:"required,min=1,max=150"`
	EventDescription *string   `json:"event_description"`
	EventStartsAt    time.Time `json:"event_starts_at"   validate:"required"`
	EventEndsAt      time.Time `json:"event_ends_at"     validate:"required,gtefield=EventStartsAt"`
	EventType        string    `json:"event_type"        validate:"omitempty,oneof=term exam holiday event"`
}

type UpdateEventRequest struct {
	EventTitle       *string    `json:"event_title"       validate:"omitempty,min=1,max=150"`
	EventDescription *string    `json:"event_description"`
	EventStartsAt    *time.Time `json:"event_starts_at"`
	EventEndsAt      *time.Time `json:"event_ends_at"`
	EventType        *string    `json:"event_type"        validate:"omitempty,oneof=term exam holiday event"`
}

func (r *CreateEventRequest) ToModel() *model.EventModel {
	eventType := r.EventType
	if eventType == "" {
		eventType = "event"
	}
	return &model.EventModel{
		EventTitle:       r.EventTitle,
		EventDescription: r.EventDescription,
		EventStartsAt:    r.EventStartsAt,
		EventEndsAt:      r.EventEndsAt,
		EventType:        eventType,
	}
}

func (r *UpdateEventRequest) ApplyToModel(m *model.EventModel) {
	if r.EventTitle != nil {
		m.EventTitle = *r.EventTitle
	}
	if r.EventDescription != nil {
		m.EventDescription = r.EventDescription
	}
	if r.EventStartsAt != nil {
		m.EventStartsAt = *r.EventStartsAt
	}
	if r.EventEndsAt != nil {
		m.EventEndsAt = *r.EventEndsAt
	}
	if r.EventType != nil {
		m.EventType = *r.EventType
	}
}
