package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/communications/announcements/model"
)

type CreateAnnouncementRequest struct {
	AnnouncementTitle       string     `json:"announcement_title" validate:"required,min=2,max=150"`
	AnnouncementBody        string     `json:"announcement_body"  validate:"required,min=2"`
	AnnouncementAudience    []string   `json:"announcement_audience" validate:"omitempty,dive,oneof=headmaster dos dod admin teacher accountant receptionist librarian student parent"`
	AnnouncementPublishedAt *time.Time `json:"announcement_published_at"`
	AnnouncementExpiresAt   *time.Time `json:"announcement_expires_at"`
}

type UpdateAnnouncementRequest struct {
	AnnouncementTitle       *string    `json:"announcement_title" validate:"omitempty,min=2,max=150"`
	AnnouncementBody        *string    `json:"announcement_body"  validate:"omitempty,min=2"`
	AnnouncementAudience    []string   `json:"announcement_audience" validate:"omitempty,dive,oneof=headmaster dos dod admin teacher accountant receptionist librarian student parent"`
	AnnouncementPublishedAt *time.Time `json:"announcement_published_at"`
	AnnouncementExpiresAt   *time.Time `json:"announcement_expires_at"`
}

func (r *CreateAnnouncementRequest) ToModel(createdBy *uuid.UUID) *model.AnnouncementModel {
	publishedAt := r.AnnouncementPublishedAt
	if publishedAt == nil {
		now := time.Now()
		publishedAt = &now
	}
	return &model.AnnouncementModel{
		AnnouncementTitle:       r.AnnouncementTitle,
		AnnouncementBody:        r.AnnouncementBody,
		AnnouncementAudience:    r.AnnouncementAudience,
		AnnouncementPublishedAt: publishedAt,
		AnnouncementExpiresAt:   r.AnnouncementExpiresAt,
		AnnouncementCreatedBy:   createdBy,
	}
}

func (r *UpdateAnnouncementRequest) ApplyToModel(m *model.AnnouncementModel) {
	if r.AnnouncementTitle != nil {
		m.AnnouncementTitle = *r.AnnouncementTitle
	}
	if r.AnnouncementBody != nil {
		m.AnnouncementBody = *r.AnnouncementBody
	}
	if r.AnnouncementAudience != nil {
		m.AnnouncementAudience = r.AnnouncementAudience
	}
	if r.AnnouncementPublishedAt != nil {
		m.AnnouncementPublishedAt = r.AnnouncementPublishedAt
	}
	if r.AnnouncementExpiresAt != nil {
		m.AnnouncementExpiresAt = r.AnnouncementExpiresAt
	}
}
