package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type AnnouncementModel struct {
	AnnouncementID       uuid.UUID `gorm:"column:announcement_id;type:uuid;default:gen_random_uuid();primaryKey" json:"announcement_id"`
	AnnouncementSchoolID uuid.UUID `gorm:"column:announcement_school_id;type:uuid;not null;index" json:"announcement_school_id"`

	AnnouncementTitle string `gorm:"column:announcement_title;type:varchar(150);not null" json:"announcement_title"`
	AnnouncementBody  string `gorm:"column:announcement_body;type:text;not null" json:"announcement_body"`

	// Role names the announcement targets; empty = everyone.
	AnnouncementAudience pq.StringArray `gorm:"column:announcement_audience;type:text[]" json:"announcement_audience"`

	AnnouncementPublishedAt *time.Time `gorm:"column:announcement_published_at" json:"announcement_published_at,omitempty"`
	AnnouncementExpiresAt   *time.Time `gorm:"column:announcement_expires_at" json:"announcement_expires_at,omitempty"`

	AnnouncementCreatedBy *uuid.UUID `gorm:"column:announcement_created_by;type:uuid" json:"announcement_created_by,omitempty"`

	AnnouncementCreatedAt time.Time `gorm:"column:announcement_created_at;autoCreateTime" json:"announcement_created_at"`
	AnnouncementUpdatedAt time.Time `gorm:"column:announcement_updated_at;autoUpdateTime" json:"announcement_updated_at"`
}

func (AnnouncementModel) TableName() string { return "announcements" }

func (m *AnnouncementModel) SetSchoolID(id uuid.UUID) { m.AnnouncementSchoolID = id }
