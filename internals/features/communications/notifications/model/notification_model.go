package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationModel struct {
	NotificationID       uuid.UUID `gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notification_id"`
	NotificationSchoolID uuid.UUID `gorm:"column:notification_school_id;type:uuid;not null;index" json:"notification_school_id"`

	NotificationUserID uuid.UUID `gorm:"column:notification_user_id;type:uuid;not null;index" json:"notification_user_id"`

	// info | fee | exam | attendance | discipline
	NotificationType  string `gorm:"column:notification_type;type:varchar(20);default:'info'" json:"notification_type"`
	NotificationTitle string `gorm:"column:notification_title;type:varchar(150);not null" json:"notification_title"`
	NotificationBody  string `gorm:"column:notification_body;type:text;not null" json:"notification_body"`

	NotificationIsRead bool       `gorm:"column:notification_is_read;default:false" json:"notification_is_read"`
	NotificationReadAt *time.Time `gorm:"column:notification_read_at" json:"notification_read_at,omitempty"`

	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string { return "notifications" }

func (m *NotificationModel) SetSchoolID(id uuid.UUID) { m.NotificationSchoolID = id }
