package dto

import "github.com/google/uuid"

type SendNotificationRequest struct {
	NotificationUserIDs []uuid.UUID `json:"notification_user_ids" validate:"required,min=1"`
	NotificationType    string      `json:"notification_type"     validate:"omitempty,oneof=info fee exam attendance discipline"`
	NotificationTitle   string      `json:"notification_title"    validate:"required,min=2,max=150"`
	NotificationBody    string      `json:"notification_body"     validate:"required,min=2"`
}
