package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationController "schoolku_backend/internals/features/communications/notifications/controller"
)

func NotificationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := notificationController.NewNotificationController(db)

	r.Post("/notifications", ctrl.SendNotification)
}

func NotificationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := notificationController.NewNotificationController(db)

	notifications := r.Group("/notifications")
	notifications.Get("/", ctrl.MyNotifications)
	notifications.Post("/:id/read", ctrl.MarkAsRead)
	notifications.Post("/read-all", ctrl.MarkAllAsRead)
}
