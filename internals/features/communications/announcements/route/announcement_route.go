package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementController "schoolku_backend/internals/features/communications/announcements/controller"
)

func AnnouncementAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := announcementController.NewAnnouncementController(db)

	announcements := r.Group("/announcements")
	announcements.Post("/", ctrl.CreateAnnouncement)
	announcements.Get("/", ctrl.ListAnnouncements)
	announcements.Put("/:id", ctrl.UpdateAnnouncement)
	announcements.Delete("/:id", ctrl.DeleteAnnouncement)
}

func AnnouncementUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := announcementController.NewAnnouncementController(db)

	r.Get("/announcements", ctrl.ListMyAnnouncements)
}
