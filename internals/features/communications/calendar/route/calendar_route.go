package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "schoolku_backend/internals/features/communications/calendar/controller"
)

func CalendarAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)

	calendar := r.Group("/calendar")
	calendar.Post("/", ctrl.CreateEvent)
	calendar.Get("/", ctrl.ListEvents)
	calendar.Put("/:id", ctrl.UpdateEvent)
	calendar.Delete("/:id", ctrl.DeleteEvent)
}

func CalendarUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)

	r.Get("/calendar", ctrl.ListEvents)
}
