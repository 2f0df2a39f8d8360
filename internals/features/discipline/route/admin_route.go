package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	incidentController "schoolku_backend/internals/features/discipline/controller"
)

func DisciplineAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := incidentController.NewIncidentController(db)

	incidents := r.Group("/discipline/incidents")
	incidents.Post("/", ctrl.CreateIncident)
	incidents.Get("/", ctrl.ListIncidents)
	incidents.Get("/:id", ctrl.GetIncident)
	incidents.Put("/:id", ctrl.UpdateIncident)
	incidents.Delete("/:id", ctrl.DeleteIncident)
}
