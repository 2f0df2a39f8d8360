package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolController "schoolku_backend/internals/features/schools/controller"
)

// SchoolSuperAdminRoutes: registry management, platform operators only.
func SchoolSuperAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := schoolController.NewSchoolController(db)

	schools := r.Group("/schools")
	schools.Post("/", ctrl.CreateSchool)
	schools.Get("/", ctrl.ListSchools)
	schools.Get("/:id", ctrl.GetSchool)
	schools.Put("/:id", ctrl.UpdateSchool)
	schools.Delete("/:id", ctrl.DeleteSchool)
	schools.Put("/:id/subscription", ctrl.UpdateSubscription)
	schools.Post("/:id/statistics", ctrl.RefreshStatistics)
}
