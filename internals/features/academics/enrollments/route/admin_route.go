package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "schoolku_backend/internals/features/academics/enrollments/controller"
)

func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := enrollmentController.NewEnrollmentController(db)

	enrollments := r.Group("/enrollments")
	enrollments.Post("/", ctrl.CreateEnrollment)
	enrollments.Get("/", ctrl.ListEnrollments)
	enrollments.Put("/:id", ctrl.UpdateEnrollment)
	enrollments.Delete("/:id", ctrl.DeleteEnrollment)
}
