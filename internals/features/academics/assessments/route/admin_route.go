package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assessmentController "schoolku_backend/internals/features/academics/assessments/controller"
)

func AssessmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := assessmentController.NewAssessmentController(db)

	assessments := r.Group("/assessments")
	assessments.Post("/", ctrl.CreateAssessment)
	assessments.Get("/", ctrl.ListAssessments)
	assessments.Get("/:id", ctrl.GetAssessment)
	assessments.Post("/:id/marks", ctrl.RecordMarks)
	assessments.Get("/:id/marks", ctrl.ListMarks)
	assessments.Post("/:id/publish", ctrl.PublishAssessment)
	assessments.Delete("/:id", ctrl.DeleteAssessment)
}
