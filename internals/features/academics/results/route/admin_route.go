package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resultController "schoolku_backend/internals/features/academics/results/controller"
)

func ResultAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := resultController.NewResultController(db)

	results := r.Group("/results")
	results.Post("/", ctrl.RecordResult)
	results.Get("/", ctrl.ListResults)
	results.Post("/publish/:examId", ctrl.PublishExamResults)
	results.Delete("/:id", ctrl.DeleteResult)
}

func ResultUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := resultController.NewResultController(db)

	r.Get("/results/me", ctrl.MyResults)
}
