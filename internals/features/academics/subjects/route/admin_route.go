package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "schoolku_backend/internals/features/academics/subjects/controller"
)

func SubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := subjectController.NewSubjectController(db)

	subjects := r.Group("/subjects")
	subjects.Post("/", ctrl.CreateSubject)
	subjects.Get("/", ctrl.ListSubjects)
	subjects.Get("/:id", ctrl.GetSubject)
	subjects.Put("/:id", ctrl.UpdateSubject)
	subjects.Delete("/:id", ctrl.DeleteSubject)
}
