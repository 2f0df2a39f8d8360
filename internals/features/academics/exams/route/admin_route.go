package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	examController "schoolku_backend/internals/features/academics/exams/controller"
)

func ExamAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := examController.NewExamController(db)

	exams := r.Group("/exams")
	exams.Post("/", ctrl.CreateExam)
	exams.Get("/", ctrl.ListExams)
	exams.Get("/:id", ctrl.GetExam)
	exams.Put("/:id", ctrl.UpdateExam)
	exams.Delete("/:id", ctrl.DeleteExam)
}
