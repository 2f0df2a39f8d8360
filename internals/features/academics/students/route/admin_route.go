package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "schoolku_backend/internals/features/academics/students/controller"
)

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	students := r.Group("/students")
	students.Post("/", ctrl.CreateStudent)
	students.Get("/", ctrl.ListStudents)
	students.Get("/:id", ctrl.GetStudent)
	students.Put("/:id", ctrl.UpdateStudent)
	students.Delete("/:id", ctrl.DeleteStudent)
}
