package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherController "schoolku_backend/internals/features/academics/teachers/controller"
)

func TeacherAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := teacherController.NewTeacherController(db)

	teachers := r.Group("/teachers")
	teachers.Post("/", ctrl.CreateTeacher)
	teachers.Get("/", ctrl.ListTeachers)
	teachers.Get("/:id", ctrl.GetTeacher)
	teachers.Put("/:id", ctrl.UpdateTeacher)
	teachers.Delete("/:id", ctrl.DeleteTeacher)
}
