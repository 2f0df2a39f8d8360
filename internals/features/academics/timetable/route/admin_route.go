package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	timetableController "schoolku_backend/internals/features/academics/timetable/controller"
)

func TimetableAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := timetableController.NewTimetableController(db)

	timetable := r.Group("/timetable")
	timetable.Post("/", ctrl.CreateEntry)
	timetable.Get("/class/:classId", ctrl.ListByClass)
	timetable.Get("/teacher/:teacherId", ctrl.ListByTeacher)
	timetable.Delete("/:id", ctrl.DeleteEntry)
}
