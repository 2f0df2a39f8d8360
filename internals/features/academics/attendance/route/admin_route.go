package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "schoolku_backend/internals/features/academics/attendance/controller"
)

func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	attendance := r.Group("/attendance")
	attendance.Post("/", ctrl.RecordAttendance)
	attendance.Post("/bulk", ctrl.BulkRecordAttendance)
	attendance.Get("/", ctrl.ListAttendance)
	attendance.Delete("/:id", ctrl.DeleteAttendance)
}
