package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "schoolku_backend/internals/features/academics/classes/controller"
)

func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classController.NewClassController(db)

	classes := r.Group("/classes")
	classes.Post("/", ctrl.CreateClass)
	classes.Get("/", ctrl.ListClasses)
	classes.Get("/:id", ctrl.GetClass)
	classes.Put("/:id", ctrl.UpdateClass)
	classes.Delete("/:id", ctrl.DeleteClass)
}
