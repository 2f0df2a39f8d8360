package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	userController "schoolku_backend/internals/features/users/user/controller"
	"schoolku_backend/internals/middlewares/tenant"
)

// UserAdminRoutes: tenant-scoped account management.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := r.Group("/users", tenant.RequireRoles(constants.ManagementRoles...))
	users.Get("/", ctrl.ListUsers)
	users.Get("/:id", ctrl.GetUser)
	users.Put("/:id", ctrl.UpdateUser)
	users.Delete("/:id", ctrl.DeactivateUser)
}
