package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	resourceController "schoolku_backend/internals/features/resources/controller"
	"schoolku_backend/internals/middlewares/tenant"
)

func ResourceRequestAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := resourceController.NewResourceRequestController(db)

	requests := r.Group("/resources/requests")
	requests.Post("/", ctrl.CreateRequest)
	requests.Get("/", ctrl.ListRequests)
	requests.Get("/mine", ctrl.ListMyRequests)
	requests.Put("/:id/status", tenant.RequireRoles(constants.ManagementRoles...), ctrl.UpdateRequestStatus)
}
