package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	materialController "schoolku_backend/internals/features/academics/materials/controller"
)

func MaterialAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := materialController.NewMaterialController(db)

	materials := r.Group("/materials")
	materials.Post("/", ctrl.CreateMaterial)
	materials.Get("/", ctrl.ListMaterials)
	materials.Get("/mine", ctrl.ListMyMaterials)
	materials.Delete("/:id", ctrl.DeleteMaterial)
}
