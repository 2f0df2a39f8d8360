package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingController "schoolku_backend/internals/features/platform/controller"
)

func SettingSuperAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := settingController.NewSystemSettingController(db)

	settings := r.Group("/settings")
	settings.Get("/", ctrl.ListSettings)
	settings.Put("/:key", ctrl.UpsertSetting)
}

func SettingPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := settingController.NewSystemSettingController(db)

	r.Get("/settings", ctrl.ListPublicSettings)
}
