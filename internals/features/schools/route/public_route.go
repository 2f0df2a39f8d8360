package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolController "schoolku_backend/internals/features/schools/controller"
)

// SchoolPublicRoutes: tenant discovery used before login.
func SchoolPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := schoolController.NewSchoolController(db)

	r.Get("/schools/subdomain/:subdomain", ctrl.GetSchoolBySubdomain)
}
