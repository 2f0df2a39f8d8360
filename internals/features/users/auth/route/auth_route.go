package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	authController "schoolku_backend/internals/features/users/auth/controller"
	"schoolku_backend/internals/middlewares"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// AuthRoutes: public register/login + authenticated logout.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	r.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	r.Post("/logout",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		ctrl.Logout,
	)
}
