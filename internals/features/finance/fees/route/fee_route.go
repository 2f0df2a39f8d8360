package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	feeController "schoolku_backend/internals/features/finance/fees/controller"
	"schoolku_backend/internals/middlewares/tenant"
)

func FeeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := feeController.NewFeeController(db)

	fees := r.Group("/fees", tenant.RequireRoles(constants.FinanceRoles...))
	fees.Post("/", ctrl.CreateFee)
	fees.Get("/", ctrl.ListFees)
	fees.Get("/:id", ctrl.GetFee)
	fees.Put("/:id", ctrl.UpdateFee)
	fees.Delete("/:id", ctrl.DeleteFee)
}

func FeeUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := feeController.NewFeeController(db)

	r.Post("/fees/:id/pay", ctrl.PayFee)
}
