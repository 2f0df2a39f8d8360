package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	libraryController "schoolku_backend/internals/features/library/controller"
	"schoolku_backend/internals/middlewares/tenant"
)

func LibraryAdminRoutes(r fiber.Router, db *gorm.DB) {
	bookCtrl := libraryController.NewBookController(db)
	borrowCtrl := libraryController.NewBorrowingController(db)

	library := r.Group("/library", tenant.RequireRoles(constants.LibraryRoles...))

	books := library.Group("/books")
	books.Post("/", bookCtrl.CreateBook)
	books.Get("/", bookCtrl.ListBooks)
	books.Get("/:id", bookCtrl.GetBook)
	books.Put("/:id", bookCtrl.UpdateBook)
	books.Delete("/:id", bookCtrl.DeleteBook)

	borrowings := library.Group("/borrowings")
	borrowings.Post("/", borrowCtrl.BorrowBook)
	borrowings.Post("/:id/return", borrowCtrl.ReturnBook)
	borrowings.Get("/", borrowCtrl.ListBorrowings)
}
