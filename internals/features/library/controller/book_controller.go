package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/library/dto"
	"schoolku_backend/internals/features/library/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

type BookController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBookController(db *gorm.DB) *BookController {
	return &BookController{DB: db, Validate: validator.New()}
}

func (ctrl *BookController) repo(c *fiber.Ctx) tenancy.Scoped[model.BookModel, *model.BookModel] {
	return tenancy.Scope[model.BookModel](c, ctrl.DB, "book_school_id")
}

// POST /api/a/library/books
func (ctrl *BookController) CreateBook(c *fiber.Ctx) error {
	var req dto.CreateBookRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.repo(c).Create(m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create book")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Book created", m)
}

// GET /api/a/library/books
func (ctrl *BookController) ListBooks(c *fiber.Ctx) error {
	var q dto.ListBookQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}

	paging := helper.ResolvePaging(c, 20, 100)
	tx := ctrl.repo(c).Query()
	if q.Category != nil {
		tx = tx.Where("book_category = ?", *q.Category)
	}
	if q.Search != nil && strings.TrimSpace(*q.Search) != "" {
		like := "%" + strings.TrimSpace(*q.Search) + "%"
		tx = tx.Where("book_title ILIKE ? OR book_author ILIKE ? OR book_isbn ILIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list books")
	}
	var items []model.BookModel
	if err := tx.Order("book_title ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list books")
	}
	return helper.SuccessList(c, "Books fetched", items, helper.BuildPagination(total, paging, len(items)))
}

// GET /api/a/library/books/:id
func (ctrl *BookController) GetBook(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid book id")
	}
	var m model.BookModel
	if err := ctrl.repo(c).First(&m, "book_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Book not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch book")
	}
	return helper.Success(c, "Book fetched", m)
}

// PUT /api/a/library/books/:id
func (ctrl *BookController) UpdateBook(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid book id")
	}
	var req dto.UpdateBookRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	repo := ctrl.repo(c)
	var m model.BookModel
	if err := repo.First(&m, "book_id = ?", id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Book not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch book")
	}

	if req.BookISBN != nil {
		m.BookISBN = req.BookISBN
	}
	if req.BookTitle != nil {
		m.BookTitle = *req.BookTitle
	}
	if req.BookAuthor != nil {
		m.BookAuthor = req.BookAuthor
	}
	if req.BookCategory != nil {
		m.BookCategory = req.BookCategory
	}
	if req.BookCopies != nil {
		// Adjust availability by the same delta so open loans stay accounted.
		delta := *req.BookCopies - m.BookCopiesTotal
		m.BookCopiesTotal = *req.BookCopies
		m.BookCopiesAvailable += delta
		if m.BookCopiesAvailable < 0 {
			m.BookCopiesAvailable = 0
		}
	}
	if err := repo.Save(&m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update book")
	}
	return helper.Success(c, "Book updated", m)
}

// DELETE /api/a/library/books/:id
func (ctrl *BookController) DeleteBook(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid book id")
	}

	open, err := tenancy.Scope[model.BorrowingModel](c, ctrl.DB, "borrowing_school_id").
		Count("borrowing_book_id = ? AND borrowing_status = ?", id, "borrowed")
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete book")
	}
	if open > 0 {
		return helper.Error(c, fiber.StatusConflict, "Book still has open borrowings")
	}

	n, err := ctrl.repo(c).Delete("book_id = ?", id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete book")
	}
	if n == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Book not found")
	}
	return helper.Success(c, "Book deleted", nil)
}
