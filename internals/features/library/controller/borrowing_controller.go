package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/library/dto"
	"schoolku_backend/internals/features/library/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

const defaultLoanDays = 14

type BorrowingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBorrowingController(db *gorm.DB) *BorrowingController {
	return &BorrowingController{DB: db, Validate: validator.New()}
}

func (ctrl *BorrowingController) repo(c *fiber.Ctx) tenancy.Scoped[model.BorrowingModel, *model.BorrowingModel] {
	return tenancy.Scope[model.BorrowingModel](c, ctrl.DB, "borrowing_school_id")
}

func (ctrl *BorrowingController) books(c *fiber.Ctx) tenancy.Scoped[model.BookModel, *model.BookModel] {
	return tenancy.Scope[model.BookModel](c, ctrl.DB, "book_school_id")
}

// claimBookCopy takes one available copy with a single guarded UPDATE, so
// two concurrent borrows can never oversell the last copy. Returns false
// when the stock is already exhausted.
func claimBookCopy(books tenancy.Scoped[model.BookModel, *model.BookModel], bookID uuid.UUID) (bool, error) {
	n, err := books.Updates(map[string]interface{}{
		"book_copies_available": gorm.Expr("book_copies_available - 1"),
	}, "book_id = ? AND book_copies_available > 0", bookID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// releaseBookCopy puts a copy back, capped at the total owned.
func releaseBookCopy(books tenancy.Scoped[model.BookModel, *model.BookModel], bookID uuid.UUID) error {
	_, err := books.Updates(map[string]interface{}{
		"book_copies_available": gorm.Expr("book_copies_available + 1"),
	}, "book_id = ? AND book_copies_available < book_copies_total", bookID)
	return err
}

// POST /api/a/library/borrowings — checks out a copy if one is available
func (ctrl *BorrowingController) BorrowBook(c *fiber.Ctx) error {
	var req dto.BorrowBookRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	books := ctrl.books(c)
	var book model.BookModel
	if err := books.First(&book, "book_id = ?", req.BorrowingBookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Book not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to borrow book")
	}

	ok, err := claimBookCopy(books, req.BorrowingBookID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to borrow book")
	}
	if !ok {
		return helper.Error(c, fiber.StatusConflict, "No copies available")
	}

	now := time.Now()
	dueAt := now.AddDate(0, 0, defaultLoanDays)
	if req.BorrowingDueAt != nil {
		dueAt = *req.BorrowingDueAt
	}

	m := &model.BorrowingModel{
		BorrowingBookID:     req.BorrowingBookID,
		BorrowingStudentID:  req.BorrowingStudentID,
		BorrowingBorrowedAt: now,
		BorrowingDueAt:      dueAt,
		BorrowingStatus:     "borrowed",
	}
	if err := ctrl.repo(c).Create(m); err != nil {
		// give the claimed copy back so stock stays honest
		if relErr := releaseBookCopy(books, req.BorrowingBookID); relErr != nil {
			log.Printf("[LIBRARY] ❌ failed to release copy of %s: %v", req.BorrowingBookID, relErr)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to borrow book")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Book borrowed", m)
}

// POST /api/a/library/borrowings/:id/return
func (ctrl *BorrowingController) ReturnBook(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid borrowing id")
	}

	repo := ctrl.repo(c)
	now := time.Now()
	// Single guarded transition: only the first concurrent return flips the
	// row, so the copy is put back exactly once.
	n, err := repo.Updates(map[string]interface{}{
		"borrowing_status":      "returned",
		"borrowing_returned_at": now,
	}, "borrowing_id = ? AND borrowing_status <> ?", id, "returned")
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to return book")
	}
	if n == 0 {
		var m model.BorrowingModel
		if err := repo.First(&m, "borrowing_id = ?", id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, fiber.StatusNotFound, "Borrowing not found")
			}
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to return book")
		}
		return helper.Error(c, fiber.StatusConflict, "Book is already returned")
	}

	var m model.BorrowingModel
	if err := repo.First(&m, "borrowing_id = ?", id); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to return book")
	}
	if err := releaseBookCopy(ctrl.books(c), m.BorrowingBookID); err != nil {
		log.Printf("[LIBRARY] ❌ failed to restore copy of %s: %v", m.BorrowingBookID, err)
	}
	return helper.Success(c, "Book returned", m)
}

// GET /api/a/library/borrowings
func (ctrl *BorrowingController) ListBorrowings(c *fiber.Ctx) error {
	var q dto.ListBorrowingQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}
	if err := ctrl.Validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	tx := ctrl.repo(c).Query()
	if q.BookID != nil {
		tx = tx.Where("borrowing_book_id = ?", *q.BookID)
	}
	if q.StudentID != nil {
		tx = tx.Where("borrowing_student_id = ?", *q.StudentID)
	}
	if q.Status != nil {
		tx = tx.Where("borrowing_status = ?", *q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list borrowings")
	}
	var items []model.BorrowingModel
	if err := tx.Order("borrowing_borrowed_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list borrowings")
	}
	return helper.SuccessList(c, "Borrowings fetched", items, helper.BuildPagination(total, paging, len(items)))
}
