package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/library/model"
)

/* ========== BOOKS ========== */

type CreateBookRequest struct {
	BookISBN     *string `json:"book_isbn"     validate:"omitempty,max=20"`
	BookTitle    string  `json:"book_title"    validate:"required,min=1,max=200"`
	BookAuthor   *string `json:"book_author"   validate:"omitempty,max=120"`
	BookCategory *string `json:"book_category" validate:"omitempty,max=60"`
	BookCopies   int     `json:"book_copies"   validate:"omitempty,min=1"`
}

type UpdateBookRequest struct {
	BookISBN     *string `json:"book_isbn"     validate:"omitempty,max=20"`
	BookTitle    *string `json:"book_title"    validate:"omitempty,min=1,max=200"`
	BookAuthor   *string `json:"book_author"   validate:"omitempty,max=120"`
	BookCategory *string `json:"book_category" validate:"omitempty,max=60"`
	BookCopies   *int    `json:"book_copies"   validate:"omitempty,min=1"`
}

type ListBookQuery struct {
	Category *string `query:"category"`
	Search   *string `query:"search"`
}

func (r *CreateBookRequest) ToModel() *model.BookModel {
	copies := r.BookCopies
	if copies == 0 {
		copies = 1
	}
	return &model.BookModel{
		BookISBN:            r.BookISBN,
		BookTitle:           r.BookTitle,
		BookAuthor:          r.BookAuthor,
		BookCategory:        r.BookCategory,
		BookCopiesTotal:     copies,
		BookCopiesAvailable: copies,
	}
}

/* ========== BORROWINGS ========== */

type BorrowBookRequest struct {
	BorrowingBookID    uuid.UUID  `json:"borrowing_book_id"    validate:"required"`
	BorrowingStudentID uuid.UUID  `json:"borrowing_student_id" validate:"required"`
	BorrowingDueAt     *time.Time `json:"borrowing_due_at"`
}

type ListBorrowingQuery struct {
	BookID    *uuid.UUID `query:"bookId"`
	StudentID *uuid.UUID `query:"studentId"`
	Status    *string    `query:"status" validate:"omitempty,oneof=borrowed returned overdue lost"`
}
