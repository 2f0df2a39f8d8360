package model

import (
	"time"

	"github.com/google/uuid"
)

type BookModel struct {
	BookID       uuid.UUID `gorm:"column:book_id;type:uuid;default:gen_random_uuid();primaryKey" json:"book_id"`
	BookSchoolID uuid.UUID `gorm:"column:book_school_id;type:uuid;not null;index" json:"book_school_id"`

	BookISBN     *string `gorm:"column:book_isbn;type:varchar(20)" json:"book_isbn,omitempty"`
	BookTitle    string  `gorm:"column:book_title;type:varchar(200);not null" json:"book_title"`
	BookAuthor   *string `gorm:"column:book_author;type:varchar(120)" json:"book_author,omitempty"`
	BookCategory *string `gorm:"column:book_category;type:varchar(60)" json:"book_category,omitempty"`

	BookCopiesTotal     int `gorm:"column:book_copies_total;default:1" json:"book_copies_total"`
	BookCopiesAvailable int `gorm:"column:book_copies_available;default:1" json:"book_copies_available"`

	BookCreatedAt time.Time `gorm:"column:book_created_at;autoCreateTime" json:"book_created_at"`
	BookUpdatedAt time.Time `gorm:"column:book_updated_at;autoUpdateTime" json:"book_updated_at"`
}

func (BookModel) TableName() string { return "library_books" }

func (m *BookModel) SetSchoolID(id uuid.UUID) { m.BookSchoolID = id }
