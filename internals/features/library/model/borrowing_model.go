package model

import (
	"time"

	"github.com/google/uuid"
)

type BorrowingModel struct {
	BorrowingID       uuid.UUID `gorm:"column:borrowing_id;type:uuid;default:gen_random_uuid();primaryKey" json:"borrowing_id"`
	BorrowingSchoolID uuid.UUID `gorm:"column:borrowing_school_id;type:uuid;not null;index" json:"borrowing_school_id"`

	BorrowingBookID    uuid.UUID `gorm:"column:borrowing_book_id;type:uuid;not null;index" json:"borrowing_book_id"`
	BorrowingStudentID uuid.UUID `gorm:"column:borrowing_student_id;type:uuid;not null;index" json:"borrowing_student_id"`

	BorrowingBorrowedAt time.Time  `gorm:"column:borrowing_borrowed_at;not null" json:"borrowing_borrowed_at"`
	BorrowingDueAt      time.Time  `gorm:"column:borrowing_due_at;not null" json:"borrowing_due_at"`
	BorrowingReturnedAt *time.Time `gorm:"column:borrowing_returned_at" json:"borrowing_returned_at,omitempty"`

	// borrowed | returned | overdue | lost
	BorrowingStatus string `gorm:"column:borrowing_status;type:varchar(20);default:'borrowed'" json:"borrowing_status"`

	BorrowingCreatedAt time.Time `gorm:"column:borrowing_created_at;autoCreateTime" json:"borrowing_created_at"`
	BorrowingUpdatedAt time.Time `gorm:"column:borrowing_updated_at;autoUpdateTime" json:"borrowing_updated_at"`
}

func (BorrowingModel) TableName() string { return "library_borrowings" }

func (m *BorrowingModel) SetSchoolID(id uuid.UUID) { m.BorrowingSchoolID = id }
