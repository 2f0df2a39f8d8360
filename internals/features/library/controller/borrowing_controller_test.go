package controller

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"schoolku_backend/internals/features/library/model"
	"schoolku_backend/internals/tenancy"
)

func dryRunBooks(t *testing.T, schoolID uuid.UUID) (tenancy.Scoped[model.BookModel, *model.BookModel], func() *gorm.Statement) {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	var stmt *gorm.Statement
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("capture_update", func(tx *gorm.DB) {
		stmt = tx.Statement
	}))
	return tenancy.NewScoped[model.BookModel, *model.BookModel](db, "book_school_id", schoolID),
		func() *gorm.Statement { return stmt }
}

func TestClaimBookCopyGuardsAvailability(t *testing.T) {
	schoolID := uuid.New()
	bookID := uuid.New()
	books, lastStmt := dryRunBooks(t, schoolID)

	_, err := claimBookCopy(books, bookID)
	require.NoError(t, err)
	stmt := lastStmt()
	require.NotNil(t, stmt)

	// Decrement and availability check must travel in one statement, not a
	// read-then-write pair.
	sql := stmt.SQL.String()
	assert.Contains(t, sql, "book_copies_available - 1")
	assert.Contains(t, sql, "book_copies_available > 0")
	assert.Contains(t, sql, "book_school_id")
	assert.Contains(t, stmt.Vars, schoolID)
	assert.Contains(t, stmt.Vars, bookID)
}

func TestReleaseBookCopyCapsAtTotal(t *testing.T) {
	schoolID := uuid.New()
	bookID := uuid.New()
	books, lastStmt := dryRunBooks(t, schoolID)

	require.NoError(t, releaseBookCopy(books, bookID))
	stmt := lastStmt()
	require.NotNil(t, stmt)

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "book_copies_available + 1")
	assert.Contains(t, sql, "book_copies_available < book_copies_total")
	assert.Contains(t, sql, "book_school_id")
	assert.Contains(t, stmt.Vars, bookID)
}
