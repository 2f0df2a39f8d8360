package tenancy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

type widget struct {
	WidgetID       uuid.UUID `gorm:"column:widget_id;primaryKey"`
	WidgetSchoolID uuid.UUID `gorm:"column:widget_school_id"`
	WidgetName     string    `gorm:"column:widget_name"`
}

func (widget) TableName() string { return "widgets" }

func (w *widget) SetSchoolID(id uuid.UUID) { w.WidgetSchoolID = id }

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func TestScopedQueryAddsSchoolFilter(t *testing.T) {
	db := dryRunDB(t)
	schoolID := uuid.New()
	rowID := uuid.New()

	s := NewScoped[widget, *widget](db, "widget_school_id", schoolID)

	var out []widget
	tx := s.Query().Find(&out, "widget_id = ?", rowID)
	require.NoError(t, tx.Error)

	sql := tx.Statement.SQL.String()
	assert.Contains(t, sql, "widget_school_id", "school filter must be merged into the query")
	assert.Contains(t, sql, "widget_id", "caller criteria must survive")
	assert.Contains(t, tx.Statement.Vars, schoolID)
	assert.Contains(t, tx.Statement.Vars, rowID)
}

func TestScopedQueryPassThroughWhenUnscoped(t *testing.T) {
	db := dryRunDB(t)

	s := NewScoped[widget, *widget](db, "widget_school_id", uuid.Nil)
	assert.True(t, s.Unscoped())

	var out []widget
	tx := s.Query().Find(&out)
	require.NoError(t, tx.Error)
	assert.NotContains(t, tx.Statement.SQL.String(), "widget_school_id")
}

func TestScopedCreatePinsSchoolID(t *testing.T) {
	db := dryRunDB(t)
	schoolID := uuid.New()

	s := NewScoped[widget, *widget](db, "widget_school_id", schoolID)

	// Caller-supplied school id must be overridden, not trusted.
	m := &widget{WidgetName: "chalk", WidgetSchoolID: uuid.New()}
	require.NoError(t, s.Create(m))
	assert.Equal(t, schoolID, m.WidgetSchoolID)
}

func TestScopedSaveRepinsSchoolID(t *testing.T) {
	db := dryRunDB(t)
	schoolID := uuid.New()

	s := NewScoped[widget, *widget](db, "widget_school_id", schoolID)

	m := &widget{WidgetID: uuid.New(), WidgetName: "eraser"}
	m.WidgetSchoolID = uuid.New() // simulate a tampered struct
	require.NoError(t, s.Save(m))
	assert.Equal(t, schoolID, m.WidgetSchoolID)
}

func TestScopedCreateLeavesFieldAloneWhenUnscoped(t *testing.T) {
	db := dryRunDB(t)
	other := uuid.New()

	s := NewScoped[widget, *widget](db, "widget_school_id", uuid.Nil)

	m := &widget{WidgetName: "globe", WidgetSchoolID: other}
	require.NoError(t, s.Create(m))
	assert.Equal(t, other, m.WidgetSchoolID)
}

func TestScopedUpdatesAddsSchoolFilter(t *testing.T) {
	db := dryRunDB(t)
	schoolID := uuid.New()
	rowID := uuid.New()

	var stmt *gorm.Statement
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("capture_update", func(tx *gorm.DB) {
		stmt = tx.Statement
	}))

	s := NewScoped[widget, *widget](db, "widget_school_id", schoolID)
	_, err := s.Updates(map[string]interface{}{"widget_name": "ruler"}, "widget_id = ?", rowID)
	require.NoError(t, err)
	require.NotNil(t, stmt)

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "widget_school_id", "school filter must be merged into the update")
	assert.Contains(t, sql, "widget_id", "caller criteria must survive")
	assert.Contains(t, stmt.Vars, schoolID)
	assert.Contains(t, stmt.Vars, rowID)
}

func TestScopedDeleteAddsSchoolFilter(t *testing.T) {
	db := dryRunDB(t)
	schoolID := uuid.New()
	rowID := uuid.New()

	var stmt *gorm.Statement
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("capture_delete", func(tx *gorm.DB) {
		stmt = tx.Statement
	}))

	s := NewScoped[widget, *widget](db, "widget_school_id", schoolID)
	// A guessed row id from another tenant must match nothing.
	_, err := s.Delete("widget_id = ?", rowID)
	require.NoError(t, err)
	require.NotNil(t, stmt)

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "widget_school_id", "school filter must be merged into the delete")
	assert.Contains(t, sql, "widget_id", "caller criteria must survive")
	assert.Contains(t, stmt.Vars, schoolID)
	assert.Contains(t, stmt.Vars, rowID)
}

func TestNewScopedPanicsWithoutColumn(t *testing.T) {
	db := dryRunDB(t)
	assert.Panics(t, func() {
		NewScoped[widget, *widget](db, "", uuid.New())
	})
}
