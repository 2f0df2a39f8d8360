package tenancy

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantOwned is implemented by every model that carries a school column.
type TenantOwned interface {
	SetSchoolID(uuid.UUID)
}

// Scoped wraps a single-entity gorm accessor so that every read carries the
// school filter and every write is pinned to the resolved school. With
// schoolID == uuid.Nil (super-admin / unscoped mode) it is a transparent
// pass-through and the caller owns correctness.
//
// It only shapes queries: not-found and conflict detection stay with the
// calling service.
type Scoped[T any, PT interface {
	TenantOwned
	*T
}] struct {
	db       *gorm.DB
	column   string
	schoolID uuid.UUID
}

// NewScoped builds a wrapper for one entity. column is the entity's school
// FK column (e.g. "student_school_id").
func NewScoped[T any, PT interface {
	TenantOwned
	*T
}](db *gorm.DB, column string, schoolID uuid.UUID) Scoped[T, PT] {
	if column == "" {
		panic("tenancy: school column is required")
	}
	return Scoped[T, PT]{db: db, column: column, schoolID: schoolID}
}

// Scope builds a wrapper bound to the request's resolved school. Requests
// without a resolved context (super admin) get an unscoped pass-through.
func Scope[T any, PT interface {
	TenantOwned
	*T
}](c *fiber.Ctx, db *gorm.DB, column string) Scoped[T, PT] {
	id, _ := SchoolIDFromCtx(c)
	return NewScoped[T, PT](db.WithContext(c.UserContext()), column, id)
}

func (s Scoped[T, PT]) scope(tx *gorm.DB) *gorm.DB {
	if s.schoolID == uuid.Nil {
		return tx
	}
	return tx.Where(s.column+" = ?", s.schoolID)
}

// Query returns a pre-scoped builder for further composition.
func (s Scoped[T, PT]) Query() *gorm.DB {
	return s.scope(s.db.Model(new(T)))
}

// Find merges the caller's conditions with the school constraint (AND).
func (s Scoped[T, PT]) Find(dest *[]T, conds ...interface{}) error {
	return s.scope(s.db.Model(new(T))).Find(dest, conds...).Error
}

// First fetches one row inside the school scope. Returns
// gorm.ErrRecordNotFound untouched so services can map it to 404.
func (s Scoped[T, PT]) First(dest *T, conds ...interface{}) error {
	return s.scope(s.db.Model(new(T))).First(dest, conds...).Error
}

// Count counts rows inside the school scope.
func (s Scoped[T, PT]) Count(conds ...interface{}) (int64, error) {
	var n int64
	tx := s.scope(s.db.Model(new(T)))
	if len(conds) > 0 {
		tx = tx.Where(conds[0], conds[1:]...)
	}
	err := tx.Count(&n).Error
	return n, err
}

// Create pins the row to the resolved school, overriding whatever the
// caller put in the field.
func (s Scoped[T, PT]) Create(m PT) error {
	if s.schoolID != uuid.Nil {
		m.SetSchoolID(s.schoolID)
	}
	return s.db.Create(m).Error
}

// Save persists a fetched row. The school column is re-pinned so a mutated
// struct can never hop tenants on its way back to the table.
func (s Scoped[T, PT]) Save(m PT) error {
	if s.schoolID != uuid.Nil {
		m.SetSchoolID(s.schoolID)
	}
	return s.db.Save(m).Error
}

// Updates applies values to rows matching query AND the school constraint.
// A guessed row id from another tenant matches nothing.
func (s Scoped[T, PT]) Updates(values interface{}, query interface{}, args ...interface{}) (int64, error) {
	tx := s.scope(s.db.Model(new(T))).Where(query, args...).Updates(values)
	return tx.RowsAffected, tx.Error
}

// Delete removes rows matching query AND the school constraint.
func (s Scoped[T, PT]) Delete(query interface{}, args ...interface{}) (int64, error) {
	tx := s.scope(s.db.Where(query, args...)).Delete(new(T))
	return tx.RowsAffected, tx.Error
}

// Unscoped reports whether the wrapper runs in pass-through mode.
func (s Scoped[T, PT]) Unscoped() bool {
	return s.schoolID == uuid.Nil
}

// SchoolID returns the bound school id (uuid.Nil when unscoped).
func (s Scoped[T, PT]) SchoolID() uuid.UUID {
	return s.schoolID
}
