package tenant

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/tenancy"
)

// gormLookup resolves schools straight off the registry table. Raw selects
// keep it decoupled from the schools feature package.
type gormLookup struct {
	db *gorm.DB
}

type schoolRow struct {
	ID        uuid.UUID  `gorm:"column:school_id"`
	Code      string     `gorm:"column:school_code"`
	Subdomain *string    `gorm:"column:school_subdomain"`
	IsActive  bool       `gorm:"column:school_is_active"`
	Status    string     `gorm:"column:school_subscription_status"`
	ExpiresAt *time.Time `gorm:"column:school_subscription_expires_at"`
}

const schoolColumns = `school_id, school_code, school_subdomain, school_is_active,
	school_subscription_status, school_subscription_expires_at`

func (g *gormLookup) BySubdomain(ctx context.Context, subdomain string) (*tenancy.Snapshot, error) {
	var row schoolRow
	err := g.db.WithContext(ctx).Raw(`
		SELECT `+schoolColumns+`
		FROM schools
		WHERE LOWER(school_subdomain) = LOWER(?)
		LIMIT 1
	`, subdomain).Scan(&row).Error
	return row.snapshot(), err
}

func (g *gormLookup) ByID(ctx context.Context, id uuid.UUID) (*tenancy.Snapshot, error) {
	var row schoolRow
	err := g.db.WithContext(ctx).Raw(`
		SELECT `+schoolColumns+`
		FROM schools
		WHERE school_id = ?
		LIMIT 1
	`, id).Scan(&row).Error
	return row.snapshot(), err
}

func (g *gormLookup) ByCode(ctx context.Context, code string) (*tenancy.Snapshot, error) {
	var row schoolRow
	err := g.db.WithContext(ctx).Raw(`
		SELECT `+schoolColumns+`
		FROM schools
		WHERE school_code = ?
		LIMIT 1
	`, code).Scan(&row).Error
	return row.snapshot(), err
}

func (g *gormLookup) MarkExpired(ctx context.Context, id uuid.UUID) error {
	return g.db.WithContext(ctx).Exec(`
		UPDATE schools
		SET school_subscription_status = ?, school_updated_at = NOW()
		WHERE school_id = ?
	`, tenancy.SubscriptionExpired, id).Error
}

func (r schoolRow) snapshot() *tenancy.Snapshot {
	if r.ID == uuid.Nil {
		return nil
	}
	return &tenancy.Snapshot{
		ID:                    r.ID,
		Code:                  r.Code,
		Subdomain:             r.Subdomain,
		IsActive:              r.IsActive,
		SubscriptionStatus:    r.Status,
		SubscriptionExpiresAt: r.ExpiresAt,
	}
}
