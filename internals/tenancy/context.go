// Package tenancy carries the per-request school context and the scoped
// data-access wrapper that keeps every query inside the resolved tenant.
package tenancy

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys set by the school-context middleware.
const (
	LocSchoolID = "school_id"
	LocSchool   = "school"
)

// Snapshot is the resolved tenant record attached to a request. It lives for
// exactly one request: created by the resolver, never cached or shared.
type Snapshot struct {
	ID                    uuid.UUID
	Code                  string
	Subdomain             *string
	IsActive              bool
	SubscriptionStatus    string
	SubscriptionExpiresAt *time.Time
}

// SetContext attaches the resolved school to the request.
func SetContext(c *fiber.Ctx, s *Snapshot) {
	c.Locals(LocSchoolID, s.ID)
	c.Locals(LocSchool, s)
}

// SchoolIDFromCtx returns the resolved school id, false when no tenant
// context was resolved (super-admin / public requests).
func SchoolIDFromCtx(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(LocSchoolID).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// SchoolFromCtx returns the resolved school snapshot, nil when absent.
func SchoolFromCtx(c *fiber.Ctx) *Snapshot {
	s, _ := c.Locals(LocSchool).(*Snapshot)
	return s
}
