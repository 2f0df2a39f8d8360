// Package tenant resolves which school an inbound request belongs to and
// enforces that downstream handlers only ever see that school's data.
package tenant

import (
	"context"
	"log"
	"net"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

const logPrefix = "[SCHOOL_CTX]"

// SchoolLookup is the registry contract the resolver depends on. A lookup
// miss is reported as (nil, nil); errors are logged and treated as a miss so
// one broken strategy never takes the whole chain down.
type SchoolLookup interface {
	BySubdomain(ctx context.Context, subdomain string) (*tenancy.Snapshot, error)
	ByID(ctx context.Context, id uuid.UUID) (*tenancy.Snapshot, error)
	ByCode(ctx context.Context, code string) (*tenancy.Snapshot, error)
	MarkExpired(ctx context.Context, id uuid.UUID) error
}

type SchoolContextOpts struct {
	DB     *gorm.DB
	Lookup SchoolLookup // defaults to a gorm-backed lookup over DB
}

// SchoolContext resolves the active school with an ordered strategy chain,
// first match wins, lookup misses fall through silently:
//
//  1. subdomain (first Host label, skipping localhost/www/IPs)
//  2. X-School-Id header
//  3. X-School-Code header (only when the id header is absent)
//  4. authenticated identity's school claim
//  5. ?schoolId= query parameter (public endpoints fallback)
//
// A resolved school is subscription-checked and attached to the request.
// An unresolved context is NOT rejected here — that is the guard's job, so
// super-admin and public routes run the same pipeline.
func SchoolContext(o SchoolContextOpts) fiber.Handler {
	lookup := o.Lookup
	if lookup == nil {
		if o.DB == nil {
			panic("SchoolContext: DB or Lookup is required")
		}
		lookup = &gormLookup{db: o.DB}
	}

	return func(c *fiber.Ctx) error {
		t0 := time.Now()
		ctx := c.UserContext()

		var school *tenancy.Snapshot

		// 1) subdomain
		if sub := subdomainOf(c.Hostname()); sub != "" {
			school = attempt(c, "subdomain", sub, func() (*tenancy.Snapshot, error) {
				return lookup.BySubdomain(ctx, sub)
			})
		}

		// 2) X-School-Id / 3) X-School-Code
		if school == nil {
			byID := strings.TrimSpace(c.Get("X-School-Id"))
			byCode := strings.TrimSpace(c.Get("X-School-Code"))
			switch {
			case byID != "":
				if id, err := uuid.Parse(byID); err == nil {
					school = attempt(c, "header-id", byID, func() (*tenancy.Snapshot, error) {
						return lookup.ByID(ctx, id)
					})
				}
			case byCode != "":
				school = attempt(c, "header-code", byCode, func() (*tenancy.Snapshot, error) {
					return lookup.ByCode(ctx, byCode)
				})
			}
		}

		// 4) identity claim
		if school == nil {
			if claim := helper.GetSchoolIDFromToken(c); claim != uuid.Nil {
				school = attempt(c, "token", claim.String(), func() (*tenancy.Snapshot, error) {
					return lookup.ByID(ctx, claim)
				})
			}
		}

		// 5) ?schoolId= (last resort, public endpoints)
		if school == nil {
			if q := strings.TrimSpace(c.Query("schoolId")); q != "" {
				if id, err := uuid.Parse(q); err == nil {
					school = attempt(c, "query", q, func() (*tenancy.Snapshot, error) {
						return lookup.ByID(ctx, id)
					})
				}
			}
		}

		if school == nil {
			// no context; the enforcement guard decides whether that is fatal
			return c.Next()
		}

		valid, lapsed := tenancy.EvaluateSubscription(
			school.IsActive, school.SubscriptionStatus, school.SubscriptionExpiresAt, time.Now(),
		)
		if lapsed {
			// lazy expiry: correct the status on first observation; a race
			// between two requests converges on the same value
			if err := lookup.MarkExpired(ctx, school.ID); err != nil {
				log.Printf("%s mark expired school_id=%s err=%v", logPrefix, school.ID, err)
			}
		}
		if !valid {
			log.Printf("%s ❌ subscription invalid school_id=%s status=%s", logPrefix, school.ID, school.SubscriptionStatus)
			return fiber.NewError(fiber.StatusUnauthorized, "School subscription is expired or suspended")
		}

		tenancy.SetContext(c, school)
		log.Printf("%s ✅ school_id=%s code=%s dur=%s", logPrefix, school.ID, school.Code, time.Since(t0))
		return c.Next()
	}
}

func attempt(c *fiber.Ctx, strategy, candidate string, fn func() (*tenancy.Snapshot, error)) *tenancy.Snapshot {
	s, err := fn()
	if err != nil {
		log.Printf("%s strategy=%s candidate=%q lookup err: %v", logPrefix, strategy, candidate, err)
		return nil
	}
	return s
}

// subdomainOf extracts the tenant label from the Host header, "" when the
// host is localhost, www, or a bare IP.
func subdomainOf(host string) string {
	h := strings.ToLower(strings.TrimSpace(host))
	if h == "" {
		return ""
	}
	if hp, _, err := net.SplitHostPort(h); err == nil {
		h = hp
	}
	if h == "localhost" || h == "localhost.localdomain" || net.ParseIP(h) != nil {
		return ""
	}
	label := strings.Split(h, ".")[0]
	if label == "" || label == "www" || label == "localhost" {
		return ""
	}
	return label
}
