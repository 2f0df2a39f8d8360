package tenant

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"schoolku_backend/internals/constants"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

type guardSetup struct {
	role        string
	claimSchool string
	resolved    *tenancy.Snapshot
}

func guardApp(s guardSetup) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if s.role != "" {
			c.Locals(helper.LocUserRole, s.role)
		}
		if s.claimSchool != "" {
			c.Locals(helper.LocUserSchoolID, s.claimSchool)
		}
		if s.resolved != nil {
			tenancy.SetContext(c, s.resolved)
		}
		return c.Next()
	})
	app.Get("/ping", RequireSchoolContext(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func guardStatus(t *testing.T, app *fiber.App) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestGuardSuperAdminBypassesEverything(t *testing.T) {
	// No resolved context at all — still passes.
	app := guardApp(guardSetup{role: constants.RoleSuperAdmin})
	assert.Equal(t, http.StatusOK, guardStatus(t, app))
}

func TestGuardRejectsMissingContext(t *testing.T) {
	app := guardApp(guardSetup{role: constants.RoleTeacher})
	assert.Equal(t, http.StatusForbidden, guardStatus(t, app))
}

func TestGuardRejectsCrossTenantClaim(t *testing.T) {
	resolved := &tenancy.Snapshot{ID: uuid.New(), Code: "AAA1111", IsActive: true}
	app := guardApp(guardSetup{
		role:        constants.RoleTeacher,
		claimSchool: uuid.NewString(), // belongs to a different school
		resolved:    resolved,
	})
	assert.Equal(t, http.StatusForbidden, guardStatus(t, app))
}

func TestGuardPassesMatchingClaim(t *testing.T) {
	resolved := &tenancy.Snapshot{ID: uuid.New(), Code: "AAA1111", IsActive: true}
	app := guardApp(guardSetup{
		role:        constants.RoleTeacher,
		claimSchool: resolved.ID.String(),
		resolved:    resolved,
	})
	assert.Equal(t, http.StatusOK, guardStatus(t, app))
}

func TestGuardPassesClaimlessIdentityWithContext(t *testing.T) {
	// e.g. a fresh account not yet bound to a school, scoped by subdomain.
	resolved := &tenancy.Snapshot{ID: uuid.New(), Code: "AAA1111", IsActive: true}
	app := guardApp(guardSetup{role: constants.RoleStudent, resolved: resolved})
	assert.Equal(t, http.StatusOK, guardStatus(t, app))
}

func TestRequireRoles(t *testing.T) {
	build := func(role string) *fiber.App {
		app := fiber.New()
		app.Use(func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals(helper.LocUserRole, role)
			}
			return c.Next()
		})
		app.Get("/ping", RequireRoles(constants.RoleLibrarian, constants.RoleAdmin), func(c *fiber.Ctx) error {
			return c.SendString("ok")
		})
		return app
	}

	assert.Equal(t, http.StatusOK, guardStatus(t, build(constants.RoleLibrarian)))
	assert.Equal(t, http.StatusOK, guardStatus(t, build(constants.RoleAdmin)))
	assert.Equal(t, http.StatusOK, guardStatus(t, build(constants.RoleSuperAdmin)))
	assert.Equal(t, http.StatusForbidden, guardStatus(t, build(constants.RoleTeacher)))
	assert.Equal(t, http.StatusForbidden, guardStatus(t, build("")))
}
