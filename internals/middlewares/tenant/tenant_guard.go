package tenant

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

// RequireSchoolContext enforces that a tenant context was resolved before
// the handler runs. Routes that must not be tenant-gated (super-admin
// surface, genuinely public endpoints) simply do not attach the guard.
//
// Rules:
//   - super_admin always passes, scoped or not (cross-tenant by design)
//   - no resolved context → 403
//   - identity's own school claim disagreeing with the resolved context →
//     403 (catches forged or stale header/query overrides)
func RequireSchoolContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helper.GetRoleFromToken(c) == constants.RoleSuperAdmin {
			return c.Next()
		}

		schoolID, ok := tenancy.SchoolIDFromCtx(c)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden,
				"School context is required. Please provide a valid school identifier.")
		}

		if claim := helper.GetSchoolIDFromToken(c); claim != uuid.Nil && claim != schoolID {
			return fiber.NewError(fiber.StatusForbidden,
				"Cross-tenant access denied: you do not have access to this school's data.")
		}

		return c.Next()
	}
}

// RequireRoles gates a group to the given roles (super_admin always passes).
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromToken(c)
		if role == constants.RoleSuperAdmin {
			return c.Next()
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "You do not have permission to access this resource")
	}
}
