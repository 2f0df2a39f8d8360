package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the auth middleware.
const (
	LocUserID       = "user_id"
	LocUserRole     = "user_role"
	LocUserSchoolID = "user_school_id"
)

// GetUserIDFromToken reads the authenticated user id hydrated into locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocUserID).(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user id in token")
	}
	return id, nil
}

// GetRoleFromToken returns the role claim, "" when unauthenticated.
func GetRoleFromToken(c *fiber.Ctx) string {
	role, _ := c.Locals(LocUserRole).(string)
	return role
}

// GetSchoolIDFromToken returns the identity's school claim, uuid.Nil when
// absent (super admins and pre-registration users carry none).
func GetSchoolIDFromToken(c *fiber.Ctx) uuid.UUID {
	raw, _ := c.Locals(LocUserSchoolID).(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}
