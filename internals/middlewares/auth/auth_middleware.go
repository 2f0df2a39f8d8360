package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helper "schoolku_backend/internals/helpers"
)

type AuthJWTOpts struct {
	Secret              string
	BlacklistChecker    func(rawToken string) (bool, error) // return true if blacklisted
	AllowCookieFallback bool                                // use cookie access_token when no Bearer
}

// AuthJWT requires a valid token and hydrates the identity locals.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		raw := extractToken(c, o.AllowCookieFallback)
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		if o.BlacklistChecker != nil {
			if black, err := o.BlacklistChecker(raw); err == nil && black {
				return fiber.NewError(fiber.StatusUnauthorized, "Token revoked")
			}
		}
		claims, err := parseClaims(raw, secret)
		if err != nil {
			return err
		}
		hydrateLocals(c, claims)
		return c.Next()
	}
}

// OptionalAuthJWT hydrates the identity when a valid token is present and
// passes anonymously otherwise. Used on the global pipeline so the tenant
// resolver can consult the identity's school claim without forcing auth on
// public routes.
func OptionalAuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("OptionalAuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		raw := extractToken(c, o.AllowCookieFallback)
		if raw == "" {
			return c.Next()
		}
		if o.BlacklistChecker != nil {
			if black, err := o.BlacklistChecker(raw); err == nil && black {
				return c.Next()
			}
		}
		claims, err := parseClaims(raw, secret)
		if err != nil {
			// invalid token on an optional route → treat as anonymous
			return c.Next()
		}
		hydrateLocals(c, claims)
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx, allowCookie bool) string {
	if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		return strings.TrimSpace(authz[7:])
	}
	if allowCookie {
		return strings.TrimSpace(c.Cookies("access_token"))
	}
	return ""
}

func parseClaims(raw, secret string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}
	return claims, nil
}

func hydrateLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	c.Locals("jwt_claims", claims)

	switch {
	case strClaim(claims, "id") != "":
		c.Locals(helper.LocUserID, strClaim(claims, "id"))
	case strClaim(claims, "sub") != "":
		c.Locals(helper.LocUserID, strClaim(claims, "sub"))
	case strClaim(claims, "user_id") != "":
		c.Locals(helper.LocUserID, strClaim(claims, "user_id"))
	}
	if v := strClaim(claims, "role"); v != "" {
		c.Locals(helper.LocUserRole, v)
	}
	if v := strClaim(claims, "school_id"); v != "" {
		c.Locals(helper.LocUserSchoolID, v)
	}
}

// small util to read a string claim
func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
