package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "schoolku_backend/internals/helpers"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func probeApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/ping", handler, func(c *fiber.Ctx) error {
		role := helper.GetRoleFromToken(c)
		if role == "" {
			role = "anonymous"
		}
		return c.SendString(role)
	})
	return app
}

func request(t *testing.T, app *fiber.App, token string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	buf := make([]byte, 64)
	n, _ := resp.Body.Read(buf)
	return resp.StatusCode, string(buf[:n])
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"id":   uuid.NewString(),
		"role": "teacher",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
}

func TestAuthJWTRejectsMissingToken(t *testing.T) {
	app := probeApp(AuthJWT(AuthJWTOpts{Secret: testSecret}))
	status, _ := request(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAuthJWTAcceptsValidToken(t *testing.T) {
	app := probeApp(AuthJWT(AuthJWTOpts{Secret: testSecret}))
	status, body := request(t, app, signToken(t, validClaims(), testSecret))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "teacher", body)
}

func TestAuthJWTRejectsWrongSecret(t *testing.T) {
	app := probeApp(AuthJWT(AuthJWTOpts{Secret: testSecret}))
	status, _ := request(t, app, signToken(t, validClaims(), "other-secret"))
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAuthJWTRejectsExpiredToken(t *testing.T) {
	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	app := probeApp(AuthJWT(AuthJWTOpts{Secret: testSecret}))
	status, _ := request(t, app, signToken(t, claims, testSecret))
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAuthJWTRejectsBlacklistedToken(t *testing.T) {
	app := probeApp(AuthJWT(AuthJWTOpts{
		Secret:           testSecret,
		BlacklistChecker: func(string) (bool, error) { return true, nil },
	}))
	status, _ := request(t, app, signToken(t, validClaims(), testSecret))
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestOptionalAuthJWTPassesAnonymously(t *testing.T) {
	app := probeApp(OptionalAuthJWT(AuthJWTOpts{Secret: testSecret}))
	status, body := request(t, app, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "anonymous", body)
}

func TestOptionalAuthJWTTreatsInvalidTokenAsAnonymous(t *testing.T) {
	app := probeApp(OptionalAuthJWT(AuthJWTOpts{Secret: testSecret}))
	status, body := request(t, app, "not-a-token")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "anonymous", body)
}

func TestOptionalAuthJWTHydratesValidIdentity(t *testing.T) {
	app := probeApp(OptionalAuthJWT(AuthJWTOpts{Secret: testSecret}))
	status, body := request(t, app, signToken(t, validClaims(), testSecret))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "teacher", body)
}
