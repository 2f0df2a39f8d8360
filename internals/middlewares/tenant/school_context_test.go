package tenant

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/tenancy"
)

type fakeLookup struct {
	bySubdomain map[string]*tenancy.Snapshot
	byID        map[uuid.UUID]*tenancy.Snapshot
	byCode      map[string]*tenancy.Snapshot
	expired     []uuid.UUID
}

func (f *fakeLookup) BySubdomain(_ context.Context, subdomain string) (*tenancy.Snapshot, error) {
	return f.bySubdomain[subdomain], nil
}

func (f *fakeLookup) ByID(_ context.Context, id uuid.UUID) (*tenancy.Snapshot, error) {
	return f.byID[id], nil
}

func (f *fakeLookup) ByCode(_ context.Context, code string) (*tenancy.Snapshot, error) {
	return f.byCode[code], nil
}

func (f *fakeLookup) MarkExpired(_ context.Context, id uuid.UUID) error {
	f.expired = append(f.expired, id)
	return nil
}

func activeSchool(code string) *tenancy.Snapshot {
	future := time.Now().Add(24 * time.Hour)
	return &tenancy.Snapshot{
		ID:                    uuid.New(),
		Code:                  code,
		IsActive:              true,
		SubscriptionStatus:    tenancy.SubscriptionActive,
		SubscriptionExpiresAt: &future,
	}
}

// newApp builds a minimal pipeline: optional claim injection, the resolver,
// and a probe handler echoing the resolved school id.
func newApp(lookup SchoolLookup, claimSchoolID string) *fiber.App {
	app := fiber.New()
	if claimSchoolID != "" {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals(helper.LocUserSchoolID, claimSchoolID)
			return c.Next()
		})
	}
	app.Use(SchoolContext(SchoolContextOpts{Lookup: lookup}))
	app.Get("/ping", func(c *fiber.Ctx) error {
		if id, ok := tenancy.SchoolIDFromCtx(c); ok {
			return c.SendString(id.String())
		}
		return c.SendString("none")
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestSubdomainWinsOverHeaders(t *testing.T) {
	greenwood := activeSchool("GRE1234")
	other := activeSchool("OTH5678")
	lookup := &fakeLookup{
		bySubdomain: map[string]*tenancy.Snapshot{"greenwood": greenwood},
		byID:        map[uuid.UUID]*tenancy.Snapshot{other.ID: other},
	}
	app := newApp(lookup, "")

	req := httptest.NewRequest(http.MethodGet, "http://greenwood.schoolku.io/ping", nil)
	req.Header.Set("X-School-Id", other.ID.String())

	status, body := doRequest(t, app, req)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, greenwood.ID.String(), body)
}

func TestUnresolvableCandidatesFallThrough(t *testing.T) {
	known := activeSchool("KNO1111")
	lookup := &fakeLookup{
		bySubdomain: map[string]*tenancy.Snapshot{},
		byID:        map[uuid.UUID]*tenancy.Snapshot{known.ID: known},
	}
	app := newApp(lookup, "")

	// Unknown subdomain and unknown header id both miss; the query param is
	// the last strategy and it resolves.
	req := httptest.NewRequest(http.MethodGet,
		"http://nosuch.schoolku.io/ping?schoolId="+known.ID.String(), nil)
	req.Header.Set("X-School-Id", uuid.NewString())

	status, body := doRequest(t, app, req)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, known.ID.String(), body)
}

func TestNoCandidatesLeavesContextEmpty(t *testing.T) {
	app := newApp(&fakeLookup{}, "")

	req := httptest.NewRequest(http.MethodGet, "http://localhost/ping", nil)
	status, body := doRequest(t, app, req)

	// The resolver never rejects; enforcement is the guard's job.
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "none", body)
}

func TestSchoolCodeHeaderOnLocalhost(t *testing.T) {
	school := activeSchool("GRE1234")
	lookup := &fakeLookup{byCode: map[string]*tenancy.Snapshot{"GRE1234": school}}
	app := newApp(lookup, "")

	req := httptest.NewRequest(http.MethodGet, "http://localhost:3000/ping", nil)
	req.Header.Set("X-School-Code", "GRE1234")

	status, body := doRequest(t, app, req)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, school.ID.String(), body)
}

func TestSchoolCodeIgnoredWhenIDHeaderPresent(t *testing.T) {
	school := activeSchool("GRE1234")
	lookup := &fakeLookup{byCode: map[string]*tenancy.Snapshot{"GRE1234": school}}
	app := newApp(lookup, "")

	req := httptest.NewRequest(http.MethodGet, "http://localhost/ping", nil)
	req.Header.Set("X-School-Id", uuid.NewString())
	req.Header.Set("X-School-Code", "GRE1234")

	status, body := doRequest(t, app, req)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "none", body)
}

func TestTokenClaimResolvesWhenHeadersAbsent(t *testing.T) {
	school := activeSchool("TOK9999")
	lookup := &fakeLookup{byID: map[uuid.UUID]*tenancy.Snapshot{school.ID: school}}
	app := newApp(lookup, school.ID.String())

	req := httptest.NewRequest(http.MethodGet, "http://localhost/ping", nil)
	status, body := doRequest(t, app, req)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, school.ID.String(), body)
}

func TestSuspendedSchoolRejectedBeforeHandler(t *testing.T) {
	school := activeSchool("SUS0001")
	school.SubscriptionStatus = tenancy.SubscriptionSuspended
	lookup := &fakeLookup{bySubdomain: map[string]*tenancy.Snapshot{"sus": school}}
	app := newApp(lookup, "")

	req := httptest.NewRequest(http.MethodGet, "http://sus.schoolku.io/ping", nil)
	status, _ := doRequest(t, app, req)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Empty(t, lookup.expired, "suspension is not a lapse")
}

func TestLapsedSubscriptionPersistsExpiredStatus(t *testing.T) {
	school := activeSchool("EXP0001")
	past := time.Now().Add(-time.Hour)
	school.SubscriptionExpiresAt = &past
	lookup := &fakeLookup{bySubdomain: map[string]*tenancy.Snapshot{"exp": school}}
	app := newApp(lookup, "")

	req := httptest.NewRequest(http.MethodGet, "http://exp.schoolku.io/ping", nil)
	status, _ := doRequest(t, app, req)

	assert.Equal(t, http.StatusUnauthorized, status)
	require.Len(t, lookup.expired, 1, "lazy expiry must be written back")
	assert.Equal(t, school.ID, lookup.expired[0])
}

func TestSubdomainOf(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"greenwood.schoolku.io", "greenwood"},
		{"greenwood.schoolku.io:3000", "greenwood"},
		{"www.schoolku.io", ""},
		{"localhost", ""},
		{"localhost:3000", ""},
		{"127.0.0.1", ""},
		{"127.0.0.1:8080", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, subdomainOf(tt.host), "host=%q", tt.host)
	}
}
