package tenancy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateSubscription(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name       string
		isActive   bool
		status     string
		expiresAt  *time.Time
		wantValid  bool
		wantLapsed bool
	}{
		{"active with future expiry", true, SubscriptionActive, &future, true, false},
		{"trial with future expiry", true, SubscriptionTrial, &future, true, false},
		{"active with no expiry", true, SubscriptionActive, nil, true, false},
		{"inactive school", false, SubscriptionActive, &future, false, false},
		{"suspended", true, SubscriptionSuspended, &future, false, false},
		{"expiry in the past flags lapse", true, SubscriptionActive, &past, false, true},
		{"trial past expiry flags lapse", true, SubscriptionTrial, &past, false, true},
		{"already expired does not re-lapse", true, SubscriptionExpired, &past, false, false},
		{"suspended wins over future expiry", true, SubscriptionSuspended, nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, lapsed := EvaluateSubscription(tt.isActive, tt.status, tt.expiresAt, now)
			assert.Equal(t, tt.wantValid, valid, "valid")
			assert.Equal(t, tt.wantLapsed, lapsed, "lapsed")
		})
	}
}
