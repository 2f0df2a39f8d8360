package tenancy

import "time"

// Subscription status values on schools.school_subscription_status.
const (
	SubscriptionTrial     = "trial"
	SubscriptionActive    = "active"
	SubscriptionExpired   = "expired"
	SubscriptionSuspended = "suspended"
)

// Subscription plan values on schools.school_subscription_plan.
const (
	PlanFree       = "free"
	PlanBasic      = "basic"
	PlanPremium    = "premium"
	PlanEnterprise = "enterprise"
)

// EvaluateSubscription applies the entitlement rules in order:
// inactive → invalid; suspended → invalid; expiry date in the past →
// invalid and lapsed (the caller must persist the expired status — lazy
// expiry, corrected on first observation instead of a background sweep).
func EvaluateSubscription(isActive bool, status string, expiresAt *time.Time, now time.Time) (valid bool, lapsed bool) {
	if !isActive {
		return false, false
	}
	if status == SubscriptionSuspended {
		return false, false
	}
	if expiresAt != nil && expiresAt.Before(now) {
		return false, status != SubscriptionExpired
	}
	return true, false
}
