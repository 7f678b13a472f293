package domain

// UnlimitedBusinesses is the MaxBusinesses sentinel for plans without a ceiling.
const UnlimitedBusinesses = -1

// Plan name constants for the built-in tiers.
const (
	PlanFree    = "FREE"
	PlanPremium = "PREMIUM"
)

// SubscriptionPlan describes what a user's tier entitles them to.
type SubscriptionPlan struct {
	UserID        string `json:"userID"` // FK -> users.user_id
	PlanName      string `json:"planName"`
	MaxBusinesses int    `json:"maxBusinesses"` // UnlimitedBusinesses means no cap
	AuditFields
}

// DefaultPlan is what users without a subscription row are entitled to.
func DefaultPlan(userID string) SubscriptionPlan {
	return SubscriptionPlan{
		UserID:        userID,
		PlanName:      PlanFree,
		MaxBusinesses: 1,
	}
}

// AllowsMoreBusinesses reports whether the plan permits creating another
// business given the user's current count.
func (p SubscriptionPlan) AllowsMoreBusinesses(currentCount int) bool {
	if p.MaxBusinesses == UnlimitedBusinesses {
		return true
	}
	return currentCount < p.MaxBusinesses
}

// BusinessLimitInfo is the snapshot returned to clients asking whether they
// may create another business.
type BusinessLimitInfo struct {
	CanCreate     bool   `json:"canCreate"`
	CurrentCount  int    `json:"currentCount"`
	MaxBusinesses int    `json:"maxBusinesses"` // UnlimitedBusinesses means no cap
	PlanName      string `json:"planName"`
}
