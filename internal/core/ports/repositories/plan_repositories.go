package repositories

import (
	"context"

	"github.com/kudzaim/shopmate_backend/internal/core/domain"
)

// PlanReader defines read operations for subscription plans. Billing is
// handled elsewhere, so plans are read-only to this service.
type PlanReader interface {
	// FindPlanByUserID retrieves the user's subscription plan. Returns
	// ErrNotFound when the user has no subscription row.
	FindPlanByUserID(ctx context.Context, userID string) (*domain.SubscriptionPlan, error)
}

// PlanRepositoryFacade combines all plan-related repository interfaces
type PlanRepositoryFacade interface {
	PlanReader
}
