package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kudzaim/shopmate_backend/internal/apperrors"
	"github.com/kudzaim/shopmate_backend/internal/core/domain"
	portsrepo "github.com/kudzaim/shopmate_backend/internal/core/ports/repositories"
)

// PgxPlanRepository reads subscription plans. Rows are written by the billing
// system, never by this service.
type PgxPlanRepository struct {
	db *pgxpool.Pool
}

func newPgxPlanRepository(db *pgxpool.Pool) portsrepo.PlanRepositoryFacade {
	return &PgxPlanRepository{db: db}
}

// Ensure PgxPlanRepository implements portsrepo.PlanRepositoryFacade
var _ portsrepo.PlanRepositoryFacade = (*PgxPlanRepository)(nil)

func (r *PgxPlanRepository) FindPlanByUserID(ctx context.Context, userID string) (*domain.SubscriptionPlan, error) {
	query := `
		SELECT user_id, plan_name, max_businesses,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM subscriptions
		WHERE user_id = $1;
	`
	var plan domain.SubscriptionPlan
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&plan.UserID,
		&plan.PlanName,
		&plan.MaxBusinesses,
		&plan.CreatedAt,
		&plan.CreatedBy,
		&plan.LastUpdatedAt,
		&plan.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find plan for user %s: %w", userID, err)
	}
	return &plan, nil
}
