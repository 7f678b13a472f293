package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kudzaim/shopmate_backend/internal/apperrors"
	"github.com/kudzaim/shopmate_backend/internal/core/domain"
	portsrepo "github.com/kudzaim/shopmate_backend/internal/core/ports/repositories"
)

type PgxBusinessRepository struct {
	BaseRepository
}

// newPgxBusinessRepository creates a new repository for business profiles.
func newPgxBusinessRepository(pool *pgxpool.Pool) portsrepo.BusinessRepositoryWithTx {
	return &PgxBusinessRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxBusinessRepository implements portsrepo.BusinessRepositoryWithTx
var _ portsrepo.BusinessRepositoryWithTx = (*PgxBusinessRepository)(nil)

var FULL_BUSINESS_SELECT_QUERY = `
SELECT
	b.business_id, b.owner_user_id, b.name, b.owner_name, b.business_type, b.stage,
	b.location, b.starting_capital, b.currency_code, b.phone, b.guide_book,
	b.created_at, b.created_by, b.last_updated_at, b.last_updated_by
FROM businesses b
`

// getBusinesses runs the full select with the given filter and collects rows.
func (r *PgxBusinessRepository) getBusinesses(ctx context.Context, filterQuery string, args ...any) ([]domain.BusinessProfile, error) {
	query := FULL_BUSINESS_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query businesses", err)
	}
	defer rows.Close()
	businesses, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.BusinessProfile])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.BusinessProfile{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect business rows", err)
	}

	return businesses, nil
}

func (r *PgxBusinessRepository) SaveBusiness(ctx context.Context, business domain.BusinessProfile) error {
	query := `
		INSERT INTO businesses (
			business_id, owner_user_id, name, owner_name, business_type, stage,
			location, starting_capital, currency_code, phone, guide_book,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		business.BusinessID,
		business.OwnerUserID,
		business.Name,
		business.OwnerName,
		business.BusinessType,
		business.Stage,
		business.Location,
		business.StartingCapital,
		business.CurrencyCode,
		business.Phone,
		business.GuideBook,
		business.CreatedAt,
		business.CreatedBy,
		business.LastUpdatedAt,
		business.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("business ID " + business.BusinessID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("owner user does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save business "+business.BusinessID, err)
	}
	return nil
}

func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.BusinessProfile, error) {
	query := `WHERE b.business_id = $1`
	businesses, err := r.getBusinesses(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	if len(businesses) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &businesses[0], nil
}

func (r *PgxBusinessRepository) ListBusinessesByOwner(ctx context.Context, ownerUserID string) ([]domain.BusinessProfile, error) {
	// Creation order so list positions stay stable as businesses are added.
	query := `WHERE b.owner_user_id = $1 ORDER BY b.created_at ASC, b.business_id ASC;`
	return r.getBusinesses(ctx, query, ownerUserID)
}

func (r *PgxBusinessRepository) CountBusinessesByOwner(ctx context.Context, ownerUserID string) (int, error) {
	query := `SELECT COUNT(*) FROM businesses WHERE owner_user_id = $1;`
	var count int
	if err := r.Pool.QueryRow(ctx, query, ownerUserID).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count businesses for user "+ownerUserID, err)
	}
	return count, nil
}

func (r *PgxBusinessRepository) SetActiveBusiness(ctx context.Context, userID string, businessID string) error {
	// Ownership is verified in the same statement so the pointer can never be
	// set to somebody else's business.
	query := `
		UPDATE users
		SET active_business_id = $2, last_updated_at = NOW(), last_updated_by = $1
		WHERE user_id = $1
		  AND EXISTS (
			SELECT 1 FROM businesses b
			WHERE b.business_id = $2 AND b.owner_user_id = $1
		  );
	`
	result, err := r.Pool.Exec(ctx, query, userID, businessID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to set active business for user "+userID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("business " + businessID + " not found for user")
	}
	return nil
}

func (r *PgxBusinessRepository) GetActiveBusinessID(ctx context.Context, userID string) (*string, error) {
	query := `SELECT active_business_id FROM users WHERE user_id = $1 AND deleted_at IS NULL;`
	var activeBusinessID *string
	err := r.Pool.QueryRow(ctx, query, userID).Scan(&activeBusinessID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to read active business for user "+userID, err)
	}
	return activeBusinessID, nil
}

func (r *PgxBusinessRepository) DeleteBusiness(ctx context.Context, businessID string, ownerUserID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	var found string
	err = tx.QueryRow(ctx, `SELECT business_id FROM businesses WHERE business_id = $1 AND owner_user_id = $2;`, businessID, ownerUserID).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: business %s", apperrors.ErrNotFound, businessID)
		}
		return apperrors.NewAppError(500, "failed to look up business "+businessID, err)
	}

	// Read the active pointer under a row lock. Any concurrent switch to this
	// business commits before or after us, never in between.
	var activeBusinessID *string
	err = tx.QueryRow(ctx, `SELECT active_business_id FROM users WHERE user_id = $1 FOR UPDATE;`, ownerUserID).Scan(&activeBusinessID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: user %s", apperrors.ErrNotFound, ownerUserID)
		}
		return apperrors.NewAppError(500, "failed to read active business for user "+ownerUserID, err)
	}
	if activeBusinessID != nil && *activeBusinessID == businessID {
		return fmt.Errorf("%w: cannot delete the active business", apperrors.ErrInvalidOperation)
	}

	// Shifts and sales are removed by ON DELETE CASCADE.
	if _, err := tx.Exec(ctx, `DELETE FROM businesses WHERE business_id = $1;`, businessID); err != nil {
		return apperrors.NewAppError(500, "failed to delete business "+businessID, err)
	}

	return r.Commit(ctx, tx)
}
