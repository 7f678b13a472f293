package repositories

import (
	"context"

	"github.com/kudzaim/shopmate_backend/internal/core/domain"
)

// BusinessReader defines read operations for business profiles
type BusinessReader interface {
	// FindBusinessByID retrieves a specific business by its ID.
	FindBusinessByID(ctx context.Context, businessID string) (*domain.BusinessProfile, error)

	// ListBusinessesByOwner retrieves every business a user owns, oldest first.
	ListBusinessesByOwner(ctx context.Context, ownerUserID string) ([]domain.BusinessProfile, error)

	// CountBusinessesByOwner counts the businesses a user currently owns.
	CountBusinessesByOwner(ctx context.Context, ownerUserID string) (int, error)
}

// BusinessWriter defines write operations for business profiles
type BusinessWriter interface {
	// SaveBusiness persists a new business profile.
	SaveBusiness(ctx context.Context, business domain.BusinessProfile) error

	// DeleteBusiness removes a business and all data scoped to it. It fails
	// with ErrInvalidOperation when the business is the owner's active one,
	// checked against the stored pointer at delete time.
	DeleteBusiness(ctx context.Context, businessID string, ownerUserID string) error
}

// ActiveBusinessManager defines operations on the user's active-business pointer
type ActiveBusinessManager interface {
	// SetActiveBusiness points the user at one of their businesses. It fails
	// with ErrNotFound when the business does not exist or is not theirs.
	SetActiveBusiness(ctx context.Context, userID string, businessID string) error

	// GetActiveBusinessID retrieves the user's active business pointer, which
	// may be nil when nothing has been selected yet.
	GetActiveBusinessID(ctx context.Context, userID string) (*string, error)
}

// BusinessRepositoryFacade combines all business-related repository interfaces
// This is a facade for clients that need access to all operations
type BusinessRepositoryFacade interface {
	BusinessReader
	BusinessWriter
	ActiveBusinessManager
}

// BusinessRepositoryWithTx extends BusinessRepositoryFacade with transaction capabilities
type BusinessRepositoryWithTx interface {
	BusinessRepositoryFacade
	TransactionManager
}
