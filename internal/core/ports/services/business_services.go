package services

import (
	"context"

	"github.com/kudzaim/shopmate_backend/internal/core/domain"
	"github.com/kudzaim/shopmate_backend/internal/dto"
)

// BusinessReaderSvc defines read operations for business profiles
type BusinessReaderSvc interface {
	// GetBusinessByID retrieves a specific business owned by the requesting user.
	GetBusinessByID(ctx context.Context, businessID string, requestingUserID string) (*domain.BusinessProfile, error)

	// ListBusinesses retrieves every business the user owns, in creation order.
	ListBusinesses(ctx context.Context, userID string) ([]domain.BusinessProfile, error)

	// CheckBusinessLimit reports whether the user's plan permits creating
	// another business, together with the numbers behind the answer.
	CheckBusinessLimit(ctx context.Context, userID string) (*domain.BusinessLimitInfo, error)

	// AuthorizeBusinessAccess verifies the business exists and belongs to the
	// user, returning it when it does.
	AuthorizeBusinessAccess(ctx context.Context, userID string, businessID string) (*domain.BusinessProfile, error)
}

// BusinessWriterSvc defines write operations for business profiles
type BusinessWriterSvc interface {
	// CreateBusiness validates and persists a new business profile for the
	// user, enforcing the plan limit. The new business is not made active.
	CreateBusiness(ctx context.Context, ownerUserID string, req dto.CreateBusinessRequest) (*domain.BusinessProfile, error)

	// SwitchActiveBusiness points the user's session at one of their
	// businesses. Switching to the already active business is a no-op.
	SwitchActiveBusiness(ctx context.Context, userID string, businessID string) error

	// DeleteBusiness removes a business and everything recorded under it.
	// The currently active business cannot be deleted.
	DeleteBusiness(ctx context.Context, userID string, businessID string) error
}

// BusinessSvcFacade combines all business-related service interfaces
// This is a facade for clients that need access to all operations
type BusinessSvcFacade interface {
	BusinessReaderSvc
	BusinessWriterSvc
}
