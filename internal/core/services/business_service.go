package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kudzaim/shopmate_backend/internal/apperrors"
	"github.com/kudzaim/shopmate_backend/internal/core/domain"
	portsrepo "github.com/kudzaim/shopmate_backend/internal/core/ports/repositories"
	portssvc "github.com/kudzaim/shopmate_backend/internal/core/ports/services"
	"github.com/kudzaim/shopmate_backend/internal/dto"
	"github.com/kudzaim/shopmate_backend/internal/events"
	"github.com/kudzaim/shopmate_backend/internal/utils"
)

// businessService implements the BusinessSvcFacade interface
type businessService struct {
	BaseService
	businessRepo portsrepo.BusinessRepositoryFacade
	planRepo     portsrepo.PlanReader
	publisher    events.Publisher
}

// NewBusinessService creates a new business service with the provided dependencies.
// The publisher may be nil, in which case no events are emitted.
func NewBusinessService(
	businessRepo portsrepo.BusinessRepositoryFacade,
	planRepo portsrepo.PlanReader,
	publisher events.Publisher,
) portssvc.BusinessSvcFacade {
	return &businessService{
		businessRepo: businessRepo,
		planRepo:     planRepo,
		publisher:    publisher,
	}
}

// Ensure businessService implements the BusinessSvcFacade interface
var _ portssvc.BusinessSvcFacade = (*businessService)(nil)

// GetBusinessByID retrieves a business, verifying the requesting user owns it.
func (s *businessService) GetBusinessByID(ctx context.Context, businessID string, requestingUserID string) (*domain.BusinessProfile, error) {
	return s.AuthorizeBusinessAccess(ctx, requestingUserID, businessID)
}

// AuthorizeBusinessAccess loads a business and checks it belongs to the user.
func (s *businessService) AuthorizeBusinessAccess(ctx context.Context, userID string, businessID string) (*domain.BusinessProfile, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find business by ID",
				slog.String("business_id", businessID))
		}
		return nil, err
	}

	if business.OwnerUserID != userID {
		s.LogDebug(ctx, "User does not own business",
			slog.String("user_id", userID),
			slog.String("business_id", businessID))
		return nil, apperrors.ErrForbidden
	}

	return business, nil
}

// ListBusinesses retrieves all businesses owned by the user in creation order.
func (s *businessService) ListBusinesses(ctx context.Context, userID string) ([]domain.BusinessProfile, error) {
	businesses, err := s.businessRepo.ListBusinessesByOwner(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list businesses for user",
			slog.String("user_id", userID))
		return nil, err
	}

	if businesses == nil {
		return []domain.BusinessProfile{}, nil
	}

	s.LogDebug(ctx, "Businesses listed successfully",
		slog.Int("count", len(businesses)),
		slog.String("user_id", userID))
	return businesses, nil
}

// CheckBusinessLimit recomputes the creation headroom from the live business
// count and the user's current plan. Users without a subscription row fall
// back to the free plan.
func (s *businessService) CheckBusinessLimit(ctx context.Context, userID string) (*domain.BusinessLimitInfo, error) {
	count, err := s.businessRepo.CountBusinessesByOwner(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count businesses for user",
			slog.String("user_id", userID))
		return nil, err
	}

	plan, err := s.planRepo.FindPlanByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find subscription plan for user",
				slog.String("user_id", userID))
			return nil, err
		}
		defaultPlan := domain.DefaultPlan(userID)
		plan = &defaultPlan
	}

	return &domain.BusinessLimitInfo{
		CanCreate:     plan.AllowsMoreBusinesses(count),
		CurrentCount:  count,
		MaxBusinesses: plan.MaxBusinesses,
		PlanName:      plan.PlanName,
	}, nil
}

// CreateBusiness validates the draft, enforces the plan limit and persists the
// new profile. The new business is not made active automatically.
func (s *businessService) CreateBusiness(ctx context.Context, ownerUserID string, req dto.CreateBusinessRequest) (*domain.BusinessProfile, error) {
	capital, err := utils.ParseOptionalAmount(req.StartingCapital)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("invalid starting capital: " + err.Error())
	}

	now := time.Now()
	business := domain.BusinessProfile{
		BusinessID:      uuid.NewString(),
		OwnerUserID:     ownerUserID,
		Name:            req.Name,
		OwnerName:       req.OwnerName,
		BusinessType:    domain.BusinessType(req.BusinessType),
		Stage:           domain.BusinessStage(req.Stage),
		Location:        req.Location,
		StartingCapital: capital,
		CurrencyCode:    req.CurrencyCode,
		Phone:           req.Phone,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerUserID,
		},
	}
	if req.GuideBook != nil {
		guideBook := domain.GuideBook(*req.GuideBook)
		business.GuideBook = &guideBook
	}

	if err := business.Validate(); err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}

	// The limit is evaluated at call time, never from a cached value, because
	// it may have changed since the caller last rendered it.
	limitInfo, err := s.CheckBusinessLimit(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}
	if !limitInfo.CanCreate {
		s.LogInfo(ctx, "Business creation blocked by plan limit",
			slog.String("user_id", ownerUserID),
			slog.String("plan", limitInfo.PlanName),
			slog.Int("current_count", limitInfo.CurrentCount))
		return nil, apperrors.NewLimitExceededError(limitInfo.PlanName, limitInfo.MaxBusinesses, limitInfo.CurrentCount)
	}

	if err := s.businessRepo.SaveBusiness(ctx, business); err != nil {
		s.LogError(ctx, err, "Failed to save business",
			slog.String("business_id", business.BusinessID))
		return nil, err
	}

	if s.publisher != nil {
		s.publisher.Produce(events.BusinessCreated, business.BusinessID, business.BusinessID, business)
	}

	s.LogInfo(ctx, "Business created successfully",
		slog.String("business_id", business.BusinessID),
		slog.String("owner_user_id", ownerUserID))
	return &business, nil
}

// SwitchActiveBusiness repoints the user's active business. Switching to the
// business that is already active succeeds without changing anything.
func (s *businessService) SwitchActiveBusiness(ctx context.Context, userID string, businessID string) error {
	if err := s.businessRepo.SetActiveBusiness(ctx, userID, businessID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to switch active business",
				slog.String("user_id", userID),
				slog.String("business_id", businessID))
		}
		return err
	}

	if s.publisher != nil {
		s.publisher.Produce(events.ActiveBusinessSwitched, businessID, userID, nil)
	}

	s.LogInfo(ctx, "Active business switched",
		slog.String("user_id", userID),
		slog.String("business_id", businessID))
	return nil
}

// DeleteBusiness removes a business together with its shifts and sales. The
// active business is protected; the check reads the pointer at delete time.
func (s *businessService) DeleteBusiness(ctx context.Context, userID string, businessID string) error {
	if err := s.businessRepo.DeleteBusiness(ctx, businessID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInvalidOperation) {
			s.LogError(ctx, err, "Failed to delete business",
				slog.String("user_id", userID),
				slog.String("business_id", businessID))
		}
		return err
	}

	if s.publisher != nil {
		s.publisher.Produce(events.BusinessDeleted, businessID, userID, nil)
	}

	s.LogInfo(ctx, "Business deleted",
		slog.String("user_id", userID),
		slog.String("business_id", businessID))
	return nil
}
