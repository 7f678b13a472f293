package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kudzaim/shopmate_backend/internal/apperrors"
	"github.com/kudzaim/shopmate_backend/internal/core/domain"
	portsrepo "github.com/kudzaim/shopmate_backend/internal/core/ports/repositories"
	portssvc "github.com/kudzaim/shopmate_backend/internal/core/ports/services"
	"github.com/kudzaim/shopmate_backend/internal/core/services"
	"github.com/kudzaim/shopmate_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockBusinessRepository is a mock type for the BusinessRepositoryWithTx interface
type MockBusinessRepository struct {
	mock.Mock
}

// Ensure MockBusinessRepository implements portsrepo.BusinessRepositoryWithTx
var _ portsrepo.BusinessRepositoryWithTx = (*MockBusinessRepository)(nil)

func (m *MockBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.BusinessProfile, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessProfile), args.Error(1)
}

func (m *MockBusinessRepository) ListBusinessesByOwner(ctx context.Context, ownerUserID string) ([]domain.BusinessProfile, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BusinessProfile), args.Error(1)
}

func (m *MockBusinessRepository) CountBusinessesByOwner(ctx context.Context, ownerUserID string) (int, error) {
	args := m.Called(ctx, ownerUserID)
	return args.Int(0), args.Error(1)
}

func (m *MockBusinessRepository) SaveBusiness(ctx context.Context, business domain.BusinessProfile) error {
	args := m.Called(ctx, business)
	return args.Error(0)
}

func (m *MockBusinessRepository) DeleteBusiness(ctx context.Context, businessID string, ownerUserID string) error {
	args := m.Called(ctx, businessID, ownerUserID)
	return args.Error(0)
}

func (m *MockBusinessRepository) SetActiveBusiness(ctx context.Context, userID string, businessID string) error {
	args := m.Called(ctx, userID, businessID)
	return args.Error(0)
}

func (m *MockBusinessRepository) GetActiveBusinessID(ctx context.Context, userID string) (*string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockBusinessRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockBusinessRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockBusinessRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockPlanRepository is a mock type for the PlanReader interface
type MockPlanRepository struct {
	mock.Mock
}

var _ portsrepo.PlanReader = (*MockPlanRepository)(nil)

func (m *MockPlanRepository) FindPlanByUserID(ctx context.Context, userID string) (*domain.SubscriptionPlan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubscriptionPlan), args.Error(1)
}

// --- Test Suite Setup ---

type BusinessServiceTestSuite struct {
	suite.Suite
	mockBusinessRepo *MockBusinessRepository
	mockPlanRepo     *MockPlanRepository
	service          portssvc.BusinessSvcFacade
}

func (suite *BusinessServiceTestSuite) SetupTest() {
	suite.mockBusinessRepo = new(MockBusinessRepository)
	suite.mockPlanRepo = new(MockPlanRepository)
	suite.service = services.NewBusinessService(suite.mockBusinessRepo, suite.mockPlanRepo, nil)
}

func validCreateRequest() dto.CreateBusinessRequest {
	return dto.CreateBusinessRequest{
		Name:            "Mbare Hardware",
		OwnerName:       "Tendai Moyo",
		BusinessType:    "RETAIL",
		Stage:           "RUNNING",
		Location:        "Harare",
		StartingCapital: "1500.00",
		CurrencyCode:    "USD",
	}
}

func freePlan(userID string) *domain.SubscriptionPlan {
	plan := domain.DefaultPlan(userID)
	return &plan
}

// --- CreateBusiness Tests ---

func (suite *BusinessServiceTestSuite) TestCreateBusiness_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	req := validCreateRequest()

	suite.mockBusinessRepo.On("CountBusinessesByOwner", ctx, ownerID).Return(0, nil).Once()
	suite.mockPlanRepo.On("FindPlanByUserID", ctx, ownerID).Return(freePlan(ownerID), nil).Once()
	suite.mockBusinessRepo.On("SaveBusiness", ctx, mock.MatchedBy(func(b domain.BusinessProfile) bool {
		return b.Name == req.Name && b.OwnerUserID == ownerID
	})).Return(nil).Once()

	created, err := suite.service.CreateBusiness(ctx, ownerID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.BusinessID)
	suite.Equal(req.Name, created.Name)
	suite.Equal(req.OwnerName, created.OwnerName)
	suite.Equal(domain.BusinessRetail, created.BusinessType)
	suite.Equal(domain.StageRunning, created.Stage)
	suite.True(created.StartingCapital.Equal(decimal.RequireFromString("1500.00")))
	suite.Equal(ownerID, created.CreatedBy)
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)

	suite.mockBusinessRepo.AssertExpectations(suite.T())
	suite.mockPlanRepo.AssertExpectations(suite.T())
}

func (suite *BusinessServiceTestSuite) TestCreateBusiness_LimitExceeded() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	req := validCreateRequest()

	// Free plan allows one business and the user already has one.
	suite.mockBusinessRepo.On("CountBusinessesByOwner", ctx, ownerID).Return(1, nil).Once()
	suite.mockPlanRepo.On("FindPlanByUserID", ctx, ownerID).Return(freePlan(ownerID), nil).Once()

	created, err := suite.service.CreateBusiness(ctx, ownerID, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrLimitExceeded)

	var limitErr *apperrors.LimitExceededError
	suite.Require().ErrorAs(err, &limitErr)
	suite.Equal(domain.PlanFree, limitErr.PlanName)
	suite.Equal(1, limitErr.MaxBusinesses)
	suite.Equal(1, limitErr.CurrentCount)

	suite.mockBusinessRepo.AssertNotCalled(suite.T(), "SaveBusiness", mock.Anything, mock.Anything)
	suite.mockBusinessRepo.AssertExpectations(suite.T())
}

func (suite *BusinessServiceTestSuite) TestCreateBusiness_ValidationError() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	req := validCreateRequest()
	req.Name = ""

	created, err := suite.service.CreateBusiness(ctx, ownerID, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)

	// Validation happens before any repository access.
	suite.mockBusinessRepo.AssertNotCalled(suite.T(), "SaveBusiness", mock.Anything, mock.Anything)
	suite.mockBusinessRepo.AssertNotCalled(suite.T(), "CountBusinessesByOwner", mock.Anything, mock.Anything)
}

func (suite *BusinessServiceTestSuite) TestCreateBusiness_InvalidCapital() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	req := validCreateRequest()
	req.StartingCapital = "not-a-number"

	created, err := suite.service.CreateBusiness(ctx, ownerID, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BusinessServiceTestSuite) TestCreateBusiness_BlankCapitalDefaultsToZero() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	req := validCreateRequest()
	req.StartingCapital = ""

	suite.mockBusinessRepo.On("CountBusinessesByOwner", ctx, ownerID).Return(0, nil).Once()
	suite.mockPlanRepo.On("FindPlanByUserID", ctx, ownerID).Return(freePlan(ownerID), nil).Once()
	suite.mockBusinessRepo.On("SaveBusiness", ctx, mock.AnythingOfType("domain.BusinessProfile")).Return(nil).Once()

	created, err := suite.service.CreateBusiness(ctx, ownerID, req)

	suite.Require().NoError(err)
	suite.True(created.StartingCapital.IsZero())
}

func (suite *BusinessServiceTestSuite) TestCreateBusiness_UnlimitedPlan() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	req := validCreateRequest()

	premium := &domain.SubscriptionPlan{
		UserID:        ownerID,
		PlanName:      domain.PlanPremium,
		MaxBusinesses: domain.UnlimitedBusinesses,
	}

	suite.mockBusinessRepo.On("CountBusinessesByOwner", ctx, ownerID).Return(37, nil).Once()
	suite.mockPlanRepo.On("FindPlanByUserID", ctx, ownerID).Return(premium, nil).Once()
	suite.mockBusinessRepo.On("SaveBusiness", ctx, mock.AnythingOfType("domain.BusinessProfile")).Return(nil).Once()

	created, err := suite.service.CreateBusiness(ctx, ownerID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
}

func (suite *BusinessServiceTestSuite) TestCreateBusiness_NoSubscriptionFallsBackToFree() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	req := validCreateRequest()

	suite.mockBusinessRepo.On("CountBusinessesByOwner", ctx, ownerID).Return(1, nil).Once()
	suite.mockPlanRepo.On("FindPlanByUserID", ctx, ownerID).Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateBusiness(ctx, ownerID, req)

	suite.Require().Error(err)
	suite.Nil(created)

	var limitErr *apperrors.LimitExceededError
	suite.Require().ErrorAs(err, &limitErr)
	suite.Equal(domain.PlanFree, limitErr.PlanName)
}

// --- CheckBusinessLimit Tests ---

func (suite *BusinessServiceTestSuite) TestCheckBusinessLimit_HasHeadroom() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockBusinessRepo.On("CountBusinessesByOwner", ctx, userID).Return(0, nil).Once()
	suite.mockPlanRepo.On("FindPlanByUserID", ctx, userID).Return(freePlan(userID), nil).Once()

	info, err := suite.service.CheckBusinessLimit(ctx, userID)

	suite.Require().NoError(err)
	suite.True(info.CanCreate)
	suite.Equal(0, info.CurrentCount)
	suite.Equal(1, info.MaxBusinesses)
	suite.Equal(domain.PlanFree, info.PlanName)
}

func (suite *BusinessServiceTestSuite) TestCheckBusinessLimit_AtLimit() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockBusinessRepo.On("CountBusinessesByOwner", ctx, userID).Return(1, nil).Once()
	suite.mockPlanRepo.On("FindPlanByUserID", ctx, userID).Return(freePlan(userID), nil).Once()

	info, err := suite.service.CheckBusinessLimit(ctx, userID)

	suite.Require().NoError(err)
	suite.False(info.CanCreate)
	suite.Equal(1, info.CurrentCount)
}

func (suite *BusinessServiceTestSuite) TestCheckBusinessLimit_Unlimited() {
	ctx := context.Background()
	userID := uuid.NewString()

	premium := &domain.SubscriptionPlan{
		UserID:        userID,
		PlanName:      domain.PlanPremium,
		MaxBusinesses: domain.UnlimitedBusinesses,
	}

	suite.mockBusinessRepo.On("CountBusinessesByOwner", ctx, userID).Return(250, nil).Once()
	suite.mockPlanRepo.On("FindPlanByUserID", ctx, userID).Return(premium, nil).Once()

	info, err := suite.service.CheckBusinessLimit(ctx, userID)

	suite.Require().NoError(err)
	suite.True(info.CanCreate)
	suite.Equal(domain.UnlimitedBusinesses, info.MaxBusinesses)
}

// --- SwitchActiveBusiness Tests ---

func (suite *BusinessServiceTestSuite) TestSwitchActiveBusiness_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	businessID := uuid.NewString()

	suite.mockBusinessRepo.On("SetActiveBusiness", ctx, userID, businessID).Return(nil).Once()

	err := suite.service.SwitchActiveBusiness(ctx, userID, businessID)

	suite.Require().NoError(err)
	suite.mockBusinessRepo.AssertExpectations(suite.T())
}

func (suite *BusinessServiceTestSuite) TestSwitchActiveBusiness_Idempotent() {
	ctx := context.Background()
	userID := uuid.NewString()
	businessID := uuid.NewString()

	// Switching to the already active business succeeds again.
	suite.mockBusinessRepo.On("SetActiveBusiness", ctx, userID, businessID).Return(nil).Twice()

	suite.Require().NoError(suite.service.SwitchActiveBusiness(ctx, userID, businessID))
	suite.Require().NoError(suite.service.SwitchActiveBusiness(ctx, userID, businessID))

	suite.mockBusinessRepo.AssertExpectations(suite.T())
}

func (suite *BusinessServiceTestSuite) TestSwitchActiveBusiness_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	businessID := uuid.NewString()

	suite.mockBusinessRepo.On("SetActiveBusiness", ctx, userID, businessID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.SwitchActiveBusiness(ctx, userID, businessID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- DeleteBusiness Tests ---

func (suite *BusinessServiceTestSuite) TestDeleteBusiness_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	businessID := uuid.NewString()

	suite.mockBusinessRepo.On("DeleteBusiness", ctx, businessID, userID).Return(nil).Once()

	err := suite.service.DeleteBusiness(ctx, userID, businessID)

	suite.Require().NoError(err)
	suite.mockBusinessRepo.AssertExpectations(suite.T())
}

func (suite *BusinessServiceTestSuite) TestDeleteBusiness_ActiveBusinessRejected() {
	ctx := context.Background()
	userID := uuid.NewString()
	businessID := uuid.NewString()

	suite.mockBusinessRepo.On("DeleteBusiness", ctx, businessID, userID).
		Return(apperrors.ErrInvalidOperation).Once()

	err := suite.service.DeleteBusiness(ctx, userID, businessID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidOperation)
}

// --- ListBusinesses Tests ---

func (suite *BusinessServiceTestSuite) TestListBusinesses_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expected := []domain.BusinessProfile{
		{BusinessID: uuid.NewString(), OwnerUserID: userID, Name: "First"},
		{BusinessID: uuid.NewString(), OwnerUserID: userID, Name: "Second"},
	}

	suite.mockBusinessRepo.On("ListBusinessesByOwner", ctx, userID).Return(expected, nil).Once()

	businesses, err := suite.service.ListBusinesses(ctx, userID)

	suite.Require().NoError(err)
	suite.Len(businesses, 2)
	suite.Equal("First", businesses[0].Name)
}

func (suite *BusinessServiceTestSuite) TestListBusinesses_EmptyNotNil() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockBusinessRepo.On("ListBusinessesByOwner", ctx, userID).Return(nil, nil).Once()

	businesses, err := suite.service.ListBusinesses(ctx, userID)

	suite.Require().NoError(err)
	suite.NotNil(businesses)
	suite.Empty(businesses)
}

// --- GetBusinessByID Tests ---

func (suite *BusinessServiceTestSuite) TestGetBusinessByID_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	businessID := uuid.NewString()
	expected := &domain.BusinessProfile{BusinessID: businessID, OwnerUserID: userID}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, businessID).Return(expected, nil).Once()

	business, err := suite.service.GetBusinessByID(ctx, businessID, userID)

	suite.Require().NoError(err)
	suite.Equal(expected, business)
}

func (suite *BusinessServiceTestSuite) TestGetBusinessByID_ForbiddenForNonOwner() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	otherUserID := uuid.NewString()
	businessID := uuid.NewString()
	stored := &domain.BusinessProfile{BusinessID: businessID, OwnerUserID: ownerID}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, businessID).Return(stored, nil).Once()

	business, err := suite.service.GetBusinessByID(ctx, businessID, otherUserID)

	suite.Require().Error(err)
	suite.Nil(business)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *BusinessServiceTestSuite) TestGetBusinessByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	businessID := uuid.NewString()

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, businessID).Return(nil, apperrors.ErrNotFound).Once()

	business, err := suite.service.GetBusinessByID(ctx, businessID, userID)

	suite.Require().Error(err)
	suite.Nil(business)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Test Suite ---

func TestBusinessService(t *testing.T) {
	suite.Run(t, new(BusinessServiceTestSuite))
}
