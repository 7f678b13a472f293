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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockShiftRepository is a mock type for the ShiftRepositoryWithTx interface
type MockShiftRepository struct {
	mock.Mock
}

// Ensure MockShiftRepository implements portsrepo.ShiftRepositoryWithTx
var _ portsrepo.ShiftRepositoryWithTx = (*MockShiftRepository)(nil)

func (m *MockShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.ShiftRecord, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftRecord), args.Error(1)
}

func (m *MockShiftRepository) FindOpenShift(ctx context.Context, businessID string, shiftDate time.Time) (*domain.ShiftRecord, error) {
	args := m.Called(ctx, businessID, shiftDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftRecord), args.Error(1)
}

func (m *MockShiftRepository) FindLatestClosedShift(ctx context.Context, businessID string) (*domain.ShiftRecord, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftRecord), args.Error(1)
}

func (m *MockShiftRepository) ListShiftsByBusiness(ctx context.Context, businessID string, limit int, nextToken *string) ([]domain.ShiftRecord, *string, error) {
	args := m.Called(ctx, businessID, limit, nextToken)
	var shifts []domain.ShiftRecord
	if args.Get(0) != nil {
		shifts = args.Get(0).([]domain.ShiftRecord)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return shifts, token, args.Error(2)
}

func (m *MockShiftRepository) SaveShift(ctx context.Context, shift domain.ShiftRecord) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) UpdateShiftTotals(ctx context.Context, shift domain.ShiftRecord) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) CloseShift(ctx context.Context, shift domain.ShiftRecord) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) RecomputeShiftTotals(ctx context.Context, shiftID string) (*domain.ShiftTotals, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftTotals), args.Error(1)
}

func (m *MockShiftRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockShiftRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockShiftRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockBusinessReaderSvc is a mock type for the BusinessReaderSvc interface
type MockBusinessReaderSvc struct {
	mock.Mock
}

var _ portssvc.BusinessReaderSvc = (*MockBusinessReaderSvc)(nil)

func (m *MockBusinessReaderSvc) GetBusinessByID(ctx context.Context, businessID string, requestingUserID string) (*domain.BusinessProfile, error) {
	args := m.Called(ctx, businessID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessProfile), args.Error(1)
}

func (m *MockBusinessReaderSvc) ListBusinesses(ctx context.Context, userID string) ([]domain.BusinessProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BusinessProfile), args.Error(1)
}

func (m *MockBusinessReaderSvc) CheckBusinessLimit(ctx context.Context, userID string) (*domain.BusinessLimitInfo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessLimitInfo), args.Error(1)
}

func (m *MockBusinessReaderSvc) AuthorizeBusinessAccess(ctx context.Context, userID string, businessID string) (*domain.BusinessProfile, error) {
	args := m.Called(ctx, userID, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessProfile), args.Error(1)
}

// --- Test Suite Setup ---

type ShiftServiceTestSuite struct {
	suite.Suite
	mockShiftRepo   *MockShiftRepository
	mockBusinessSvc *MockBusinessReaderSvc
	service         portssvc.ShiftSvcFacade

	userID     string
	businessID string
	business   *domain.BusinessProfile
}

func (suite *ShiftServiceTestSuite) SetupTest() {
	suite.mockShiftRepo = new(MockShiftRepository)
	suite.mockBusinessSvc = new(MockBusinessReaderSvc)
	suite.service = services.NewShiftService(suite.mockShiftRepo, suite.mockBusinessSvc, nil, time.UTC)

	suite.userID = uuid.NewString()
	suite.businessID = uuid.NewString()
	suite.business = &domain.BusinessProfile{
		BusinessID:   suite.businessID,
		OwnerUserID:  suite.userID,
		Name:         "Corner Tuckshop",
		CurrencyCode: "USD",
	}
}

func (suite *ShiftServiceTestSuite) expectOwnership() {
	suite.mockBusinessSvc.On("AuthorizeBusinessAccess", mock.Anything, suite.userID, suite.businessID).
		Return(suite.business, nil)
}

func (suite *ShiftServiceTestSuite) openShift() *domain.ShiftRecord {
	return &domain.ShiftRecord{
		ShiftID:      uuid.NewString(),
		BusinessID:   suite.businessID,
		ShiftDate:    time.Now().UTC().Truncate(24 * time.Hour),
		StartTime:    time.Now(),
		Status:       domain.ShiftOpen,
		OpeningCash:  decimal.NewFromInt(50),
		ExpectedCash: decimal.NewFromInt(50),
		CurrencyCode: "USD",
	}
}

// --- GetOrCreateTodayShift Tests ---

func (suite *ShiftServiceTestSuite) TestGetOrCreateTodayShift_ReturnsExisting() {
	ctx := context.Background()
	existing := suite.openShift()

	suite.expectOwnership()
	suite.mockShiftRepo.On("FindOpenShift", ctx, suite.businessID, mock.AnythingOfType("time.Time")).
		Return(existing, nil).Once()

	shift, err := suite.service.GetOrCreateTodayShift(ctx, suite.businessID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(existing.ShiftID, shift.ShiftID)
	suite.mockShiftRepo.AssertNotCalled(suite.T(), "SaveShift", mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestGetOrCreateTodayShift_SeedsFromLastClosedShift() {
	ctx := context.Background()
	counted := decimal.NewFromInt(150)
	lastClosed := suite.openShift()
	lastClosed.Status = domain.ShiftClosed
	lastClosed.ActualCash = &counted

	suite.expectOwnership()
	suite.mockShiftRepo.On("FindOpenShift", ctx, suite.businessID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockShiftRepo.On("FindLatestClosedShift", ctx, suite.businessID).
		Return(lastClosed, nil).Once()
	suite.mockShiftRepo.On("SaveShift", ctx, mock.MatchedBy(func(s domain.ShiftRecord) bool {
		return s.BusinessID == suite.businessID &&
			s.Status == domain.ShiftOpen &&
			s.OpeningCash.Equal(counted) &&
			s.ExpectedCash.Equal(counted)
	})).Return(nil).Once()

	shift, err := suite.service.GetOrCreateTodayShift(ctx, suite.businessID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(shift)
	suite.NotEmpty(shift.ShiftID)
	suite.True(shift.OpeningCash.Equal(counted))
	suite.True(shift.ExpectedCash.Equal(counted))
	suite.Equal("USD", shift.CurrencyCode)
	suite.Equal(domain.ShiftOpen, shift.Status)
	suite.mockShiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestGetOrCreateTodayShift_FirstShiftOpensWithZero() {
	ctx := context.Background()

	suite.expectOwnership()
	suite.mockShiftRepo.On("FindOpenShift", ctx, suite.businessID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockShiftRepo.On("FindLatestClosedShift", ctx, suite.businessID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockShiftRepo.On("SaveShift", ctx, mock.AnythingOfType("domain.ShiftRecord")).
		Return(nil).Once()

	shift, err := suite.service.GetOrCreateTodayShift(ctx, suite.businessID, suite.userID)

	suite.Require().NoError(err)
	suite.True(shift.OpeningCash.IsZero())
	suite.True(shift.ExpectedCash.IsZero())
	suite.True(shift.TotalSales.IsZero())
	suite.Equal(0, shift.TransactionCount)
}

func (suite *ShiftServiceTestSuite) TestGetOrCreateTodayShift_LostRaceReturnsWinner() {
	ctx := context.Background()
	winner := suite.openShift()

	suite.expectOwnership()
	// First lookup sees nothing, the insert collides, the re-read returns the
	// shift the concurrent caller created.
	suite.mockShiftRepo.On("FindOpenShift", ctx, suite.businessID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockShiftRepo.On("FindLatestClosedShift", ctx, suite.businessID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockShiftRepo.On("SaveShift", ctx, mock.AnythingOfType("domain.ShiftRecord")).
		Return(apperrors.ErrConflict).Once()
	suite.mockShiftRepo.On("FindOpenShift", ctx, suite.businessID, mock.AnythingOfType("time.Time")).
		Return(winner, nil).Once()

	shift, err := suite.service.GetOrCreateTodayShift(ctx, suite.businessID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(winner.ShiftID, shift.ShiftID)
	suite.mockShiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestGetOrCreateTodayShift_ForbiddenForNonOwner() {
	ctx := context.Background()
	otherUserID := uuid.NewString()

	suite.mockBusinessSvc.On("AuthorizeBusinessAccess", mock.Anything, otherUserID, suite.businessID).
		Return(nil, apperrors.ErrForbidden).Once()

	shift, err := suite.service.GetOrCreateTodayShift(ctx, suite.businessID, otherUserID)

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockShiftRepo.AssertNotCalled(suite.T(), "FindOpenShift", mock.Anything, mock.Anything, mock.Anything)
}

// --- RefreshShiftTotals Tests ---

func (suite *ShiftServiceTestSuite) TestRefreshShiftTotals_Success() {
	ctx := context.Background()
	shift := suite.openShift()
	totals := &domain.ShiftTotals{
		CashSales:        decimal.NewFromInt(100),
		CardSales:        decimal.NewFromInt(40),
		TotalSales:       decimal.NewFromInt(140),
		TransactionCount: 7,
		ReceiptCount:     5,
	}

	suite.expectOwnership()
	suite.mockShiftRepo.On("FindShiftByID", ctx, shift.ShiftID).Return(shift, nil).Once()
	suite.mockShiftRepo.On("RecomputeShiftTotals", ctx, shift.ShiftID).Return(totals, nil).Once()
	suite.mockShiftRepo.On("UpdateShiftTotals", ctx, mock.MatchedBy(func(s domain.ShiftRecord) bool {
		// opening 50 + cash 100
		return s.ExpectedCash.Equal(decimal.NewFromInt(150)) && s.CashSales.Equal(decimal.NewFromInt(100))
	})).Return(nil).Once()

	refreshed, err := suite.service.RefreshShiftTotals(ctx, shift.ShiftID, suite.userID)

	suite.Require().NoError(err)
	suite.True(refreshed.ExpectedCash.Equal(decimal.NewFromInt(150)))
	suite.Equal(7, refreshed.TransactionCount)
	suite.mockShiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestRefreshShiftTotals_ClosedShiftIsNoOp() {
	ctx := context.Background()
	counted := decimal.NewFromInt(90)
	shift := suite.openShift()
	shift.Status = domain.ShiftClosed
	shift.ActualCash = &counted

	suite.expectOwnership()
	suite.mockShiftRepo.On("FindShiftByID", ctx, shift.ShiftID).Return(shift, nil).Once()

	got, err := suite.service.RefreshShiftTotals(ctx, shift.ShiftID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(shift, got)
	suite.mockShiftRepo.AssertNotCalled(suite.T(), "RecomputeShiftTotals", mock.Anything, mock.Anything)
	suite.mockShiftRepo.AssertNotCalled(suite.T(), "UpdateShiftTotals", mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestRefreshShiftTotals_ClosedUnderfootReturnsStored() {
	ctx := context.Background()
	shift := suite.openShift()
	closedVersion := *shift
	closedVersion.Status = domain.ShiftClosed

	suite.expectOwnership()
	suite.mockShiftRepo.On("FindShiftByID", ctx, shift.ShiftID).Return(shift, nil).Once()
	suite.mockShiftRepo.On("RecomputeShiftTotals", ctx, shift.ShiftID).Return(&domain.ShiftTotals{}, nil).Once()
	suite.mockShiftRepo.On("UpdateShiftTotals", ctx, mock.AnythingOfType("domain.ShiftRecord")).
		Return(apperrors.ErrInvalidOperation).Once()
	suite.mockShiftRepo.On("FindShiftByID", ctx, shift.ShiftID).Return(&closedVersion, nil).Once()

	got, err := suite.service.RefreshShiftTotals(ctx, shift.ShiftID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ShiftClosed, got.Status)
}

// --- CloseShift Tests ---

func (suite *ShiftServiceTestSuite) TestCloseShift_Balanced() {
	ctx := context.Background()
	shift := suite.openShift() // opening 50
	totals := &domain.ShiftTotals{
		CashSales:  decimal.NewFromInt(100),
		TotalSales: decimal.NewFromInt(100),
	}
	req := dto.CloseShiftRequest{CountedCash: "150.00"}

	var persisted domain.ShiftRecord
	suite.expectOwnership()
	suite.mockShiftRepo.On("FindShiftByID", ctx, shift.ShiftID).Return(shift, nil).Once()
	suite.mockShiftRepo.On("RecomputeShiftTotals", ctx, shift.ShiftID).Return(totals, nil).Once()
	suite.mockShiftRepo.On("CloseShift", ctx, mock.AnythingOfType("domain.ShiftRecord")).
		Return(nil).Once().Run(func(args mock.Arguments) {
		persisted = args.Get(1).(domain.ShiftRecord)
	})

	closed, err := suite.service.CloseShift(ctx, shift.ShiftID, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.ShiftClosed, closed.Status)
	suite.Require().NotNil(closed.EndTime)
	suite.Require().NotNil(closed.ActualCash)
	suite.Require().NotNil(closed.CashDiscrepancy)
	suite.True(closed.ExpectedCash.Equal(decimal.NewFromInt(150)))
	suite.True(closed.ActualCash.Equal(decimal.RequireFromString("150.00")))
	suite.True(closed.CashDiscrepancy.IsZero())

	// The record handed to the repository carries the same closing fields.
	suite.Equal(domain.ShiftClosed, persisted.Status)
	suite.True(persisted.CashDiscrepancy.IsZero())
	suite.mockShiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestCloseShift_ShortDrawer() {
	ctx := context.Background()
	shift := suite.openShift() // opening 50
	totals := &domain.ShiftTotals{
		CashSales:  decimal.NewFromInt(100),
		TotalSales: decimal.NewFromInt(100),
	}
	req := dto.CloseShiftRequest{
		CountedCash:      "135.00",
		DiscrepancyNotes: "till was short, investigating",
	}

	suite.expectOwnership()
	suite.mockShiftRepo.On("FindShiftByID", ctx, shift.ShiftID).Return(shift, nil).Once()
	suite.mockShiftRepo.On("RecomputeShiftTotals", ctx, shift.ShiftID).Return(totals, nil).Once()
	suite.mockShiftRepo.On("CloseShift", ctx, mock.AnythingOfType("domain.ShiftRecord")).Return(nil).Once()

	closed, err := suite.service.CloseShift(ctx, shift.ShiftID, suite.userID, req)

	suite.Require().NoError(err)
	// counted 135 - expected 150 = -15
	suite.True(closed.CashDiscrepancy.Equal(decimal.NewFromInt(-15)))
	suite.Equal("till was short, investigating", closed.DiscrepancyNotes)
}

func (suite *ShiftServiceTestSuite) TestCloseShift_OverDrawer() {
	ctx := context.Background()
	shift := suite.openShift() // opening 50
	totals := &domain.ShiftTotals{
		CashSales:  decimal.NewFromInt(100),
		TotalSales: decimal.NewFromInt(100),
	}
	req := dto.CloseShiftRequest{CountedCash: "170"}

	suite.expectOwnership()
	suite.mockShiftRepo.On("FindShiftByID", ctx, shift.ShiftID).Return(shift, nil).Once()
	suite.mockShiftRepo.On("RecomputeShiftTotals", ctx, shift.ShiftID).Return(totals, nil).Once()
	suite.mockShiftRepo.On("CloseShift", ctx, mock.AnythingOfType("domain.ShiftRecord")).Return(nil).Once()

	closed, err := suite.service.CloseShift(ctx, shift.ShiftID, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(closed.CashDiscrepancy.Equal(decimal.NewFromInt(20)))
}

func (suite *ShiftServiceTestSuite) TestCloseShift_AlreadyClosed() {
	ctx := context.Background()
	shift := suite.openShift()
	shift.Status = domain.ShiftClosed

	suite.expectOwnership()
	suite.mockShiftRepo.On("FindShiftByID", ctx, shift.ShiftID).Return(shift, nil).Once()

	closed, err := suite.service.CloseShift(ctx, shift.ShiftID, suite.userID, dto.CloseShiftRequest{CountedCash: "100"})

	suite.Require().Error(err)
	suite.Nil(closed)
	suite.ErrorIs(err, apperrors.ErrInvalidOperation)
	suite.mockShiftRepo.AssertNotCalled(suite.T(), "CloseShift", mock.Anything, mock.Anything)
	suite.mockShiftRepo.AssertNotCalled(suite.T(), "RecomputeShiftTotals", mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestCloseShift_InvalidCountedCash() {
	ctx := context.Background()

	for _, counted := range []string{"", "abc", "-5"} {
		closed, err := suite.service.CloseShift(ctx, uuid.NewString(), suite.userID, dto.CloseShiftRequest{CountedCash: counted})

		suite.Require().Error(err, "countedCash=%q", counted)
		suite.Nil(closed)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}

	suite.mockShiftRepo.AssertNotCalled(suite.T(), "FindShiftByID", mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestCloseShift_AggregatorFailureAborts() {
	ctx := context.Background()
	shift := suite.openShift()
	expectedErr := assert.AnError

	suite.expectOwnership()
	suite.mockShiftRepo.On("FindShiftByID", ctx, shift.ShiftID).Return(shift, nil).Once()
	suite.mockShiftRepo.On("RecomputeShiftTotals", ctx, shift.ShiftID).Return(nil, expectedErr).Once()

	closed, err := suite.service.CloseShift(ctx, shift.ShiftID, suite.userID, dto.CloseShiftRequest{CountedCash: "100"})

	suite.Require().Error(err)
	suite.Nil(closed)
	suite.ErrorIs(err, expectedErr)
	suite.mockShiftRepo.AssertNotCalled(suite.T(), "CloseShift", mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestCloseShift_LostRaceSurfacesInvalidOperation() {
	ctx := context.Background()
	shift := suite.openShift()
	totals := &domain.ShiftTotals{}

	suite.expectOwnership()
	suite.mockShiftRepo.On("FindShiftByID", ctx, shift.ShiftID).Return(shift, nil).Once()
	suite.mockShiftRepo.On("RecomputeShiftTotals", ctx, shift.ShiftID).Return(totals, nil).Once()
	suite.mockShiftRepo.On("CloseShift", ctx, mock.AnythingOfType("domain.ShiftRecord")).
		Return(apperrors.ErrInvalidOperation).Once()

	closed, err := suite.service.CloseShift(ctx, shift.ShiftID, suite.userID, dto.CloseShiftRequest{CountedCash: "50"})

	suite.Require().Error(err)
	suite.Nil(closed)
	suite.ErrorIs(err, apperrors.ErrInvalidOperation)
}

// --- GetShiftByID / ListShifts Tests ---

func (suite *ShiftServiceTestSuite) TestGetShiftByID_Success() {
	ctx := context.Background()
	shift := suite.openShift()

	suite.expectOwnership()
	suite.mockShiftRepo.On("FindShiftByID", ctx, shift.ShiftID).Return(shift, nil).Once()

	got, err := suite.service.GetShiftByID(ctx, shift.ShiftID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(shift.ShiftID, got.ShiftID)
}

func (suite *ShiftServiceTestSuite) TestGetShiftByID_ForbiddenForNonOwner() {
	ctx := context.Background()
	otherUserID := uuid.NewString()
	shift := suite.openShift()

	suite.mockShiftRepo.On("FindShiftByID", ctx, shift.ShiftID).Return(shift, nil).Once()
	suite.mockBusinessSvc.On("AuthorizeBusinessAccess", mock.Anything, otherUserID, suite.businessID).
		Return(nil, apperrors.ErrForbidden).Once()

	got, err := suite.service.GetShiftByID(ctx, shift.ShiftID, otherUserID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ShiftServiceTestSuite) TestListShifts_Success() {
	ctx := context.Background()
	page := []domain.ShiftRecord{*suite.openShift(), *suite.openShift()}
	token := "next-page"

	suite.expectOwnership()
	suite.mockShiftRepo.On("ListShiftsByBusiness", ctx, suite.businessID, 20, (*string)(nil)).
		Return(page, &token, nil).Once()

	shifts, nextToken, err := suite.service.ListShifts(ctx, suite.businessID, suite.userID, 20, nil)

	suite.Require().NoError(err)
	suite.Len(shifts, 2)
	suite.Require().NotNil(nextToken)
	suite.Equal(token, *nextToken)
}

func (suite *ShiftServiceTestSuite) TestListShifts_EmptyNotNil() {
	ctx := context.Background()

	suite.expectOwnership()
	suite.mockShiftRepo.On("ListShiftsByBusiness", ctx, suite.businessID, 20, (*string)(nil)).
		Return(nil, nil, nil).Once()

	shifts, nextToken, err := suite.service.ListShifts(ctx, suite.businessID, suite.userID, 20, nil)

	suite.Require().NoError(err)
	suite.NotNil(shifts)
	suite.Empty(shifts)
	suite.Nil(nextToken)
}

// --- Run Test Suite ---

func TestShiftService(t *testing.T) {
	suite.Run(t, new(ShiftServiceTestSuite))
}
