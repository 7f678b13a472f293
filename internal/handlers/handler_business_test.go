package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kudzaim/shopmate_backend/internal/apperrors"
	"github.com/kudzaim/shopmate_backend/internal/core/domain"
	portssvc "github.com/kudzaim/shopmate_backend/internal/core/ports/services"
	"github.com/kudzaim/shopmate_backend/internal/dto"
	"github.com/kudzaim/shopmate_backend/internal/handlers"
	"github.com/kudzaim/shopmate_backend/internal/platform/config"
	"github.com/kudzaim/shopmate_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}
func (m *MockUserService) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockUserService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	args := m.Called(ctx, userID, requestingUserID)
	return args.Error(0)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error) {
	args := m.Called(ctx, userID, refreshTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock GoogleAuthService ---
type MockGoogleAuthService struct {
	mock.Mock
}

func (m *MockGoogleAuthService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *MockGoogleAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	args := m.Called(ctx, state)
	return args.String(0)
}
func (m *MockGoogleAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}
func (m *MockGoogleAuthService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoogleUserInfo), args.Error(1)
}
func (m *MockGoogleAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

var _ portssvc.GoogleOAuthHandlerSvcFacade = (*MockGoogleAuthService)(nil)

// --- Mock BusinessService ---
type MockBusinessService struct {
	mock.Mock
}

func (m *MockBusinessService) GetBusinessByID(ctx context.Context, businessID string, requestingUserID string) (*domain.BusinessProfile, error) {
	args := m.Called(ctx, businessID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessProfile), args.Error(1)
}
func (m *MockBusinessService) ListBusinesses(ctx context.Context, userID string) ([]domain.BusinessProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BusinessProfile), args.Error(1)
}
func (m *MockBusinessService) CheckBusinessLimit(ctx context.Context, userID string) (*domain.BusinessLimitInfo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessLimitInfo), args.Error(1)
}
func (m *MockBusinessService) AuthorizeBusinessAccess(ctx context.Context, userID string, businessID string) (*domain.BusinessProfile, error) {
	args := m.Called(ctx, userID, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessProfile), args.Error(1)
}
func (m *MockBusinessService) CreateBusiness(ctx context.Context, ownerUserID string, req dto.CreateBusinessRequest) (*domain.BusinessProfile, error) {
	args := m.Called(ctx, ownerUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessProfile), args.Error(1)
}
func (m *MockBusinessService) SwitchActiveBusiness(ctx context.Context, userID string, businessID string) error {
	args := m.Called(ctx, userID, businessID)
	return args.Error(0)
}
func (m *MockBusinessService) DeleteBusiness(ctx context.Context, userID string, businessID string) error {
	args := m.Called(ctx, userID, businessID)
	return args.Error(0)
}

var _ portssvc.BusinessSvcFacade = (*MockBusinessService)(nil)

// --- Mock ShiftService ---
type MockShiftService struct {
	mock.Mock
}

func (m *MockShiftService) GetShiftByID(ctx context.Context, shiftID string, requestingUserID string) (*domain.ShiftRecord, error) {
	args := m.Called(ctx, shiftID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftRecord), args.Error(1)
}
func (m *MockShiftService) ListShifts(ctx context.Context, businessID string, requestingUserID string, limit int, nextToken *string) ([]domain.ShiftRecord, *string, error) {
	args := m.Called(ctx, businessID, requestingUserID, limit, nextToken)
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
func (m *MockShiftService) GetOrCreateTodayShift(ctx context.Context, businessID string, requestingUserID string) (*domain.ShiftRecord, error) {
	args := m.Called(ctx, businessID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftRecord), args.Error(1)
}
func (m *MockShiftService) RefreshShiftTotals(ctx context.Context, shiftID string, requestingUserID string) (*domain.ShiftRecord, error) {
	args := m.Called(ctx, shiftID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftRecord), args.Error(1)
}
func (m *MockShiftService) CloseShift(ctx context.Context, shiftID string, requestingUserID string, req dto.CloseShiftRequest) (*domain.ShiftRecord, error) {
	args := m.Called(ctx, shiftID, requestingUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftRecord), args.Error(1)
}

var _ portssvc.ShiftSvcFacade = (*MockShiftService)(nil)

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) ListShiftSales(ctx context.Context, shiftID string, requestingUserID string, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	args := m.Called(ctx, shiftID, requestingUserID, limit, nextToken)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return sales, token, args.Error(2)
}
func (m *MockSaleService) RecordSale(ctx context.Context, businessID string, requestingUserID string, req dto.RecordSaleRequest) (*domain.Sale, error) {
	args := m.Called(ctx, businessID, requestingUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)

// newTestRouter wires the real route tree (auth middleware included) against
// mock services. IsProduction skips the swagger mount.
func newTestRouter(jwtSecret string, services *portssvc.ServiceContainer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{JWTSecret: jwtSecret, IsProduction: true}
	handlers.RegisterRoutes(r, cfg, services, &utils.PosthogClientWrapper{})
	return r
}

// generateTestToken creates a signed JWT the auth middleware accepts.
func generateTestToken(t *testing.T, jwtSecret string, userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "shopmate-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return signed
}

// doAuthedRequest performs a request as userID, marshalling body when present.
func doAuthedRequest(t *testing.T, router *gin.Engine, jwtSecret, method, url, userID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+generateTestToken(t, jwtSecret, userID))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func strPtr(s string) *string {
	return &s
}

// --- Test Suite ---
type BusinessHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockBusinessService *MockBusinessService
	mockUserService     *MockUserService
	jwtSecret           string
}

func (suite *BusinessHandlerTestSuite) SetupTest() {
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockBusinessService = new(MockBusinessService)
	suite.mockUserService = new(MockUserService)

	suite.router = newTestRouter(suite.jwtSecret, &portssvc.ServiceContainer{
		User:       suite.mockUserService,
		Token:      new(MockTokenService),
		GoogleAuth: new(MockGoogleAuthService),
		Business:   suite.mockBusinessService,
		Shift:      new(MockShiftService),
		Sale:       new(MockSaleService),
	})
}

func (suite *BusinessHandlerTestSuite) doRequest(method, url, userID string, body any) *httptest.ResponseRecorder {
	return doAuthedRequest(suite.T(), suite.router, suite.jwtSecret, method, url, userID, body)
}

// --- Test Cases ---

func (suite *BusinessHandlerTestSuite) TestCreateBusiness_Success() {
	userID := uuid.NewString()
	businessID := uuid.NewString()

	reqBody := dto.CreateBusinessRequest{
		Name:            "Mai Tawanda's Shop",
		OwnerName:       "Tawanda M",
		BusinessType:    "RETAIL",
		Stage:           "RUNNING",
		Location:        "Harare",
		StartingCapital: "150.00",
		CurrencyCode:    "USD",
	}
	expected := &domain.BusinessProfile{
		BusinessID:      businessID,
		OwnerUserID:     userID,
		Name:            reqBody.Name,
		OwnerName:       reqBody.OwnerName,
		BusinessType:    domain.BusinessRetail,
		Stage:           domain.StageRunning,
		Location:        reqBody.Location,
		StartingCapital: decimal.RequireFromString("150.00"),
		CurrencyCode:    "USD",
	}

	suite.mockBusinessService.On("CreateBusiness",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		mock.MatchedBy(func(r dto.CreateBusinessRequest) bool { return r.Name == reqBody.Name }),
	).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/businesses", userID, reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.BusinessResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(businessID, resp.BusinessID)
	// A freshly created business is never the active one.
	suite.False(resp.IsActive)
	suite.mockBusinessService.AssertExpectations(suite.T())
}

func (suite *BusinessHandlerTestSuite) TestCreateBusiness_PlanLimitReached() {
	userID := uuid.NewString()

	reqBody := dto.CreateBusinessRequest{
		Name:         "Second Venture",
		OwnerName:    "Tawanda M",
		BusinessType: "SERVICES",
		Stage:        "IDEA",
		Location:     "Bulawayo",
		CurrencyCode: "USD",
	}

	suite.mockBusinessService.On("CreateBusiness",
		mock.AnythingOfType("*context.valueCtx"), userID, mock.Anything,
	).Return(nil, apperrors.NewLimitExceededError("FREE", 1, 1)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/businesses", userID, reqBody)

	suite.Equal(http.StatusConflict, w.Code)
	var resp map[string]any
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("FREE", resp["planName"])
	suite.Equal(float64(1), resp["maxBusinesses"])
	suite.Equal(float64(1), resp["currentCount"])
	suite.mockBusinessService.AssertExpectations(suite.T())
}

func (suite *BusinessHandlerTestSuite) TestCreateBusiness_InvalidBody() {
	userID := uuid.NewString()

	// Missing required fields and an unknown business type.
	w := suite.doRequest(http.MethodPost, "/api/v1/businesses", userID, map[string]string{
		"name":         "No Type Shop",
		"businessType": "SPACESHIP",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBusinessService.AssertNotCalled(suite.T(), "CreateBusiness")
}

func (suite *BusinessHandlerTestSuite) TestListBusinesses_FlagsActiveBusiness() {
	userID := uuid.NewString()
	firstID := uuid.NewString()
	secondID := uuid.NewString()

	businesses := []domain.BusinessProfile{
		{BusinessID: firstID, OwnerUserID: userID, Name: "First", BusinessType: domain.BusinessRetail, Stage: domain.StageRunning, CurrencyCode: "USD"},
		{BusinessID: secondID, OwnerUserID: userID, Name: "Second", BusinessType: domain.BusinessSalon, Stage: domain.StageGrowing, CurrencyCode: "USD"},
	}
	user := &domain.User{UserID: userID, Username: "tawanda", ActiveBusinessID: strPtr(secondID)}

	suite.mockBusinessService.On("ListBusinesses", mock.AnythingOfType("*context.valueCtx"), userID).
		Return(businesses, nil).Once()
	suite.mockUserService.On("GetUserByID", mock.AnythingOfType("*context.valueCtx"), userID).
		Return(user, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/businesses", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListBusinessesResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Businesses, 2)
	suite.False(resp.Businesses[0].IsActive)
	suite.True(resp.Businesses[1].IsActive)
	suite.mockBusinessService.AssertExpectations(suite.T())
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *BusinessHandlerTestSuite) TestGetBusinessLimit_Success() {
	userID := uuid.NewString()

	suite.mockBusinessService.On("CheckBusinessLimit", mock.AnythingOfType("*context.valueCtx"), userID).
		Return(&domain.BusinessLimitInfo{CanCreate: false, CurrentCount: 1, MaxBusinesses: 1, PlanName: "FREE"}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/businesses/limit", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BusinessLimitResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.CanCreate)
	suite.Equal(1, resp.MaxBusinesses)
	suite.Equal("FREE", resp.PlanName)
}

func (suite *BusinessHandlerTestSuite) TestSwitchActiveBusiness_NotOwned() {
	userID := uuid.NewString()
	businessID := uuid.NewString()

	suite.mockBusinessService.On("SwitchActiveBusiness", mock.AnythingOfType("*context.valueCtx"), userID, businessID).
		Return(fmt.Errorf("business not found: %w", apperrors.ErrNotFound)).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/businesses/active", userID, dto.SwitchActiveBusinessRequest{BusinessID: businessID})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockBusinessService.AssertExpectations(suite.T())
}

func (suite *BusinessHandlerTestSuite) TestSwitchActiveBusiness_Success() {
	userID := uuid.NewString()
	businessID := uuid.NewString()

	suite.mockBusinessService.On("SwitchActiveBusiness", mock.AnythingOfType("*context.valueCtx"), userID, businessID).
		Return(nil).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/businesses/active", userID, dto.SwitchActiveBusinessRequest{BusinessID: businessID})

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockBusinessService.AssertExpectations(suite.T())
}

func (suite *BusinessHandlerTestSuite) TestDeleteBusiness_ActiveBusinessRejected() {
	userID := uuid.NewString()
	businessID := uuid.NewString()

	suite.mockBusinessService.On("DeleteBusiness", mock.AnythingOfType("*context.valueCtx"), userID, businessID).
		Return(fmt.Errorf("cannot delete active business: %w", apperrors.ErrInvalidOperation)).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/businesses/"+businessID, userID, nil)

	suite.Equal(http.StatusConflict, w.Code)
	var resp map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp["error"], "switch to another business")
	suite.mockBusinessService.AssertExpectations(suite.T())
}

func (suite *BusinessHandlerTestSuite) TestMissingToken_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/businesses", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockBusinessService.AssertNotCalled(suite.T(), "ListBusinesses")
}

// --- Run Test Suite ---
func TestBusinessHandler(t *testing.T) {
	suite.Run(t, new(BusinessHandlerTestSuite))
}
