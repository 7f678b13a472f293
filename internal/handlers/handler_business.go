package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kudzaim/shopmate_backend/internal/apperrors"
	portssvc "github.com/kudzaim/shopmate_backend/internal/core/ports/services"
	"github.com/kudzaim/shopmate_backend/internal/dto"
	"github.com/kudzaim/shopmate_backend/internal/middleware"
	"github.com/kudzaim/shopmate_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// businessHandler handles HTTP requests related to business profiles.
type businessHandler struct {
	businessService portssvc.BusinessSvcFacade
	userService     portssvc.UserSvcFacade
	posthogClient   *utils.PosthogClientWrapper
}

// newBusinessHandler creates a new businessHandler.
func newBusinessHandler(bs portssvc.BusinessSvcFacade, us portssvc.UserSvcFacade, posthogClient *utils.PosthogClientWrapper) *businessHandler {
	return &businessHandler{
		businessService: bs,
		userService:     us,
		posthogClient:   posthogClient,
	}
}

// registerBusinessRoutes registers routes for businesses and, nested under a
// specific business, its shifts and sales.
func registerBusinessRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, posthogClient *utils.PosthogClientWrapper) {
	h := newBusinessHandler(services.Business, services.User, posthogClient)

	// Routes for the caller's businesses as a collection
	businessesTopLevel := rg.Group("/businesses")
	{
		businessesTopLevel.POST("", h.createBusiness)
		businessesTopLevel.GET("", h.listBusinesses)
		businessesTopLevel.GET("/limit", h.getBusinessLimit)
		businessesTopLevel.PUT("/active", h.switchActiveBusiness)
	}

	// Routes specific to a single business (identified by business_id)
	businessSpecific := rg.Group("/businesses/:business_id")
	{
		businessSpecific.GET("", h.getBusiness)
		businessSpecific.DELETE("", h.deleteBusiness)

		// -- NESTED SHIFT ROUTES --
		registerShiftRoutes(businessSpecific, services.Shift, posthogClient)

		// -- NESTED SALE ROUTES --
		registerSaleRoutes(businessSpecific, services.Sale, services.Shift)
	}
}

// createBusiness godoc
// @Summary Create a new business
// @Description Creates a new business profile for the caller, subject to the subscription plan limit. The new business does not become active automatically.
// @Tags businesses
// @Accept  json
// @Produce  json
// @Param   business body dto.CreateBusinessRequest true "Business details"
// @Success 201 {object} dto.BusinessResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]interface{} "Plan limit reached"
// @Failure 500 {object} map[string]string "Failed to create business"
// @Security BearerAuth
// @Router /businesses [post]
func (h *businessHandler) createBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBusiness", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Owner user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("owner_user_id", ownerUserID))
	logger.Info("Received request to create business", slog.String("business_name", req.Name))

	newBusiness, err := h.businessService.CreateBusiness(c.Request.Context(), ownerUserID, req)
	if err != nil {
		var limitErr *apperrors.LimitExceededError
		if errors.As(err, &limitErr) {
			logger.Info("Business creation blocked by plan limit", slog.String("plan", limitErr.PlanName))
			// The plan numbers ride along so the client can render an upgrade prompt.
			c.JSON(http.StatusConflict, gin.H{
				"error":         "Business limit reached for your current plan",
				"planName":      limitErr.PlanName,
				"maxBusinesses": limitErr.MaxBusinesses,
				"currentCount":  limitErr.CurrentCount,
			})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Business creation failed validation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create business in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create business"})
		}
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "business_created", map[string]any{
		"business_id":   newBusiness.BusinessID,
		"business_type": string(newBusiness.BusinessType),
		"stage":         string(newBusiness.Stage),
	})

	logger.Info("Business created successfully", slog.String("business_id", newBusiness.BusinessID))
	c.JSON(http.StatusCreated, dto.ToBusinessResponse(newBusiness, nil))
}

// listBusinesses godoc
// @Summary List businesses for current user
// @Description Retrieves every business the authenticated user owns, flagging the active one.
// @Tags businesses
// @Produce  json
// @Success 200 {object} dto.ListBusinessesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list businesses"
// @Security BearerAuth
// @Router /businesses [get]
func (h *businessHandler) listBusinesses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("user_id", userID))

	businesses, err := h.businessService.ListBusinesses(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list businesses from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list businesses"})
		return
	}

	// The active pointer lives on the user record, not the business rows.
	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to load user for active business pointer", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list businesses"})
		return
	}

	logger.Info("Businesses listed successfully", slog.Int("count", len(businesses)))
	c.JSON(http.StatusOK, dto.ToListBusinessesResponse(businesses, user.ActiveBusinessID))
}

// getBusinessLimit godoc
// @Summary Check the business creation limit
// @Description Reports whether the caller's subscription plan allows creating another business, with the current count and ceiling.
// @Tags businesses
// @Produce  json
// @Success 200 {object} dto.BusinessLimitResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to check business limit"
// @Security BearerAuth
// @Router /businesses/limit [get]
func (h *businessHandler) getBusinessLimit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limitInfo, err := h.businessService.CheckBusinessLimit(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to check business limit", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check business limit"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessLimitResponse(limitInfo))
}

// getBusiness godoc
// @Summary Get a business by ID
// @Description Retrieves a single business owned by the caller.
// @Tags businesses
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Success 200 {object} dto.BusinessResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Business not found"
// @Failure 500 {object} map[string]string "Failed to retrieve business"
// @Security BearerAuth
// @Router /businesses/{business_id} [get]
func (h *businessHandler) getBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("business_id", businessID))

	business, err := h.businessService.GetBusinessByID(c.Request.Context(), businessID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Business not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		} else if errors.Is(err, apperrors.ErrForbidden) {
			logger.Warn("User does not own business")
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		} else {
			logger.Error("Failed to get business from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve business"})
		}
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to load user for active business pointer", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve business"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessResponse(business, user.ActiveBusinessID))
}

// switchActiveBusiness godoc
// @Summary Switch the active business
// @Description Points the caller's session at one of their businesses. Switching to the already active business succeeds without change.
// @Tags businesses
// @Accept  json
// @Produce  json
// @Param   target body dto.SwitchActiveBusinessRequest true "Business to activate"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Business not found"
// @Failure 500 {object} map[string]string "Failed to switch active business"
// @Security BearerAuth
// @Router /businesses/active [put]
func (h *businessHandler) switchActiveBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SwitchActiveBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SwitchActiveBusiness", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("business_id", req.BusinessID))
	logger.Info("Received request to switch active business")

	if err := h.businessService.SwitchActiveBusiness(c.Request.Context(), userID, req.BusinessID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Switch failed: business not found for user")
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		} else {
			logger.Error("Failed to switch active business in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to switch active business"})
		}
		return
	}

	logger.Info("Active business switched successfully")
	c.Status(http.StatusNoContent)
}

// deleteBusiness godoc
// @Summary Delete a business
// @Description Deletes a business together with all of its shifts and sales. The active business cannot be deleted.
// @Tags businesses
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Business not found"
// @Failure 409 {object} map[string]string "Business is active"
// @Failure 500 {object} map[string]string "Failed to delete business"
// @Security BearerAuth
// @Router /businesses/{business_id} [delete]
func (h *businessHandler) deleteBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("business_id", businessID))
	logger.Info("Received request to delete business")

	if err := h.businessService.DeleteBusiness(c.Request.Context(), userID, businessID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Delete failed: business not found for user")
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		} else if errors.Is(err, apperrors.ErrInvalidOperation) {
			logger.Warn("Delete failed: business is active")
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete the active business, switch to another business first"})
		} else {
			logger.Error("Failed to delete business in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete business"})
		}
		return
	}

	logger.Info("Business deleted successfully")
	c.Status(http.StatusNoContent)
}
