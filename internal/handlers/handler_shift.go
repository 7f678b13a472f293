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
	"github.com/kudzaim/shopmate_backend/internal/utils/accounting"

	"github.com/gin-gonic/gin"
)

// shiftHandler handles HTTP requests related to POS shifts.
type shiftHandler struct {
	shiftService  portssvc.ShiftSvcFacade
	posthogClient *utils.PosthogClientWrapper
}

// newShiftHandler creates a new shiftHandler.
func newShiftHandler(ss portssvc.ShiftSvcFacade, posthogClient *utils.PosthogClientWrapper) *shiftHandler {
	return &shiftHandler{
		shiftService:  ss,
		posthogClient: posthogClient,
	}
}

// registerShiftRoutes registers shift routes nested under a specific business.
func registerShiftRoutes(rg *gin.RouterGroup, shiftService portssvc.ShiftSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := newShiftHandler(shiftService, posthogClient)

	shifts := rg.Group("/shifts")
	{
		shifts.GET("", h.listShifts)
		shifts.GET("/today", h.getTodayShift)
		shifts.GET("/:shift_id", h.getShift)
		shifts.POST("/:shift_id/refresh-totals", h.refreshShiftTotals)
		shifts.POST("/:shift_id/close", h.closeShift)
	}
}

// getTodayShift godoc
// @Summary Get or open today's shift
// @Description Returns the business's open shift for today, opening one if none exists. A new shift's opening float carries over from the last closed shift's counted cash.
// @Tags shifts
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Success 200 {object} dto.ShiftResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Business not found"
// @Failure 500 {object} map[string]string "Failed to get today's shift"
// @Security BearerAuth
// @Router /businesses/{business_id}/shifts/today [get]
func (h *shiftHandler) getTodayShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("business_id", businessID))

	shift, err := h.shiftService.GetOrCreateTodayShift(c.Request.Context(), businessID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Business not found for today's shift")
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		} else if errors.Is(err, apperrors.ErrForbidden) {
			logger.Warn("User does not own business")
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		} else {
			logger.Error("Failed to get or open today's shift", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get today's shift"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// listShifts godoc
// @Summary List shift history
// @Description Retrieves the business's shifts newest first, with token based pagination.
// @Tags shifts
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   limit query int false "Page size (default 20)"
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListShiftsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Business not found"
// @Failure 500 {object} map[string]string "Failed to list shifts"
// @Security BearerAuth
// @Router /businesses/{business_id}/shifts [get]
func (h *shiftHandler) listShifts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	var params dto.ListShiftsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListShifts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("business_id", businessID))

	shifts, nextToken, err := h.shiftService.ListShifts(c.Request.Context(), businessID, userID, params.Limit, params.NextToken)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Business not found for shift listing")
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		} else if errors.Is(err, apperrors.ErrForbidden) {
			logger.Warn("User does not own business")
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		} else if errors.As(err, &appErr) && appErr.Code == http.StatusBadRequest {
			logger.Warn("Shift listing rejected", slog.String("error", appErr.Message))
			c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
		} else {
			logger.Error("Failed to list shifts from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list shifts"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListShiftsResponse(shifts, nextToken))
}

// getShift godoc
// @Summary Get a shift by ID
// @Description Retrieves a single shift belonging to the business in the path.
// @Tags shifts
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   shift_id path string true "Shift ID"
// @Success 200 {object} dto.ShiftResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 500 {object} map[string]string "Failed to retrieve shift"
// @Security BearerAuth
// @Router /businesses/{business_id}/shifts/{shift_id} [get]
func (h *shiftHandler) getShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	shiftID := c.Param("shift_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("shift_id", shiftID))

	shift, err := h.shiftService.GetShiftByID(c.Request.Context(), shiftID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Shift not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		} else if errors.Is(err, apperrors.ErrForbidden) {
			logger.Warn("User does not own the shift's business")
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		} else {
			logger.Error("Failed to get shift from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve shift"})
		}
		return
	}

	// Shifts are only addressable under their own business's path.
	if shift.BusinessID != businessID {
		logger.Warn("Shift does not belong to business in path", slog.String("business_id", businessID))
		c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// refreshShiftTotals godoc
// @Summary Refresh a shift's running totals
// @Description Re-aggregates the shift's sales and returns the updated totals. Refreshing a closed shift returns the frozen record unchanged.
// @Tags shifts
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   shift_id path string true "Shift ID"
// @Success 200 {object} dto.ShiftResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 500 {object} map[string]string "Failed to refresh shift totals"
// @Security BearerAuth
// @Router /businesses/{business_id}/shifts/{shift_id}/refresh-totals [post]
func (h *shiftHandler) refreshShiftTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	shiftID := c.Param("shift_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("shift_id", shiftID))

	// Resolve the shift first so a wrong business path never touches it.
	shift, err := h.shiftService.GetShiftByID(c.Request.Context(), shiftID, userID)
	if err == nil && shift.BusinessID != businessID {
		logger.Warn("Shift does not belong to business in path", slog.String("business_id", businessID))
		c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		return
	}
	if err == nil {
		shift, err = h.shiftService.RefreshShiftTotals(c.Request.Context(), shiftID, userID)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Shift not found for totals refresh")
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		} else if errors.Is(err, apperrors.ErrForbidden) {
			logger.Warn("User does not own the shift's business")
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		} else {
			logger.Error("Failed to refresh shift totals", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh shift totals"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// closeShift godoc
// @Summary Close a shift
// @Description Runs the day-end flow: refreshes totals, reconciles the counted drawer against expected cash and closes the shift. Closing is terminal.
// @Tags shifts
// @Accept  json
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   shift_id path string true "Shift ID"
// @Param   close body dto.CloseShiftRequest true "Counted drawer cash and notes"
// @Success 200 {object} dto.ShiftResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 409 {object} map[string]string "Shift is already closed"
// @Failure 500 {object} map[string]string "Failed to close shift"
// @Security BearerAuth
// @Router /businesses/{business_id}/shifts/{shift_id}/close [post]
func (h *shiftHandler) closeShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	shiftID := c.Param("shift_id")

	var req dto.CloseShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CloseShift", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("shift_id", shiftID))
	logger.Info("Received request to close shift")

	// Resolve the shift first so a wrong business path never closes it.
	shift, err := h.shiftService.GetShiftByID(c.Request.Context(), shiftID, userID)
	if err == nil && shift.BusinessID != businessID {
		logger.Warn("Shift does not belong to business in path", slog.String("business_id", businessID))
		c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		return
	}
	if err == nil {
		shift, err = h.shiftService.CloseShift(c.Request.Context(), shiftID, userID, req)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Close rejected by validation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrInvalidOperation) {
			logger.Warn("Close rejected: shift already closed")
			c.JSON(http.StatusConflict, gin.H{"error": "Shift is already closed"})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Shift not found for close")
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		} else if errors.Is(err, apperrors.ErrForbidden) {
			logger.Warn("User does not own the shift's business")
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		} else {
			logger.Error("Failed to close shift in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close shift"})
		}
		return
	}

	if shift.CashDiscrepancy != nil {
		middleware.PosthogEvent(c, h.posthogClient, "shift_closed", map[string]any{
			"business_id":    shift.BusinessID,
			"shift_id":       shift.ShiftID,
			"classification": string(accounting.Classify(*shift.CashDiscrepancy)),
			"discrepancy":    utils.FormatMoney(*shift.CashDiscrepancy),
		})
	}

	logger.Info("Shift closed successfully", slog.String("business_id", shift.BusinessID))
	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}
