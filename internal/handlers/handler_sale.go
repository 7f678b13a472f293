package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kudzaim/shopmate_backend/internal/apperrors"
	"github.com/kudzaim/shopmate_backend/internal/core/domain"
	portssvc "github.com/kudzaim/shopmate_backend/internal/core/ports/services"
	"github.com/kudzaim/shopmate_backend/internal/dto"
	"github.com/kudzaim/shopmate_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// saleHandler handles HTTP requests related to sales.
type saleHandler struct {
	saleService  portssvc.SaleSvcFacade
	shiftService portssvc.ShiftSvcFacade
}

// newSaleHandler creates a new saleHandler.
func newSaleHandler(ss portssvc.SaleSvcFacade, shs portssvc.ShiftSvcFacade) *saleHandler {
	return &saleHandler{
		saleService:  ss,
		shiftService: shs,
	}
}

// registerSaleRoutes registers sale routes nested under a specific business.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade, shiftService portssvc.ShiftSvcFacade) {
	h := newSaleHandler(saleService, shiftService)

	rg.POST("/sales", h.recordSale)
	rg.GET("/shifts/:shift_id/sales", h.listShiftSales)
}

// recordSale godoc
// @Summary Record a sale
// @Description Captures a sale against the business's open shift for today, opening the shift if none exists.
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   sale body dto.RecordSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Business not found"
// @Failure 500 {object} map[string]string "Failed to record sale"
// @Security BearerAuth
// @Router /businesses/{business_id}/sales [post]
func (h *saleHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	var req dto.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("business_id", businessID))

	sale, err := h.saleService.RecordSale(c.Request.Context(), businessID, userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Sale rejected by validation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Business not found for sale")
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		} else if errors.Is(err, apperrors.ErrForbidden) {
			logger.Warn("User does not own business")
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		} else {
			logger.Error("Failed to record sale in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record sale"})
		}
		return
	}

	logger.Info("Sale recorded successfully", slog.String("sale_id", sale.SaleID), slog.String("shift_id", sale.ShiftID))
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// listShiftSales godoc
// @Summary List a shift's sales
// @Description Retrieves the sales recorded against a shift, newest first, with token based pagination.
// @Tags sales
// @Produce  json
// @Param   business_id path string true "Business ID"
// @Param   shift_id path string true "Shift ID"
// @Param   limit query int false "Page size (default 50)"
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListSalesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 500 {object} map[string]string "Failed to list sales"
// @Security BearerAuth
// @Router /businesses/{business_id}/shifts/{shift_id}/sales [get]
func (h *saleHandler) listShiftSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")
	shiftID := c.Param("shift_id")

	var params dto.ListSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListShiftSales", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("shift_id", shiftID))

	// Shifts are only addressable under their own business's path.
	shift, err := h.shiftService.GetShiftByID(c.Request.Context(), shiftID, userID)
	if err == nil && shift.BusinessID != businessID {
		logger.Warn("Shift does not belong to business in path", slog.String("business_id", businessID))
		c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		return
	}

	var sales []domain.Sale
	var nextToken *string
	if err == nil {
		sales, nextToken, err = h.saleService.ListShiftSales(c.Request.Context(), shiftID, userID, params.Limit, params.NextToken)
	}
	if err != nil {
		var appErr *apperrors.AppError
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Shift not found for sales listing")
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		} else if errors.Is(err, apperrors.ErrForbidden) {
			logger.Warn("User does not own the shift's business")
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		} else if errors.As(err, &appErr) && appErr.Code == http.StatusBadRequest {
			logger.Warn("Sales listing rejected", slog.String("error", appErr.Message))
			c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
		} else {
			logger.Error("Failed to list sales from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sales"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListSalesResponse(sales, nextToken))
}
