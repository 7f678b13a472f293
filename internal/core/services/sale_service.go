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

// saleService implements the SaleSvcFacade interface
type saleService struct {
	BaseService
	saleRepo  portsrepo.SaleRepositoryFacade
	shiftSvc  portssvc.ShiftSvcFacade
	publisher events.Publisher
}

// NewSaleService creates a new sale service. The publisher may be nil.
func NewSaleService(
	saleRepo portsrepo.SaleRepositoryFacade,
	shiftSvc portssvc.ShiftSvcFacade,
	publisher events.Publisher,
) portssvc.SaleSvcFacade {
	return &saleService{
		saleRepo:  saleRepo,
		shiftSvc:  shiftSvc,
		publisher: publisher,
	}
}

// Ensure saleService implements the SaleSvcFacade interface
var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// RecordSale parses and validates the sale, attaches it to today's open shift
// for the business (opening one if needed) and persists it. Refreshing the
// shift's stored totals is left to the totals refresh flow.
func (s *saleService) RecordSale(ctx context.Context, businessID string, requestingUserID string, req dto.RecordSaleRequest) (*domain.Sale, error) {
	amount, err := utils.ParseAmount(req.Amount)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("invalid amount: " + err.Error())
	}
	discount, err := utils.ParseOptionalAmount(req.Discount)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("invalid discount: " + err.Error())
	}

	now := time.Now()
	sale := domain.Sale{
		SaleID:        uuid.NewString(),
		BusinessID:    businessID,
		Amount:        amount,
		Discount:      discount,
		TenderType:    domain.TenderType(req.TenderType),
		ReceiptNumber: req.ReceiptNumber,
		Note:          req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	// Validate before touching the ledger so a rejected sale never opens a shift.
	if err := sale.Validate(); err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}

	shift, err := s.shiftSvc.GetOrCreateTodayShift(ctx, businessID, requestingUserID)
	if err != nil {
		return nil, err
	}
	sale.ShiftID = shift.ShiftID

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		s.LogError(ctx, err, "Failed to save sale",
			slog.String("sale_id", sale.SaleID),
			slog.String("shift_id", shift.ShiftID))
		return nil, err
	}

	if s.publisher != nil {
		s.publisher.Produce(events.SaleRecorded, businessID, sale.SaleID, sale)
	}

	s.LogInfo(ctx, "Sale recorded",
		slog.String("sale_id", sale.SaleID),
		slog.String("shift_id", shift.ShiftID),
		slog.String("tender_type", string(sale.TenderType)),
		slog.String("amount", amount.String()))
	return &sale, nil
}

// ListShiftSales retrieves a shift's sales newest first. Ownership of the
// shift's business is checked before any rows are read.
func (s *saleService) ListShiftSales(ctx context.Context, shiftID string, requestingUserID string, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	if _, err := s.shiftSvc.GetShiftByID(ctx, shiftID, requestingUserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrForbidden) {
			s.LogError(ctx, err, "Failed to load shift for sales listing",
				slog.String("shift_id", shiftID))
		}
		return nil, nil, err
	}

	sales, newNextToken, err := s.saleRepo.ListSalesByShift(ctx, shiftID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales for shift",
			slog.String("shift_id", shiftID))
		return nil, nil, err
	}

	if sales == nil {
		sales = []domain.Sale{}
	}

	return sales, newNextToken, nil
}
