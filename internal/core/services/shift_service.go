package services

import (
	"context"
	"errors"
	"fmt"
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
	"github.com/kudzaim/shopmate_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// shiftService implements the ShiftSvcFacade interface
type shiftService struct {
	BaseService
	shiftRepo   portsrepo.ShiftRepositoryFacade
	businessSvc portssvc.BusinessReaderSvc
	publisher   events.Publisher
	loc         *time.Location
}

// NewShiftService creates a new shift service. The location decides where the
// business day rolls over; it defaults to UTC. The publisher may be nil.
func NewShiftService(
	shiftRepo portsrepo.ShiftRepositoryFacade,
	businessSvc portssvc.BusinessReaderSvc,
	publisher events.Publisher,
	loc *time.Location,
) portssvc.ShiftSvcFacade {
	if loc == nil {
		loc = time.UTC
	}
	return &shiftService{
		shiftRepo:   shiftRepo,
		businessSvc: businessSvc,
		publisher:   publisher,
		loc:         loc,
	}
}

// Ensure shiftService implements the ShiftSvcFacade interface
var _ portssvc.ShiftSvcFacade = (*shiftService)(nil)

// businessDay returns today's calendar date in the configured location,
// normalized to UTC midnight so it maps cleanly onto the DATE column.
func (s *shiftService) businessDay() time.Time {
	now := time.Now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// GetShiftByID retrieves a shift after checking the caller owns its business.
func (s *shiftService) GetShiftByID(ctx context.Context, shiftID string, requestingUserID string) (*domain.ShiftRecord, error) {
	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find shift by ID",
				slog.String("shift_id", shiftID))
		}
		return nil, err
	}

	if _, err := s.businessSvc.AuthorizeBusinessAccess(ctx, requestingUserID, shift.BusinessID); err != nil {
		return nil, err
	}

	return shift, nil
}

// ListShifts retrieves a business's shift history newest first.
func (s *shiftService) ListShifts(ctx context.Context, businessID string, requestingUserID string, limit int, nextToken *string) ([]domain.ShiftRecord, *string, error) {
	if _, err := s.businessSvc.AuthorizeBusinessAccess(ctx, requestingUserID, businessID); err != nil {
		return nil, nil, err
	}

	shifts, newNextToken, err := s.shiftRepo.ListShiftsByBusiness(ctx, businessID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shifts for business",
			slog.String("business_id", businessID))
		return nil, nil, err
	}

	if shifts == nil {
		shifts = []domain.ShiftRecord{}
	}

	return shifts, newNextToken, nil
}

// GetOrCreateTodayShift returns the business's open shift for today, creating
// one when none exists. The opening float of a new shift is seeded from the
// most recently closed shift's counted cash, or zero for a first shift. Losing
// the creation race to a concurrent caller is resolved by returning the
// winner's shift, so repeated calls within a day always yield the same record.
func (s *shiftService) GetOrCreateTodayShift(ctx context.Context, businessID string, requestingUserID string) (*domain.ShiftRecord, error) {
	business, err := s.businessSvc.AuthorizeBusinessAccess(ctx, requestingUserID, businessID)
	if err != nil {
		return nil, err
	}

	today := s.businessDay()

	shift, err := s.shiftRepo.FindOpenShift(ctx, businessID, today)
	if err == nil {
		return shift, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up open shift",
			slog.String("business_id", businessID))
		return nil, err
	}

	openingCash := decimal.Zero
	lastClosed, err := s.shiftRepo.FindLatestClosedShift(ctx, businessID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up latest closed shift",
				slog.String("business_id", businessID))
			return nil, err
		}
	} else if lastClosed.ActualCash != nil {
		openingCash = *lastClosed.ActualCash
	}

	now := time.Now()
	newShift := domain.ShiftRecord{
		ShiftID:      uuid.NewString(),
		BusinessID:   businessID,
		ShiftDate:    today,
		StartTime:    now,
		Status:       domain.ShiftOpen,
		OpeningCash:  openingCash,
		ExpectedCash: openingCash,
		CurrencyCode: business.CurrencyCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.shiftRepo.SaveShift(ctx, newShift); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// Another caller created today's shift first; theirs is authoritative.
			s.LogDebug(ctx, "Lost shift creation race, returning existing open shift",
				slog.String("business_id", businessID))
			return s.shiftRepo.FindOpenShift(ctx, businessID, today)
		}
		s.LogError(ctx, err, "Failed to save new shift",
			slog.String("business_id", businessID),
			slog.String("shift_id", newShift.ShiftID))
		return nil, err
	}

	if s.publisher != nil {
		s.publisher.Produce(events.ShiftOpened, businessID, newShift.ShiftID, newShift)
	}

	s.LogInfo(ctx, "Shift opened",
		slog.String("shift_id", newShift.ShiftID),
		slog.String("business_id", businessID),
		slog.String("opening_cash", openingCash.String()))
	return &newShift, nil
}

// RefreshShiftTotals re-aggregates the shift's sales and persists the derived
// fields. Closed shifts are immutable financial history, so refreshing one is
// a no-op that returns the stored record.
func (s *shiftService) RefreshShiftTotals(ctx context.Context, shiftID string, requestingUserID string) (*domain.ShiftRecord, error) {
	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find shift for totals refresh",
				slog.String("shift_id", shiftID))
		}
		return nil, err
	}

	if _, err := s.businessSvc.AuthorizeBusinessAccess(ctx, requestingUserID, shift.BusinessID); err != nil {
		return nil, err
	}

	if !shift.IsOpen() {
		s.LogDebug(ctx, "Totals refresh requested on closed shift, returning stored record",
			slog.String("shift_id", shiftID))
		return shift, nil
	}

	totals, err := s.shiftRepo.RecomputeShiftTotals(ctx, shiftID)
	if err != nil {
		s.LogError(ctx, err, "Failed to recompute shift totals",
			slog.String("shift_id", shiftID))
		return nil, err
	}

	shift.ApplyTotals(*totals)
	shift.LastUpdatedAt = time.Now()
	shift.LastUpdatedBy = requestingUserID

	if err := s.shiftRepo.UpdateShiftTotals(ctx, *shift); err != nil {
		if errors.Is(err, apperrors.ErrInvalidOperation) {
			// The shift was closed between our read and write; the closed
			// record is authoritative.
			return s.shiftRepo.FindShiftByID(ctx, shiftID)
		}
		s.LogError(ctx, err, "Failed to persist refreshed shift totals",
			slog.String("shift_id", shiftID))
		return nil, err
	}

	return shift, nil
}

// CloseShift runs the day-end flow: a final totals refresh, reconciliation of
// the counted drawer against expected cash, and the single open to closed
// transition. A second close attempt fails with ErrInvalidOperation.
func (s *shiftService) CloseShift(ctx context.Context, shiftID string, requestingUserID string, req dto.CloseShiftRequest) (*domain.ShiftRecord, error) {
	countedCash, err := utils.ParseAmount(req.CountedCash)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("invalid counted cash: " + err.Error())
	}

	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find shift for close",
				slog.String("shift_id", shiftID))
		}
		return nil, err
	}

	if _, err := s.businessSvc.AuthorizeBusinessAccess(ctx, requestingUserID, shift.BusinessID); err != nil {
		return nil, err
	}

	if !shift.IsOpen() {
		return nil, fmt.Errorf("%w: shift %s is already closed", apperrors.ErrInvalidOperation, shiftID)
	}

	// Totals must be fresh at the moment of reconciliation. If the aggregator
	// fails the close is aborted rather than closed on stale sums.
	totals, err := s.shiftRepo.RecomputeShiftTotals(ctx, shiftID)
	if err != nil {
		s.LogError(ctx, err, "Failed to recompute totals during close",
			slog.String("shift_id", shiftID))
		return nil, err
	}
	shift.ApplyTotals(*totals)

	result := accounting.Reconcile(shift.ExpectedCash, countedCash)

	now := time.Now()
	shift.Status = domain.ShiftClosed
	shift.EndTime = &now
	shift.ActualCash = &countedCash
	shift.CashDiscrepancy = &result.Discrepancy
	shift.Notes = req.Notes
	shift.DiscrepancyNotes = req.DiscrepancyNotes
	shift.LastUpdatedAt = now
	shift.LastUpdatedBy = requestingUserID

	if err := s.shiftRepo.CloseShift(ctx, *shift); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInvalidOperation) {
			s.LogError(ctx, err, "Failed to close shift",
				slog.String("shift_id", shiftID))
		}
		return nil, err
	}

	if !result.Discrepancy.IsZero() && req.DiscrepancyNotes == "" {
		s.LogInfo(ctx, "Shift closed with unexplained cash discrepancy",
			slog.String("shift_id", shiftID),
			slog.String("discrepancy", result.Discrepancy.String()))
	}

	if s.publisher != nil {
		s.publisher.Produce(events.ShiftClosed, shift.BusinessID, shift.ShiftID, shift)
	}

	s.LogInfo(ctx, "Shift closed",
		slog.String("shift_id", shiftID),
		slog.String("business_id", shift.BusinessID),
		slog.String("expected_cash", shift.ExpectedCash.String()),
		slog.String("counted_cash", countedCash.String()),
		slog.String("classification", string(result.Classification)))
	return shift, nil
}
