package services

import (
	"context"

	"github.com/kudzaim/shopmate_backend/internal/core/domain"
	"github.com/kudzaim/shopmate_backend/internal/dto"
)

// ShiftReaderSvc defines read operations for shift records
type ShiftReaderSvc interface {
	// GetShiftByID retrieves a shift, verifying the business it belongs to is
	// owned by the requesting user.
	GetShiftByID(ctx context.Context, shiftID string, requestingUserID string) (*domain.ShiftRecord, error)

	// ListShifts retrieves a business's shift history newest first, using
	// token based pagination.
	ListShifts(ctx context.Context, businessID string, requestingUserID string, limit int, nextToken *string) ([]domain.ShiftRecord, *string, error)
}

// ShiftWriterSvc defines write operations for shift records
type ShiftWriterSvc interface {
	// GetOrCreateTodayShift returns the open shift for the business today,
	// creating one if none exists. A new shift's opening float is seeded from
	// the last closed shift's counted cash, or zero for a first shift.
	GetOrCreateTodayShift(ctx context.Context, businessID string, requestingUserID string) (*domain.ShiftRecord, error)

	// RefreshShiftTotals re-aggregates the shift's sales and updates the
	// stored totals. On a closed shift it is a no-op returning the frozen record.
	RefreshShiftTotals(ctx context.Context, shiftID string, requestingUserID string) (*domain.ShiftRecord, error)

	// CloseShift reconciles the counted drawer against expectation and closes
	// the shift. Closing is terminal; closing an already closed shift fails
	// with ErrInvalidOperation.
	CloseShift(ctx context.Context, shiftID string, requestingUserID string, req dto.CloseShiftRequest) (*domain.ShiftRecord, error)
}

// ShiftSvcFacade combines all shift-related service interfaces
// This is a facade for clients that need access to all operations
type ShiftSvcFacade interface {
	ShiftReaderSvc
	ShiftWriterSvc
}
