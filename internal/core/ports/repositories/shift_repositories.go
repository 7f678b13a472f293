package repositories

import (
	"context"
	"time"

	"github.com/kudzaim/shopmate_backend/internal/core/domain"
)

// ShiftReader defines read operations for shift records
type ShiftReader interface {
	// FindShiftByID retrieves a specific shift by its ID.
	FindShiftByID(ctx context.Context, shiftID string) (*domain.ShiftRecord, error)

	// FindOpenShift retrieves the open shift for a business on a calendar
	// date. Returns ErrNotFound when no shift is open for that date.
	FindOpenShift(ctx context.Context, businessID string, shiftDate time.Time) (*domain.ShiftRecord, error)

	// FindLatestClosedShift retrieves the most recently closed shift for a
	// business, used to seed the next day's opening float. Returns
	// ErrNotFound when the business has never closed a shift.
	FindLatestClosedShift(ctx context.Context, businessID string) (*domain.ShiftRecord, error)

	// ListShiftsByBusiness retrieves shifts newest first, using token based
	// pagination. Returns the page and the token for the next one.
	ListShiftsByBusiness(ctx context.Context, businessID string, limit int, nextToken *string) ([]domain.ShiftRecord, *string, error)
}

// ShiftWriter defines write operations for shift records
type ShiftWriter interface {
	// SaveShift persists a new shift. Returns ErrConflict when an open shift
	// already exists for the same business and date, which callers resolve
	// by re-reading the winner.
	SaveShift(ctx context.Context, shift domain.ShiftRecord) error

	// UpdateShiftTotals stores refreshed sales aggregates and the derived
	// expected cash on an open shift.
	UpdateShiftTotals(ctx context.Context, shift domain.ShiftRecord) error

	// CloseShift persists the closing fields of the shift. The update is
	// guarded on status so a shift can only ever be closed once; a lost race
	// surfaces as ErrInvalidOperation.
	CloseShift(ctx context.Context, shift domain.ShiftRecord) error
}

// ShiftTotalsSource aggregates recorded sales into per-tender totals.
type ShiftTotalsSource interface {
	// RecomputeShiftTotals sums all sales recorded against the shift.
	RecomputeShiftTotals(ctx context.Context, shiftID string) (*domain.ShiftTotals, error)
}

// ShiftRepositoryFacade combines all shift-related repository interfaces
// This is a facade for clients that need access to all operations
type ShiftRepositoryFacade interface {
	ShiftReader
	ShiftWriter
	ShiftTotalsSource
}

// ShiftRepositoryWithTx extends ShiftRepositoryFacade with transaction capabilities
type ShiftRepositoryWithTx interface {
	ShiftRepositoryFacade
	TransactionManager
}
