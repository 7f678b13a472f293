package repositories

import (
	"context"

	"github.com/kudzaim/shopmate_backend/internal/core/domain"
)

// SaleReader defines read operations for sales
type SaleReader interface {
	// FindSaleByID retrieves a specific sale by its ID.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSalesByShift retrieves the sales recorded against a shift, newest
	// first, using token based pagination.
	ListSalesByShift(ctx context.Context, shiftID string, limit int, nextToken *string) ([]domain.Sale, *string, error)
}

// SaleWriter defines write operations for sales
type SaleWriter interface {
	// SaveSale persists a new sale against its shift.
	SaveSale(ctx context.Context, sale domain.Sale) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
