package services

import (
	"context"

	"github.com/kudzaim/shopmate_backend/internal/core/domain"
	"github.com/kudzaim/shopmate_backend/internal/dto"
)

// SaleReaderSvc defines read operations for sales
type SaleReaderSvc interface {
	// ListShiftSales retrieves the sales recorded against a shift, newest
	// first, using token based pagination.
	ListShiftSales(ctx context.Context, shiftID string, requestingUserID string, limit int, nextToken *string) ([]domain.Sale, *string, error)
}

// SaleWriterSvc defines write operations for sales
type SaleWriterSvc interface {
	// RecordSale validates and persists a sale against the business's open
	// shift for today, opening one if needed.
	RecordSale(ctx context.Context, businessID string, requestingUserID string, req dto.RecordSaleRequest) (*domain.Sale, error)
}

// SaleSvcFacade combines all sale-related service interfaces
type SaleSvcFacade interface {
	SaleReaderSvc
	SaleWriterSvc
}
