package dto

import (
	"time"

	"github.com/kudzaim/shopmate_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Sale DTOs ---

// RecordSaleRequest defines data for capturing a sale. Amount and Discount
// are numeric strings, validated and parsed by the service.
type RecordSaleRequest struct {
	Amount        string `json:"amount" binding:"required"`
	Discount      string `json:"discount"`
	TenderType    string `json:"tenderType" binding:"required,oneof=CASH CARD MOBILE_MONEY BANK_TRANSFER"`
	ReceiptNumber string `json:"receiptNumber"`
	Note          string `json:"note"`
}

// ListSalesParams defines query parameters for listing a shift's sales.
type ListSalesParams struct {
	Limit     int     `form:"limit,default=50"`
	NextToken *string `form:"nextToken"`
}

// SaleResponse defines data returned for a sale.
type SaleResponse struct {
	SaleID        string          `json:"saleID"`
	BusinessID    string          `json:"businessID"`
	ShiftID       string          `json:"shiftID"`
	Amount        decimal.Decimal `json:"amount"`
	Discount      decimal.Decimal `json:"discount"`
	TenderType    string          `json:"tenderType"`
	ReceiptNumber string          `json:"receiptNumber"`
	Note          string          `json:"note,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToSaleResponse converts domain.Sale to DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:        s.SaleID,
		BusinessID:    s.BusinessID,
		ShiftID:       s.ShiftID,
		Amount:        s.Amount,
		Discount:      s.Discount,
		TenderType:    string(s.TenderType),
		ReceiptNumber: s.ReceiptNumber,
		Note:          s.Note,
		CreatedAt:     s.CreatedAt,
	}
}

// ListSalesResponse wraps a page of sales with the cursor for the next one.
type ListSalesResponse struct {
	Sales     []SaleResponse `json:"sales"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToListSalesResponse converts a slice of domain.Sale to DTO.
func ToListSalesResponse(sales []domain.Sale, nextToken *string) ListSalesResponse {
	list := make([]SaleResponse, len(sales))
	for i, s := range sales {
		list[i] = ToSaleResponse(&s)
	}
	return ListSalesResponse{Sales: list, NextToken: nextToken}
}
