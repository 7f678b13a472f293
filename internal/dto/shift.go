package dto

import (
	"time"

	"github.com/kudzaim/shopmate_backend/internal/core/domain"
	"github.com/kudzaim/shopmate_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// --- Shift DTOs ---

// CloseShiftRequest carries the drawer count for closing a shift.
// CountedCash is a numeric string, validated and parsed by the service.
type CloseShiftRequest struct {
	CountedCash      string `json:"countedCash" binding:"required"`
	DiscrepancyNotes string `json:"discrepancyNotes"`
	Notes            string `json:"notes"`
}

// ListShiftsParams defines query parameters for listing shift history.
type ListShiftsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ShiftResponse defines data returned for a shift.
type ShiftResponse struct {
	ShiftID    string     `json:"shiftID"`
	BusinessID string     `json:"businessID"`
	ShiftDate  string     `json:"shiftDate"` // YYYY-MM-DD in the business timezone
	StartTime  time.Time  `json:"startTime"`
	EndTime    *time.Time `json:"endTime,omitempty"`
	Status     string     `json:"status"`

	OpeningCash     decimal.Decimal  `json:"openingCash"`
	ExpectedCash    decimal.Decimal  `json:"expectedCash"`
	ActualCash      *decimal.Decimal `json:"actualCash,omitempty"`
	CashDiscrepancy *decimal.Decimal `json:"cashDiscrepancy,omitempty"`
	Classification  *string          `json:"classification,omitempty"` // BALANCED, OVER or SHORT once closed

	CashSales         decimal.Decimal `json:"cashSales"`
	CardSales         decimal.Decimal `json:"cardSales"`
	MobileMoneySales  decimal.Decimal `json:"mobileMoneySales"`
	BankTransferSales decimal.Decimal `json:"bankTransferSales"`
	TotalSales        decimal.Decimal `json:"totalSales"`
	TransactionCount  int             `json:"transactionCount"`
	ReceiptCount      int             `json:"receiptCount"`
	TotalDiscounts    decimal.Decimal `json:"totalDiscounts"`

	CurrencyCode     string `json:"currencyCode"`
	Notes            string `json:"notes,omitempty"`
	DiscrepancyNotes string `json:"discrepancyNotes,omitempty"`
}

// ToShiftResponse converts domain.ShiftRecord to DTO.
func ToShiftResponse(s *domain.ShiftRecord) ShiftResponse {
	resp := ShiftResponse{
		ShiftID:           s.ShiftID,
		BusinessID:        s.BusinessID,
		ShiftDate:         s.ShiftDate.Format("2006-01-02"),
		StartTime:         s.StartTime,
		EndTime:           s.EndTime,
		Status:            string(s.Status),
		OpeningCash:       s.OpeningCash,
		ExpectedCash:      s.ExpectedCash,
		ActualCash:        s.ActualCash,
		CashDiscrepancy:   s.CashDiscrepancy,
		CashSales:         s.CashSales,
		CardSales:         s.CardSales,
		MobileMoneySales:  s.MobileMoneySales,
		BankTransferSales: s.BankTransferSales,
		TotalSales:        s.TotalSales,
		TransactionCount:  s.TransactionCount,
		ReceiptCount:      s.ReceiptCount,
		TotalDiscounts:    s.TotalDiscounts,
		CurrencyCode:      s.CurrencyCode,
		Notes:             s.Notes,
		DiscrepancyNotes:  s.DiscrepancyNotes,
	}
	if s.CashDiscrepancy != nil {
		classification := string(accounting.Classify(*s.CashDiscrepancy))
		resp.Classification = &classification
	}
	return resp
}

// ListShiftsResponse wraps a page of shifts with the cursor for the next one.
type ListShiftsResponse struct {
	Shifts    []ShiftResponse `json:"shifts"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToListShiftsResponse converts a slice of domain.ShiftRecord to DTO.
func ToListShiftsResponse(shifts []domain.ShiftRecord, nextToken *string) ListShiftsResponse {
	list := make([]ShiftResponse, len(shifts))
	for i, s := range shifts {
		list[i] = ToShiftResponse(&s)
	}
	return ListShiftsResponse{Shifts: list, NextToken: nextToken}
}
