package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftStatus is the lifecycle state of a trading shift.
type ShiftStatus string

const (
	ShiftOpen   ShiftStatus = "OPEN"
	ShiftClosed ShiftStatus = "CLOSED" // terminal, a shift is never reopened
)

// ShiftRecord is one trading day's cash session for a business. It is opened
// with a float (openingCash), accumulates sales totals while trading, and is
// closed once with the counted drawer amount.
type ShiftRecord struct {
	ShiftID    string      `json:"shiftID"`    // Primary Key (e.g., UUID)
	BusinessID string      `json:"businessID"` // FK -> businesses.business_id
	ShiftDate  time.Time   `json:"shiftDate"`  // Calendar date in the business timezone
	StartTime  time.Time   `json:"startTime"`
	EndTime    *time.Time  `json:"endTime,omitempty"` // Set when the shift closes
	Status     ShiftStatus `json:"status"`

	OpeningCash     decimal.Decimal  `json:"openingCash"`  // Float the drawer started with
	ExpectedCash    decimal.Decimal  `json:"expectedCash"` // OpeningCash + CashSales
	ActualCash      *decimal.Decimal `json:"actualCash,omitempty"`      // Counted at close, nil while open
	CashDiscrepancy *decimal.Decimal `json:"cashDiscrepancy,omitempty"` // ActualCash - ExpectedCash, nil while open

	CashSales         decimal.Decimal `json:"cashSales"`
	CardSales         decimal.Decimal `json:"cardSales"`
	MobileMoneySales  decimal.Decimal `json:"mobileMoneySales"`
	BankTransferSales decimal.Decimal `json:"bankTransferSales"`
	TotalSales        decimal.Decimal `json:"totalSales"`
	TransactionCount  int             `json:"transactionCount"`
	ReceiptCount      int             `json:"receiptCount"`
	TotalDiscounts    decimal.Decimal `json:"totalDiscounts"`

	CurrencyCode     string `json:"currencyCode"`
	Notes            string `json:"notes"`
	DiscrepancyNotes string `json:"discrepancyNotes"` // Cashier's explanation of any shortfall or excess
	AuditFields
}

// IsOpen reports whether the shift is still accepting sales.
func (s *ShiftRecord) IsOpen() bool {
	return s.Status == ShiftOpen
}

// ShiftTotals is the aggregate of all sales recorded against one shift.
type ShiftTotals struct {
	CashSales         decimal.Decimal `json:"cashSales"`
	CardSales         decimal.Decimal `json:"cardSales"`
	MobileMoneySales  decimal.Decimal `json:"mobileMoneySales"`
	BankTransferSales decimal.Decimal `json:"bankTransferSales"`
	TotalSales        decimal.Decimal `json:"totalSales"`
	TransactionCount  int             `json:"transactionCount"`
	ReceiptCount      int             `json:"receiptCount"`
	TotalDiscounts    decimal.Decimal `json:"totalDiscounts"`
}

// ApplyTotals folds fresh aggregates into the shift and keeps the
// ExpectedCash = OpeningCash + CashSales invariant.
func (s *ShiftRecord) ApplyTotals(t ShiftTotals) {
	s.CashSales = t.CashSales
	s.CardSales = t.CardSales
	s.MobileMoneySales = t.MobileMoneySales
	s.BankTransferSales = t.BankTransferSales
	s.TotalSales = t.TotalSales
	s.TransactionCount = t.TransactionCount
	s.ReceiptCount = t.ReceiptCount
	s.TotalDiscounts = t.TotalDiscounts
	s.ExpectedCash = s.OpeningCash.Add(t.CashSales)
}
