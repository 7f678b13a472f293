package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// TenderType is the payment method used for a sale.
type TenderType string

const (
	TenderCash         TenderType = "CASH"
	TenderCard         TenderType = "CARD"
	TenderMobileMoney  TenderType = "MOBILE_MONEY"
	TenderBankTransfer TenderType = "BANK_TRANSFER"
)

// IsValid reports whether t is one of the known tender types.
func (t TenderType) IsValid() bool {
	switch t {
	case TenderCash, TenderCard, TenderMobileMoney, TenderBankTransfer:
		return true
	}
	return false
}

// Sale is one payment captured against an open shift. Amount is the money
// actually taken after Discount was applied.
type Sale struct {
	SaleID        string          `json:"saleID"`     // Primary Key (e.g., UUID)
	BusinessID    string          `json:"businessID"` // FK -> businesses.business_id
	ShiftID       string          `json:"shiftID"`    // FK -> pos_shifts.shift_id
	Amount        decimal.Decimal `json:"amount"`
	Discount      decimal.Decimal `json:"discount"`
	TenderType    TenderType      `json:"tenderType" db:"tender_type"`
	ReceiptNumber string          `json:"receiptNumber" db:"receipt_number"` // Several line items may share one receipt
	Note          string          `json:"note"`
	AuditFields
}

// Validate checks the invariants a sale must satisfy before it is persisted.
func (s Sale) Validate() error {
	if !s.Amount.IsPositive() {
		return errors.New("sale amount must be positive")
	}
	if s.Discount.IsNegative() {
		return errors.New("discount must not be negative")
	}
	if s.Discount.GreaterThan(s.Amount) {
		return errors.New("discount cannot exceed the sale amount")
	}
	if !s.TenderType.IsValid() {
		return errors.New("unknown tender type: " + string(s.TenderType))
	}
	return nil
}
