package accounting

import (
	"github.com/shopspring/decimal"
)

// CashClassification labels the outcome of a drawer count against expectation.
type CashClassification string

const (
	Balanced CashClassification = "BALANCED" // counted == expected
	Over     CashClassification = "OVER"     // counted > expected
	Short    CashClassification = "SHORT"    // counted < expected
)

// ReconciliationResult is the outcome of comparing a counted drawer against
// the expected cash for a shift.
type ReconciliationResult struct {
	ExpectedCash   decimal.Decimal    `json:"expectedCash"`
	CountedCash    decimal.Decimal    `json:"countedCash"`
	Discrepancy    decimal.Decimal    `json:"discrepancy"` // CountedCash - ExpectedCash
	Classification CashClassification `json:"classification"`
}

// Classify labels a signed discrepancy: positive is Over, negative is Short.
func Classify(discrepancy decimal.Decimal) CashClassification {
	switch {
	case discrepancy.IsPositive():
		return Over
	case discrepancy.IsNegative():
		return Short
	}
	return Balanced
}

// Reconcile compares the counted drawer amount against the expected amount.
// The discrepancy is signed: positive means the drawer is over (more cash than
// expected), negative means it is short.
func Reconcile(expected, counted decimal.Decimal) ReconciliationResult {
	discrepancy := counted.Sub(expected)

	return ReconciliationResult{
		ExpectedCash:   expected,
		CountedCash:    counted,
		Discrepancy:    discrepancy,
		Classification: Classify(discrepancy),
	}
}
