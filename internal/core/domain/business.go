package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// BusinessType classifies the trade a business is in.
type BusinessType string

const (
	BusinessRetail        BusinessType = "RETAIL"
	BusinessServices      BusinessType = "SERVICES"
	BusinessRestaurant    BusinessType = "RESTAURANT"
	BusinessSalon         BusinessType = "SALON"
	BusinessAgriculture   BusinessType = "AGRICULTURE"
	BusinessConstruction  BusinessType = "CONSTRUCTION"
	BusinessTransport     BusinessType = "TRANSPORT"
	BusinessManufacturing BusinessType = "MANUFACTURING"
	BusinessOther         BusinessType = "OTHER"
)

// IsValid reports whether t is one of the known business types.
func (t BusinessType) IsValid() bool {
	switch t {
	case BusinessRetail, BusinessServices, BusinessRestaurant, BusinessSalon,
		BusinessAgriculture, BusinessConstruction, BusinessTransport,
		BusinessManufacturing, BusinessOther:
		return true
	}
	return false
}

// BusinessStage describes how far along the business is.
type BusinessStage string

const (
	StageIdea    BusinessStage = "IDEA"
	StageRunning BusinessStage = "RUNNING"
	StageGrowing BusinessStage = "GROWING"
)

// IsValid reports whether s is one of the known stages.
func (s BusinessStage) IsValid() bool {
	switch s {
	case StageIdea, StageRunning, StageGrowing:
		return true
	}
	return false
}

// GuideBook names the guidance track attached to a business, if any.
type GuideBook string

const (
	GuideBookIdeas   GuideBook = "IDEAS"
	GuideBookStartup GuideBook = "STARTUP"
	GuideBookGrowth  GuideBook = "GROWTH"
)

// IsValid reports whether g is one of the known guide books.
func (g GuideBook) IsValid() bool {
	switch g {
	case GuideBookIdeas, GuideBookStartup, GuideBookGrowth:
		return true
	}
	return false
}

// SupportedCurrencies lists the currency codes the app accepts for a business.
var SupportedCurrencies = map[string]bool{
	"USD": true,
	"ZWL": true,
}

// BusinessProfile represents one business owned by a user. A user may own
// several profiles; each keeps its own shifts, sales and settings.
type BusinessProfile struct {
	BusinessID      string          `json:"businessID"`  // Primary Key (e.g., UUID)
	OwnerUserID     string          `json:"ownerUserID"` // FK -> users.user_id
	Name            string          `json:"name"`
	OwnerName       string          `json:"ownerName"` // Display name of the proprietor
	BusinessType    BusinessType    `json:"businessType"`
	Stage           BusinessStage   `json:"stage"`
	Location        string          `json:"location"`
	StartingCapital decimal.Decimal `json:"startingCapital"`
	CurrencyCode    string          `json:"currencyCode"` // e.g. "USD"
	Phone           *string         `json:"phone,omitempty"`
	GuideBook       *GuideBook      `json:"guideBook,omitempty" db:"guide_book"`
	AuditFields
}

// Validate checks the invariants a profile must satisfy before it is persisted.
func (b BusinessProfile) Validate() error {
	if b.Name == "" {
		return errors.New("business name is required")
	}
	if b.OwnerName == "" {
		return errors.New("owner name is required")
	}
	if b.Location == "" {
		return errors.New("location is required")
	}
	if !b.BusinessType.IsValid() {
		return errors.New("unknown business type: " + string(b.BusinessType))
	}
	if !b.Stage.IsValid() {
		return errors.New("unknown business stage: " + string(b.Stage))
	}
	if !SupportedCurrencies[b.CurrencyCode] {
		return errors.New("unsupported currency: " + b.CurrencyCode)
	}
	if b.StartingCapital.IsNegative() {
		return errors.New("starting capital must not be negative")
	}
	if b.GuideBook != nil && !b.GuideBook.IsValid() {
		return errors.New("unknown guide book: " + string(*b.GuideBook))
	}
	return nil
}
