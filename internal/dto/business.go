package dto

import (
	"time"

	"github.com/kudzaim/shopmate_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Business DTOs ---

// CreateBusinessRequest defines data for creating a new business profile.
// Money fields arrive as strings so no client float formatting leaks in.
type CreateBusinessRequest struct {
	Name            string  `json:"name" binding:"required"`
	OwnerName       string  `json:"ownerName" binding:"required"`
	BusinessType    string  `json:"businessType" binding:"required,oneof=RETAIL SERVICES RESTAURANT SALON AGRICULTURE CONSTRUCTION TRANSPORT MANUFACTURING OTHER"`
	Stage           string  `json:"stage" binding:"required,oneof=IDEA RUNNING GROWING"`
	Location        string  `json:"location" binding:"required"`
	StartingCapital string  `json:"startingCapital"`
	CurrencyCode    string  `json:"currencyCode" binding:"required,uppercase,len=3"`
	Phone           *string `json:"phone"`
	GuideBook       *string `json:"guideBook" binding:"omitempty,oneof=IDEAS STARTUP GROWTH"`
}

// BusinessResponse defines data returned for a business profile.
type BusinessResponse struct {
	BusinessID      string          `json:"businessID"`
	Name            string          `json:"name"`
	OwnerName       string          `json:"ownerName"`
	BusinessType    string          `json:"businessType"`
	Stage           string          `json:"stage"`
	Location        string          `json:"location"`
	StartingCapital decimal.Decimal `json:"startingCapital"`
	CurrencyCode    string          `json:"currencyCode"`
	Phone           *string         `json:"phone,omitempty"`
	GuideBook       *string         `json:"guideBook,omitempty"`
	IsActive        bool            `json:"isActive"` // Whether this is the user's active business
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToBusinessResponse converts domain.BusinessProfile to DTO. activeBusinessID
// is the user's current pointer, used to flag the active profile.
func ToBusinessResponse(b *domain.BusinessProfile, activeBusinessID *string) BusinessResponse {
	var guideBook *string
	if b.GuideBook != nil {
		gb := string(*b.GuideBook)
		guideBook = &gb
	}
	return BusinessResponse{
		BusinessID:      b.BusinessID,
		Name:            b.Name,
		OwnerName:       b.OwnerName,
		BusinessType:    string(b.BusinessType),
		Stage:           string(b.Stage),
		Location:        b.Location,
		StartingCapital: b.StartingCapital,
		CurrencyCode:    b.CurrencyCode,
		Phone:           b.Phone,
		GuideBook:       guideBook,
		IsActive:        activeBusinessID != nil && *activeBusinessID == b.BusinessID,
		CreatedAt:       b.CreatedAt,
	}
}

// ListBusinessesResponse wraps a list of businesses.
type ListBusinessesResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
}

// ToListBusinessesResponse converts a slice of domain.BusinessProfile to DTO.
func ToListBusinessesResponse(bs []domain.BusinessProfile, activeBusinessID *string) ListBusinessesResponse {
	list := make([]BusinessResponse, len(bs))
	for i, b := range bs {
		list[i] = ToBusinessResponse(&b, activeBusinessID)
	}
	return ListBusinessesResponse{Businesses: list}
}

// BusinessLimitResponse reports whether the user may create another business.
type BusinessLimitResponse struct {
	CanCreate     bool   `json:"canCreate"`
	CurrentCount  int    `json:"currentCount"`
	MaxBusinesses int    `json:"maxBusinesses"` // -1 means unlimited
	PlanName      string `json:"planName"`
}

// ToBusinessLimitResponse converts domain.BusinessLimitInfo to DTO.
func ToBusinessLimitResponse(info *domain.BusinessLimitInfo) BusinessLimitResponse {
	return BusinessLimitResponse{
		CanCreate:     info.CanCreate,
		CurrentCount:  info.CurrentCount,
		MaxBusinesses: info.MaxBusinesses,
		PlanName:      info.PlanName,
	}
}

// SwitchActiveBusinessRequest selects which business the session works in.
type SwitchActiveBusinessRequest struct {
	BusinessID string `json:"businessID" binding:"required"`
}
