package models

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

type Property struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Address          string    `json:"address"`
	PurchasePrice    float64   `json:"purchase_price"`
	IntendedRent     *float64  `json:"intended_rent"`
	YearBuilt        *int      `json:"year_built"`
	LandAreaSqft     *int      `json:"land_area_sqft,omitempty"`
	BuildingAreaSqft *int      `json:"building_area_sqft,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// PropertyInput is the create/update body for a property.
type PropertyInput struct {
	Address       string   `json:"address"`
	PurchasePrice float64  `json:"purchase_price"`
	IntendedRent  *float64 `json:"intended_rent"`
	YearBuilt     *int     `json:"year_built"`
}

// PropertyFilter holds list query parameters for GET /properties.
type PropertyFilter map[string]string

// Encode returns the URL-encoded query string, sorted by key; "" when empty.
func (f PropertyFilter) Encode() string {
	if len(f) == 0 {
		return ""
	}
	v := url.Values{}
	for k, val := range f {
		v.Set(k, val)
	}
	return v.Encode()
}

// FinancialMetrics is the server-computed metrics snapshot of a property.
// The client never derives these values.
type FinancialMetrics struct {
	ID                     uuid.UUID `json:"id"`
	PropertyID             uuid.UUID `json:"property_id"`
	MonthlyMortgagePayment *float64  `json:"monthly_mortgage_payment"`
	NetOperatingIncome     *float64  `json:"net_operating_income"`
	CapRate                *float64  `json:"cap_rate"`
	CashOnCashReturn       *float64  `json:"cash_on_cash_return"`
	CashToClose            *float64  `json:"cash_to_close"`
	RentToValueRatio       *float64  `json:"rent_to_value_ratio"`
	GrossRentMultiplier    *float64  `json:"gross_rent_multiplier"`
	CalculatedAt           time.Time `json:"calculated_at"`
	IsCurrent              bool      `json:"is_current"`
}
