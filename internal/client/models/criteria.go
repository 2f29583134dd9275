package models

import (
	"time"

	"github.com/google/uuid"
)

// BuyingCriterion is a named set of investment thresholds owned by a user.
type BuyingCriterion struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Name             string    `json:"name"`
	MinCapRate       *float64  `json:"min_cap_rate"`
	MinCashOnCash    *float64  `json:"min_cash_on_cash"`
	MaxPurchasePrice *float64  `json:"max_purchase_price"`
	MinRentToValue   *float64  `json:"min_rent_to_value,omitempty"`
	MinYearBuilt     *int      `json:"min_year_built,omitempty"`
	MaxYearBuilt     *int      `json:"max_year_built,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// BuyingCriterionInput is the create/update body for a buying criterion.
type BuyingCriterionInput struct {
	Name             string   `json:"name"`
	MinCapRate       *float64 `json:"min_cap_rate,omitempty"`
	MinCashOnCash    *float64 `json:"min_cash_on_cash,omitempty"`
	MaxPurchasePrice *float64 `json:"max_purchase_price,omitempty"`
	MinRentToValue   *float64 `json:"min_rent_to_value,omitempty"`
	MinYearBuilt     *int     `json:"min_year_built,omitempty"`
	MaxYearBuilt     *int     `json:"max_year_built,omitempty"`
	IsActive         *bool    `json:"is_active,omitempty"`
}

// ComparisonRequest is the body of POST /properties/compare.
type ComparisonRequest struct {
	PropertyIDs []uuid.UUID `json:"property_ids"`
	CriteriaID  *uuid.UUID  `json:"criteria_id,omitempty"`
}

// Comparison is one property scored against one criterion by the server.
type Comparison struct {
	Property       *Property        `json:"property"`
	Criteria       *BuyingCriterion `json:"criteria"`
	Matches        map[string]bool  `json:"matches"`
	Score          float64          `json:"score"`
	FailureReasons []string         `json:"failure_reasons,omitempty"`
}
