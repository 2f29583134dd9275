package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ValuationTypeMarketValue    = "market_value"
	ValuationTypeRentalEstimate = "rental_estimate"
)

type Valuation struct {
	ID            uuid.UUID `json:"id"`
	PropertyID    uuid.UUID `json:"property_id"`
	Source        string    `json:"source"`
	ValuationType string    `json:"valuation_type"`
	Value         float64   `json:"value"`
	ValuationDate time.Time `json:"valuation_date"`
	CreatedAt     time.Time `json:"created_at"`
}

func (v Valuation) IsMarketValue() bool {
	return v.ValuationType == ValuationTypeMarketValue
}

func (v Valuation) IsRentalEstimate() bool {
	return v.ValuationType == ValuationTypeRentalEstimate
}

// ValuationInput is the body of POST /properties/:id/valuations.
type ValuationInput struct {
	Source        string    `json:"source"`
	ValuationType string    `json:"valuation_type"`
	Value         float64   `json:"value"`
	ValuationDate time.Time `json:"valuation_date"`
}
