package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/rentaltracker/internal/client/models"
	"github.com/google/uuid"
)

func propertyPath(id uuid.UUID) string {
	return "/properties/" + id.String()
}

// GetProperties lists the current user's properties. filter becomes the URL
// query string; nil means no filtering.
func (c *Client) GetProperties(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error) {
	endpoint := "/properties"
	if q := filter.Encode(); q != "" {
		endpoint += "?" + q
	}

	var out []models.Property
	if err := c.do(ctx, request{method: http.MethodGet, endpoint: endpoint}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	var p models.Property
	if err := c.do(ctx, request{method: http.MethodGet, endpoint: propertyPath(id)}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateProperty(ctx context.Context, in models.PropertyInput) (*models.Property, error) {
	var p models.Property
	if err := c.do(ctx, request{method: http.MethodPost, endpoint: "/properties", body: in}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProperty(ctx context.Context, id uuid.UUID, in models.PropertyInput) (*models.Property, error) {
	var p models.Property
	if err := c.do(ctx, request{method: http.MethodPut, endpoint: propertyPath(id), body: in}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, request{method: http.MethodDelete, endpoint: propertyPath(id)}, nil)
}

func (c *Client) GetPropertyMetrics(ctx context.Context, propertyID uuid.UUID) (*models.FinancialMetrics, error) {
	var m models.FinancialMetrics
	if err := c.do(ctx, request{method: http.MethodGet, endpoint: propertyPath(propertyID) + "/metrics"}, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// RecalculateMetrics asks the backend to recompute the metrics of a property.
func (c *Client) RecalculateMetrics(ctx context.Context, propertyID uuid.UUID) (*models.FinancialMetrics, error) {
	var m models.FinancialMetrics
	if err := c.do(ctx, request{method: http.MethodPost, endpoint: propertyPath(propertyID) + "/metrics"}, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) GetPropertyValuations(ctx context.Context, propertyID uuid.UUID) ([]models.Valuation, error) {
	var out []models.Valuation
	if err := c.do(ctx, request{method: http.MethodGet, endpoint: propertyPath(propertyID) + "/valuations"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddPropertyValuation(ctx context.Context, propertyID uuid.UUID, in models.ValuationInput) (*models.Valuation, error) {
	var v models.Valuation
	r := request{method: http.MethodPost, endpoint: propertyPath(propertyID) + "/valuations", body: in}
	if err := c.do(ctx, r, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) CompareProperties(ctx context.Context, in models.ComparisonRequest) ([]models.Comparison, error) {
	var out []models.Comparison
	if err := c.do(ctx, request{method: http.MethodPost, endpoint: "/properties/compare", body: in}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
