package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/rentaltracker/internal/client/models"
	"github.com/google/uuid"
)

func (c *Client) GetBuyingCriteria(ctx context.Context) ([]models.BuyingCriterion, error) {
	var out []models.BuyingCriterion
	if err := c.do(ctx, request{method: http.MethodGet, endpoint: "/buying-criteria"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateBuyingCriteria(ctx context.Context, in models.BuyingCriterionInput) (*models.BuyingCriterion, error) {
	var bc models.BuyingCriterion
	if err := c.do(ctx, request{method: http.MethodPost, endpoint: "/buying-criteria", body: in}, &bc); err != nil {
		return nil, err
	}
	return &bc, nil
}

func (c *Client) UpdateBuyingCriteria(ctx context.Context, id uuid.UUID, in models.BuyingCriterionInput) (*models.BuyingCriterion, error) {
	var bc models.BuyingCriterion
	r := request{method: http.MethodPut, endpoint: "/buying-criteria/" + id.String(), body: in}
	if err := c.do(ctx, r, &bc); err != nil {
		return nil, err
	}
	return &bc, nil
}

func (c *Client) DeleteBuyingCriteria(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, request{method: http.MethodDelete, endpoint: "/buying-criteria/" + id.String()}, nil)
}
