package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/rentaltracker/internal/client/models"
	"github.com/google/uuid"
)

func (c *Client) GetPropertyComments(ctx context.Context, propertyID uuid.UUID) ([]models.Comment, error) {
	var out []models.Comment
	if err := c.do(ctx, request{method: http.MethodGet, endpoint: propertyPath(propertyID) + "/comments"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddPropertyComment(ctx context.Context, propertyID uuid.UUID, in models.CommentInput) (*models.Comment, error) {
	var cm models.Comment
	r := request{method: http.MethodPost, endpoint: propertyPath(propertyID) + "/comments", body: in}
	if err := c.do(ctx, r, &cm); err != nil {
		return nil, err
	}
	return &cm, nil
}

func (c *Client) UpdateComment(ctx context.Context, id uuid.UUID, in models.CommentInput) (*models.Comment, error) {
	var cm models.Comment
	if err := c.do(ctx, request{method: http.MethodPut, endpoint: "/comments/" + id.String(), body: in}, &cm); err != nil {
		return nil, err
	}
	return &cm, nil
}

func (c *Client) DeleteComment(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, request{method: http.MethodDelete, endpoint: "/comments/" + id.String()}, nil)
}
