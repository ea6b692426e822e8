package api

import (
	"context"
	"net/http"
)

// ListCategories fetches the category catalog.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var out categoriesResponse
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// InitCategories seeds the default catalog for a fresh account and returns
// the resulting entries.
func (c *Client) InitCategories(ctx context.Context) ([]Category, error) {
	var out categoriesResponse
	if err := c.do(ctx, http.MethodPost, "/categories/init", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}
