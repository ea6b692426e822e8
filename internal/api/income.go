package api

import (
	"context"
	"net/http"
	"net/url"
)

// ListIncome fetches the full income collection. The endpoint takes no
// paging parameters; the response is a bare array.
func (c *Client) ListIncome(ctx context.Context) ([]IncomeRecord, error) {
	var out []IncomeRecord
	if err := c.do(ctx, http.MethodGet, "/income/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateIncome submits a draft and returns the server-confirmed record.
func (c *Client) CreateIncome(ctx context.Context, payload IncomePayload) (IncomeRecord, error) {
	var out IncomeRecord
	if err := c.do(ctx, http.MethodPost, "/income", nil, payload, &out); err != nil {
		return IncomeRecord{}, err
	}
	return out, nil
}

// DeleteIncome removes a record by id.
func (c *Client) DeleteIncome(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/income/"+url.PathEscape(id), nil, nil, nil)
}
