package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListExpenses fetches a page of expenses. Fetch order is not guaranteed to
// be most-recent-first; ordering is the store's concern.
func (c *Client) ListExpenses(ctx context.Context, filter ExpenseFilter) (ListExpensesResponse, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	var out ListExpensesResponse
	if err := c.do(ctx, http.MethodGet, "/expenses", query, nil, &out); err != nil {
		return ListExpensesResponse{}, err
	}
	return out, nil
}

// CreateExpense submits a draft and returns the server-confirmed record,
// including the server-assigned id.
func (c *Client) CreateExpense(ctx context.Context, payload ExpensePayload) (ExpenseRecord, error) {
	var out expenseResponse
	if err := c.do(ctx, http.MethodPost, "/expenses", nil, payload, &out); err != nil {
		return ExpenseRecord{}, err
	}
	return out.Expense, nil
}

// UpdateExpense applies a partial update and returns the server's version
// of the full record.
func (c *Client) UpdateExpense(ctx context.Context, id string, patch ExpensePatch) (ExpenseRecord, error) {
	var out expenseResponse
	if err := c.do(ctx, http.MethodPut, "/expenses/"+url.PathEscape(id), nil, patch, &out); err != nil {
		return ExpenseRecord{}, err
	}
	return out.Expense, nil
}

// DeleteExpense removes a record by id.
func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/expenses/"+url.PathEscape(id), nil, nil, nil)
}

// ExpenseAnalytics fetches the server-computed summary.
func (c *Client) ExpenseAnalytics(ctx context.Context) (Analytics, error) {
	var out Analytics
	if err := c.do(ctx, http.MethodGet, "/expenses/analytics", nil, nil, &out); err != nil {
		return Analytics{}, err
	}
	return out, nil
}
