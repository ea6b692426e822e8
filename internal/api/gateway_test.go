package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingServer captures the last request the client actually sent.
type recordingServer struct {
	*httptest.Server
	method string
	path   string
	query  url.Values
	auth   string
	body   []byte
}

func newRecordingServer(t *testing.T, status int, response string) *recordingServer {
	t.Helper()
	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.method = r.Method
		rs.path = r.URL.Path
		rs.query = r.URL.Query()
		rs.auth = r.Header.Get("Authorization")
		rs.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(rs.Server.Close)
	return rs
}

func TestListExpensesQueryParams(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `{"expenses":[]}`)
	c := NewClient(srv.URL, staticTokens("tok"), Options{})

	_, err := c.ListExpenses(context.Background(), ExpenseFilter{Category: "food", Page: 2, Limit: 100})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, srv.method)
	assert.Equal(t, "/expenses", srv.path)
	assert.Equal(t, "food", srv.query.Get("category"))
	assert.Equal(t, "2", srv.query.Get("page"))
	assert.Equal(t, "100", srv.query.Get("limit"))
	assert.Equal(t, "Bearer tok", srv.auth)
}

func TestListExpensesOmitsZeroFilter(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `{"expenses":[]}`)
	c := NewClient(srv.URL, staticTokens(""), Options{})

	_, err := c.ListExpenses(context.Background(), ExpenseFilter{})
	require.NoError(t, err)

	// absence of limit leaves page size to the remote default
	assert.Empty(t, srv.query)
}

func TestCreateExpense(t *testing.T) {
	srv := newRecordingServer(t, http.StatusCreated,
		`{"expense":{"_id":"new1","amount":9.99,"description":"book","category":"other","date":"2024-05-01T00:00:00.000Z"}}`)
	c := NewClient(srv.URL, staticTokens("tok"), Options{})

	rec, err := c.CreateExpense(context.Background(), ExpensePayload{
		Amount: 9.99, Description: "book", Category: "other", Date: "2024-05-01T00:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, srv.method)
	assert.Equal(t, "/expenses", srv.path)
	assert.Equal(t, "new1", rec.ID)

	var sent ExpensePayload
	require.NoError(t, json.Unmarshal(srv.body, &sent))
	assert.Equal(t, 9.99, sent.Amount)
	assert.Equal(t, "other", sent.Category)
}

func TestUpdateExpenseOmitsNilPatchFields(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK,
		`{"expense":{"_id":"e1","amount":20,"description":"lunch","category":"food","date":"2024-05-01T00:00:00.000Z"}}`)
	c := NewClient(srv.URL, staticTokens("tok"), Options{})

	amount := 20.0
	_, err := c.UpdateExpense(context.Background(), "e1", ExpensePatch{Amount: &amount})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, srv.method)
	assert.Equal(t, "/expenses/e1", srv.path)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(srv.body, &sent))
	assert.Equal(t, map[string]any{"amount": 20.0}, sent)
}

func TestDeleteExpense(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `{}`)
	c := NewClient(srv.URL, staticTokens("tok"), Options{})

	require.NoError(t, c.DeleteExpense(context.Background(), "e9"))
	assert.Equal(t, http.MethodDelete, srv.method)
	assert.Equal(t, "/expenses/e9", srv.path)
}

func TestIncomeEndpoints(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK,
		`[{"_id":"i1","amount":1500,"source":"salary","createdAt":"2024-05-02T08:00:00.000Z"}]`)
	c := NewClient(srv.URL, staticTokens("tok"), Options{})

	records, err := c.ListIncome(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/income/", srv.path)
	require.Len(t, records, 1)
	assert.Equal(t, "salary", records[0].Source)

	require.NoError(t, c.DeleteIncome(context.Background(), "i1"))
	assert.Equal(t, http.MethodDelete, srv.method)
	assert.Equal(t, "/income/i1", srv.path)
}

func TestLoginSendsNoAuthHeader(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK,
		`{"token":"fresh","user":{"id":"u1","email":"a@b.c","name":"A"}}`)
	c := NewClient(srv.URL, staticTokens("stale-token"), Options{})

	resp, err := c.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)

	assert.Empty(t, srv.auth, "login must go out without a credential")
	assert.Equal(t, "fresh", resp.Token)
	assert.Equal(t, "u1", resp.User.ID)

	var sent loginPayload
	require.NoError(t, json.Unmarshal(srv.body, &sent))
	assert.Equal(t, "a@b.c", sent.Email)
}

func TestMe(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `{"user":{"id":"u1","email":"a@b.c","name":"A"}}`)
	c := NewClient(srv.URL, staticTokens("tok"), Options{})

	user, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/auth/me", srv.path)
	assert.Equal(t, "Bearer tok", srv.auth)
	assert.Equal(t, "u1", user.ID)
}

func TestCategoriesEndpoints(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK,
		`{"categories":[{"id":"food","name":"Food","color":"#EF4444"}]}`)
	c := NewClient(srv.URL, staticTokens("tok"), Options{})

	cats, err := c.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "food", cats[0].ID)

	_, err = c.InitCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, srv.method)
	assert.Equal(t, "/categories/init", srv.path)
}
