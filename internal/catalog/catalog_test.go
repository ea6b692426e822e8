package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gastos/internal/api"
)

type fakeGateway struct {
	listCalls int
	initCalls int
	listErr   error
}

func (f *fakeGateway) ListCategories(context.Context) ([]api.Category, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []api.Category{
		{ID: "food", Name: "Food", Color: "#EF4444"},
		{ID: "transport", Name: "Transport", Color: "#3B82F6"},
	}, nil
}

func (f *fakeGateway) InitCategories(context.Context) ([]api.Category, error) {
	f.initCalls++
	return []api.Category{{ID: "food", Name: "Food", Color: "#EF4444"}}, nil
}

func TestCategoriesServedFromCache(t *testing.T) {
	gw := &fakeGateway{}
	c := New(gw, time.Minute, nil)

	first, err := c.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, first, 2)

	_, err = c.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, gw.listCalls, "second read must hit the cache")
}

func TestCategoriesErrorNotCached(t *testing.T) {
	gw := &fakeGateway{listErr: &api.HTTPError{Status: 500}}
	c := New(gw, time.Minute, nil)

	_, err := c.Categories(context.Background())
	require.Error(t, err)

	gw.listErr = nil
	cats, err := c.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, cats, 2)
	assert.Equal(t, 2, gw.listCalls)
}

func TestSeedInvalidatesCache(t *testing.T) {
	gw := &fakeGateway{}
	c := New(gw, time.Minute, nil)

	_, err := c.Categories(context.Background())
	require.NoError(t, err)

	_, err = c.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, gw.initCalls)

	_, err = c.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, gw.listCalls, "seed must drop the cached table")
}

func TestCategoryByID(t *testing.T) {
	c := New(&fakeGateway{}, time.Minute, nil)

	cat, ok, err := c.CategoryByID(context.Background(), "transport")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Transport", cat.Name)

	_, ok, err = c.CategoryByID(context.Background(), "ghost")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSourceByID(t *testing.T) {
	s, ok := SourceByID("salary")
	if !ok || s.Name != "Salary" {
		t.Fatalf("got %+v, %v", s, ok)
	}
	if _, ok := SourceByID("nope"); ok {
		t.Fatal("unknown source should miss")
	}
}
