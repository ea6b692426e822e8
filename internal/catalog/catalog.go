// Package catalog exposes the category and income-source descriptor
// tables. Categories live on the remote service and are cached with a TTL;
// income sources are a fixed client-side table. The ledger itself never
// validates membership in either — catalogs are presentation data.
package catalog

import (
	"context"
	"time"

	"gastos/internal/api"
	"gastos/internal/cache"
	"gastos/internal/log"
)

// Source is a fixed income-source descriptor.
type Source struct {
	ID    string
	Name  string
	Color string
}

// Sources is the built-in income source table.
var Sources = []Source{
	{ID: "salary", Name: "Salary", Color: "#22C55E"},
	{ID: "freelance", Name: "Freelance", Color: "#3B82F6"},
	{ID: "business", Name: "Business", Color: "#F59E0B"},
	{ID: "investment", Name: "Investments", Color: "#8B5CF6"},
	{ID: "gift", Name: "Gift", Color: "#EC4899"},
	{ID: "other", Name: "Other", Color: "#6B7280"},
}

// SourceByID looks up a source descriptor.
func SourceByID(id string) (Source, bool) {
	for _, s := range Sources {
		if s.ID == id {
			return s, true
		}
	}
	return Source{}, false
}

// Gateway is the slice of the remote API the catalog needs.
type Gateway interface {
	ListCategories(ctx context.Context) ([]api.Category, error)
	InitCategories(ctx context.Context) ([]api.Category, error)
}

const categoriesKey = "categories"

// Catalog serves the remote category table through a TTL cache.
type Catalog struct {
	gateway Gateway
	cache   *cache.LRU[[]api.Category]
	logger  *log.Logger
}

// New creates a catalog whose category list stays fresh for ttl.
func New(gateway Gateway, ttl time.Duration, logger *log.Logger) *Catalog {
	if logger == nil {
		logger = log.New(log.Config{})
	}
	return &Catalog{
		gateway: gateway,
		cache:   cache.NewLRU[[]api.Category](1, ttl),
		logger:  logger.WithComponent(log.ComponentCatalog),
	}
}

// Categories returns the category table, from cache when fresh.
func (c *Catalog) Categories(ctx context.Context) ([]api.Category, error) {
	if cached, ok := c.cache.Get(categoriesKey); ok {
		return cached, nil
	}

	categories, err := c.gateway.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(categoriesKey, categories)

	c.logger.Debug("categories fetched",
		log.FieldOperation, log.OpList,
		log.FieldCount, len(categories))
	return categories, nil
}

// Seed asks the service to create the default categories for a fresh
// account and invalidates the cache.
func (c *Catalog) Seed(ctx context.Context) ([]api.Category, error) {
	categories, err := c.gateway.InitCategories(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Delete(categoriesKey)

	c.logger.Info("categories seeded",
		log.FieldOperation, log.OpSeed,
		log.FieldCount, len(categories))
	return categories, nil
}

// CategoryByID looks up a category descriptor, fetching the table if
// needed.
func (c *Catalog) CategoryByID(ctx context.Context, id string) (api.Category, bool, error) {
	categories, err := c.Categories(ctx)
	if err != nil {
		return api.Category{}, false, err
	}
	for _, cat := range categories {
		if cat.ID == id {
			return cat, true, nil
		}
	}
	return api.Category{}, false, nil
}
