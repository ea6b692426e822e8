// Package app is the composition root: it constructs the API client, the
// ledger stores and the catalog for one session and owns their lifecycle.
// Consumers receive the App by reference; there is no ambient global state.
package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"gastos/internal/api"
	"gastos/internal/catalog"
	"gastos/internal/config"
	"gastos/internal/ledger"
	"gastos/internal/log"
	"gastos/internal/token"
)

type App struct {
	Config   *config.Config
	Tokens   *token.Store
	Client   *api.Client
	Expenses *ledger.ExpenseStore
	Income   *ledger.IncomeStore
	Catalog  *catalog.Catalog

	logger *log.Logger
}

// New wires the session from configuration. No network I/O happens here;
// the stores stay uninitialized until Init or an explicit Refresh.
func New(cfg *config.Config, logger *log.Logger) *App {
	tokens := token.NewStore(cfg.TokenPath)
	client := api.NewClient(cfg.APIBaseURL, tokens, api.Options{
		Timeout:   cfg.RequestTimeout,
		RateLimit: cfg.RateLimit,
		Logger:    logger.WithComponent(log.ComponentAPI),
	})

	return &App{
		Config:   cfg,
		Tokens:   tokens,
		Client:   client,
		Expenses: ledger.NewExpenseStore(client, cfg.PageLimit, logger),
		Income:   ledger.NewIncomeStore(client, logger),
		Catalog:  catalog.New(client, cfg.CatalogTTL, logger),
		logger:   logger,
	}
}

// Init refreshes both ledger stores and warms the category catalog
// concurrently. Individual failures are logged and tolerated: each store
// keeps its last-known-good collection and reports its own error state, so
// one unreachable endpoint does not take the session down.
func (a *App) Init(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.Expenses.Refresh(ctx); err != nil {
			a.logger.Warn("expense refresh failed during init", log.FieldError, err.Error())
		}
		return nil
	})
	g.Go(func() error {
		if err := a.Income.Refresh(ctx); err != nil {
			a.logger.Warn("income refresh failed during init", log.FieldError, err.Error())
		}
		return nil
	})
	g.Go(func() error {
		if _, err := a.Catalog.Categories(ctx); err != nil {
			a.logger.Warn("catalog warmup failed during init", log.FieldError, err.Error())
		}
		return nil
	})

	return g.Wait()
}
