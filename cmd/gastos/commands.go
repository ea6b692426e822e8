package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"time"

	"gastos/internal/api"
	"gastos/internal/app"
	"gastos/internal/auth"
	"gastos/internal/catalog"
	"gastos/internal/config"
	"gastos/internal/core"
	"gastos/internal/ledger"
	"gastos/internal/log"
)

func run(ctx context.Context, cfg *config.Config, logger *log.Logger, command string, args []string) error {
	a := app.New(cfg, logger)

	switch command {
	case "login":
		return cmdLogin(ctx, a, args)
	case "register":
		return cmdRegister(ctx, a, args)
	case "whoami":
		return cmdWhoami(ctx, a)
	case "logout":
		return a.Tokens.Clear()
	case "add":
		return cmdAdd(ctx, a, args)
	case "list":
		return cmdList(ctx, a, args)
	case "edit":
		return cmdEdit(ctx, a, args)
	case "rm":
		return cmdRemove(ctx, a, args)
	case "summary":
		return cmdSummary(ctx, a)
	case "analytics":
		return cmdAnalytics(ctx, a)
	case "income":
		return cmdIncome(ctx, a, args)
	case "categories":
		return cmdCategories(ctx, a, args)
	case "help", "-h", "--help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

// symbol maps the configured display currency to its symbol. Display only:
// the ledger never converts amounts.
func symbol(cfg *config.Config) string {
	if cfg.Currency == "PHP" {
		return "₱"
	}
	return "$"
}

func money(cfg *config.Config, m core.Money) string {
	return symbol(cfg) + m.Format()
}

func cmdLogin(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)
	if *email == "" || *password == "" {
		return errors.New("login requires -email and -password")
	}

	resp, err := a.Client.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	if err := a.Tokens.Save(resp.Token); err != nil {
		return err
	}
	fmt.Printf("logged in as %s <%s>\n", resp.User.Name, resp.User.Email)
	return nil
}

func cmdRegister(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "display name")
	fs.Parse(args)
	if *email == "" || *password == "" || *name == "" {
		return errors.New("register requires -email, -password and -name")
	}

	resp, err := a.Client.Register(ctx, *email, *password, *name)
	if err != nil {
		return err
	}
	if err := a.Tokens.Save(resp.Token); err != nil {
		return err
	}
	fmt.Printf("registered %s <%s>\n", resp.User.Name, resp.User.Email)
	return nil
}

func cmdWhoami(ctx context.Context, a *app.App) error {
	tok, err := a.Tokens.Token()
	if err != nil {
		return err
	}
	if tok == "" {
		return errors.New("not logged in")
	}

	if id, err := auth.ParseIdentity(tok); err == nil && id.Expired(time.Now()) {
		fmt.Fprintln(os.Stderr, "warning: stored credential is expired; run gastos login")
	}

	user, err := a.Client.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s> (id %s)\n", user.Name, user.Email, user.ID)
	return nil
}

func cmdAdd(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	amount := fs.String("amount", "", "amount, e.g. 12.50")
	desc := fs.String("desc", "", "description")
	category := fs.String("category", "", "category key")
	date := fs.String("date", "", "date as YYYY-MM-DD (default today)")
	fs.Parse(args)

	m, err := core.ParseAmount(*amount)
	if err != nil {
		return fmt.Errorf("amount %q: %w", *amount, err)
	}
	when := time.Now()
	if *date != "" {
		when, err = time.ParseInLocation("2006-01-02", *date, time.Local)
		if err != nil {
			return fmt.Errorf("date %q: must be YYYY-MM-DD", *date)
		}
	}

	expense, err := a.Expenses.Create(ctx, core.ExpenseDraft{
		Amount:      m,
		Description: *desc,
		Category:    *category,
		Date:        when,
	})
	if err != nil {
		return err
	}
	fmt.Printf("added %s  %s  %s  (id %s)\n",
		expense.Date.Format("2006-01-02"), money(a.Config, expense.Amount), expense.Description, expense.ID)
	return nil
}

func cmdList(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	category := fs.String("category", "", "filter by category key")
	page := fs.Int("page", 0, "page number")
	limit := fs.Int("limit", 0, "page size")
	fs.Parse(args)

	var expenses []core.Expense
	if *category != "" || *page > 0 || *limit > 0 {
		// filtered read straight off the gateway; the store's collection
		// stays the unfiltered authoritative copy
		resp, err := a.Client.ListExpenses(ctx, api.ExpenseFilter{
			Category: *category, Page: *page, Limit: *limit,
		})
		if err != nil {
			return err
		}
		expenses = make([]core.Expense, 0, len(resp.Expenses))
		for _, rec := range resp.Expenses {
			expenses = append(expenses, ledger.ExpenseFromRecord(rec))
		}
		core.SortByDateDesc(expenses)
	} else {
		if err := a.Expenses.Refresh(ctx); err != nil {
			return err
		}
		expenses = a.Expenses.Expenses()
	}

	if len(expenses) == 0 {
		fmt.Println("no expenses")
		return nil
	}
	for _, e := range expenses {
		fmt.Printf("%s  %10s  %-12s  %s  (id %s)\n",
			e.Date.Format("2006-01-02"), money(a.Config, e.Amount), e.Category, e.Description, e.ID)
	}
	return nil
}

func cmdEdit(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	id := fs.String("id", "", "expense id")
	amount := fs.String("amount", "", "new amount")
	desc := fs.String("desc", "", "new description")
	category := fs.String("category", "", "new category key")
	date := fs.String("date", "", "new date as YYYY-MM-DD")
	fs.Parse(args)
	if *id == "" {
		return errors.New("edit requires -id")
	}

	var update ledger.ExpenseUpdate
	if *amount != "" {
		m, err := core.ParseAmount(*amount)
		if err != nil {
			return fmt.Errorf("amount %q: %w", *amount, err)
		}
		update.Amount = &m
	}
	if *desc != "" {
		update.Description = desc
	}
	if *category != "" {
		update.Category = category
	}
	if *date != "" {
		when, err := time.ParseInLocation("2006-01-02", *date, time.Local)
		if err != nil {
			return fmt.Errorf("date %q: must be YYYY-MM-DD", *date)
		}
		update.Date = &when
	}
	if update.Amount == nil && update.Description == nil && update.Category == nil && update.Date == nil {
		return errors.New("edit requires at least one of -amount, -desc, -category, -date")
	}

	expense, err := a.Expenses.Update(ctx, *id, update)
	if err != nil {
		return err
	}
	fmt.Printf("updated %s  %s  %s\n",
		expense.Date.Format("2006-01-02"), money(a.Config, expense.Amount), expense.Description)
	return nil
}

func cmdRemove(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("rm", flag.ExitOnError)
	id := fs.String("id", "", "expense id")
	fs.Parse(args)
	if *id == "" {
		return errors.New("rm requires -id")
	}
	if err := a.Expenses.Delete(ctx, *id); err != nil {
		return err
	}
	fmt.Println("deleted", *id)
	return nil
}

func cmdSummary(ctx context.Context, a *app.App) error {
	if err := a.Expenses.Refresh(ctx); err != nil {
		return err
	}

	now := time.Now()
	fmt.Printf("today: %s   week: %s   month: %s\n",
		money(a.Config, a.Expenses.TodayTotal(now)),
		money(a.Config, a.Expenses.WeekTotal(now)),
		money(a.Config, a.Expenses.MonthTotal(now)))

	categories := a.Expenses.CategoryTotals()
	if len(categories) > 0 {
		fmt.Println("\nby category:")
		for _, key := range sortedKeys(categories) {
			name := key
			if cat, ok, err := a.Catalog.CategoryByID(ctx, key); err == nil && ok {
				name = cat.Name
			}
			fmt.Printf("  %-16s %s\n", name, money(a.Config, categories[key]))
		}
	}

	series := a.Expenses.MonthlySeries()
	if len(series) > 0 {
		fmt.Println("\nby month:")
		for _, key := range sortedKeys(series) {
			fmt.Printf("  %s  %s\n", key, money(a.Config, series[key]))
		}
	}
	return nil
}

func cmdAnalytics(ctx context.Context, a *app.App) error {
	analytics, err := a.Client.ExpenseAnalytics(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("total spent: %s%s\n", symbol(a.Config), core.CentsFromFloat(analytics.TotalSpent).Format())
	for _, key := range sortedKeys(analytics.CategoryTotals) {
		fmt.Printf("  %-16s %s%s\n", key, symbol(a.Config), core.CentsFromFloat(analytics.CategoryTotals[key]).Format())
	}
	return nil
}

func cmdIncome(ctx context.Context, a *app.App, args []string) error {
	if len(args) == 0 {
		return errors.New("income requires a subcommand: add, list, rm, sources")
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "add":
		fs := flag.NewFlagSet("income add", flag.ExitOnError)
		amount := fs.String("amount", "", "amount, e.g. 1500")
		source := fs.String("source", "", "source key (see income sources)")
		desc := fs.String("desc", "", "description")
		fs.Parse(rest)

		m, err := core.ParseAmount(*amount)
		if err != nil {
			return fmt.Errorf("amount %q: %w", *amount, err)
		}
		if err := a.Income.Add(ctx, core.IncomeDraft{Amount: m, Source: *source, Description: *desc}); err != nil {
			return err
		}
		fmt.Printf("added income %s from %s\n", money(a.Config, m), *source)
		return nil

	case "list":
		if err := a.Income.Refresh(ctx); err != nil {
			return err
		}
		incomes := a.Income.Incomes()
		if len(incomes) == 0 {
			fmt.Println("no income recorded")
			return nil
		}
		for _, in := range incomes {
			name := in.Source
			if s, ok := catalog.SourceByID(in.Source); ok {
				name = s.Name
			}
			fmt.Printf("%s  %10s  %-12s  (id %s)\n",
				in.CreatedAt.Format("2006-01-02"), money(a.Config, in.Amount), name, in.ID)
		}
		fmt.Printf("total: %s\n", money(a.Config, a.Income.Total()))
		return nil

	case "rm":
		fs := flag.NewFlagSet("income rm", flag.ExitOnError)
		id := fs.String("id", "", "income id")
		fs.Parse(rest)
		if *id == "" {
			return errors.New("income rm requires -id")
		}
		if err := a.Income.Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Println("deleted", *id)
		return nil

	case "sources":
		for _, s := range catalog.Sources {
			fmt.Printf("%-12s %s\n", s.ID, s.Name)
		}
		return nil

	default:
		return fmt.Errorf("unknown income subcommand %q", sub)
	}
}

func cmdCategories(ctx context.Context, a *app.App, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		categories, err := a.Catalog.Categories(ctx)
		if err != nil {
			return err
		}
		for _, c := range categories {
			fmt.Printf("%-12s %-16s %s\n", c.ID, c.Name, c.Color)
		}
		return nil
	case "init":
		categories, err := a.Catalog.Seed(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("seeded %d categories\n", len(categories))
		return nil
	default:
		return fmt.Errorf("unknown categories subcommand %q", sub)
	}
}

// describeError maps the transport taxonomy onto user-facing messages.
func describeError(err error) string {
	var timeout *api.TimeoutError
	if errors.As(err, &timeout) {
		return "the server took too long to respond; try again"
	}
	var transport *api.TransportError
	if errors.As(err, &transport) {
		return "could not reach the server; check your connection and GASTOS_API_URL"
	}
	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Status == http.StatusUnauthorized {
			return "not authorized; run gastos login"
		}
		return httpErr.Error()
	}
	return err.Error()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
