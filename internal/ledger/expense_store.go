// Package ledger holds the authoritative local copies of the expense and
// income collections, kept consistent with the remote store by
// round-tripping every mutation before applying it locally.
package ledger

import (
	"context"
	"sync"
	"time"

	"gastos/internal/api"
	"gastos/internal/core"
	"gastos/internal/log"
)

// ExpenseGateway is the slice of the remote API the expense store needs.
type ExpenseGateway interface {
	ListExpenses(ctx context.Context, filter api.ExpenseFilter) (api.ListExpensesResponse, error)
	CreateExpense(ctx context.Context, payload api.ExpensePayload) (api.ExpenseRecord, error)
	UpdateExpense(ctx context.Context, id string, patch api.ExpensePatch) (api.ExpenseRecord, error)
	DeleteExpense(ctx context.Context, id string) error
}

// State is the load state of a store.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateError // transient: a later refresh can return to ready
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// ExpenseUpdate is a partial expense update. Nil fields are left untouched
// by the server.
type ExpenseUpdate struct {
	Amount      *core.Money
	Description *string
	Category    *string
	Date        *time.Time
}

// ExpenseStore holds the local expense collection. The exposed collection
// is always sorted by date descending; the sort is recomputed after every
// mutation rather than incrementally maintained.
//
// Mutations are not serialized against each other: two racing calls are
// both in flight at once and the collection reflects whichever response
// lands last. The mutex only makes each individual collection swap atomic,
// so readers never observe a half-applied state.
type ExpenseStore struct {
	gateway   ExpenseGateway
	logger    *log.Logger
	pageLimit int

	mu       sync.Mutex
	state    State
	lastErr  error
	expenses []core.Expense
}

// NewExpenseStore creates a store in the uninitialized state. pageLimit
// bounds every refresh fetch.
func NewExpenseStore(gateway ExpenseGateway, pageLimit int, logger *log.Logger) *ExpenseStore {
	if logger == nil {
		logger = log.New(log.Config{})
	}
	return &ExpenseStore{
		gateway:   gateway,
		logger:    logger.WithComponent(log.ComponentExpense),
		pageLimit: pageLimit,
		state:     StateUninitialized,
	}
}

// Refresh discards local state and repopulates from the remote collection.
// On failure the previous collection is preserved, the state flips to
// StateError and the error is returned for the caller to report.
func (s *ExpenseStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()

	resp, err := s.gateway.ListExpenses(ctx, api.ExpenseFilter{Limit: s.pageLimit})
	if err != nil {
		s.mu.Lock()
		s.state = StateError
		s.lastErr = err
		s.mu.Unlock()
		s.logger.Error("refresh failed",
			log.FieldOperation, log.OpRefresh,
			log.FieldError, err.Error())
		return err
	}

	records := make([]core.Expense, 0, len(resp.Expenses))
	for _, rec := range resp.Expenses {
		records = append(records, s.fromRecord(rec))
	}
	core.SortByDateDesc(records)

	s.mu.Lock()
	s.expenses = records
	s.state = StateReady
	s.lastErr = nil
	s.mu.Unlock()

	s.logger.Debug("refreshed",
		log.FieldOperation, log.OpRefresh,
		log.FieldCount, len(records))
	return nil
}

// Create validates the draft, round-trips it through the gateway and merges
// the server-confirmed record. A failed round trip leaves the collection
// untouched.
func (s *ExpenseStore) Create(ctx context.Context, draft core.ExpenseDraft) (core.Expense, error) {
	if err := draft.Validate(); err != nil {
		return core.Expense{}, err
	}

	rec, err := s.gateway.CreateExpense(ctx, api.ExpensePayload{
		Amount:      draft.Amount.Float(),
		Description: draft.Description,
		Category:    draft.Category,
		Date:        draft.Date.Format(time.RFC3339),
	})
	if err != nil {
		return core.Expense{}, err
	}

	expense := s.fromRecord(rec)
	s.mu.Lock()
	s.expenses = append([]core.Expense{expense}, s.expenses...)
	core.SortByDateDesc(s.expenses)
	s.mu.Unlock()

	s.logger.Info("expense created",
		log.FieldOperation, log.OpCreate,
		log.FieldRecordID, expense.ID,
		log.FieldCategory, expense.Category,
		log.FieldAmountCents, expense.Amount.Cents)
	return expense, nil
}

// Update applies a partial update remotely and replaces the matching local
// record with the server's returned version. The server stays the sole
// source of truth for the updated fields: no local patch-merge.
func (s *ExpenseStore) Update(ctx context.Context, id string, update ExpenseUpdate) (core.Expense, error) {
	if update.Amount != nil {
		if err := update.Amount.Validate(); err != nil {
			return core.Expense{}, err
		}
	}

	patch := api.ExpensePatch{
		Description: update.Description,
		Category:    update.Category,
	}
	if update.Amount != nil {
		amount := update.Amount.Float()
		patch.Amount = &amount
	}
	if update.Date != nil {
		date := update.Date.Format(time.RFC3339)
		patch.Date = &date
	}

	rec, err := s.gateway.UpdateExpense(ctx, id, patch)
	if err != nil {
		return core.Expense{}, err
	}

	expense := s.fromRecord(rec)
	s.mu.Lock()
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			s.expenses[i] = expense
			break
		}
	}
	core.SortByDateDesc(s.expenses)
	s.mu.Unlock()

	s.logger.Info("expense updated",
		log.FieldOperation, log.OpUpdate,
		log.FieldRecordID, id)
	return expense, nil
}

// Delete removes the record locally only after the remote delete confirms.
// No tombstones are kept.
func (s *ExpenseStore) Delete(ctx context.Context, id string) error {
	if err := s.gateway.DeleteExpense(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.expenses[:0]
	for _, e := range s.expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.expenses = kept
	s.mu.Unlock()

	s.logger.Info("expense deleted",
		log.FieldOperation, log.OpDelete,
		log.FieldRecordID, id)
	return nil
}

// Expenses returns a copy of the collection, sorted date descending.
func (s *ExpenseStore) Expenses() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// State returns the load state. StateError still serves the last
// successfully loaded collection.
func (s *ExpenseStore) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastErr returns the error of the most recent failed refresh, or nil.
func (s *ExpenseStore) LastErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Derived metrics: recomputed fresh from the current collection on every
// call, never memoized.

func (s *ExpenseStore) TodayTotal(now time.Time) core.Money {
	return core.TodayTotal(s.Expenses(), now)
}

func (s *ExpenseStore) WeekTotal(now time.Time) core.Money {
	return core.WeekTotal(s.Expenses(), now)
}

func (s *ExpenseStore) MonthTotal(now time.Time) core.Money {
	return core.MonthTotal(s.Expenses(), now)
}

func (s *ExpenseStore) CategoryTotals() map[string]core.Money {
	return core.CategoryTotals(s.Expenses())
}

func (s *ExpenseStore) MonthlySeries() map[string]core.Money {
	return core.MonthlySeries(s.Expenses())
}

// fromRecord maps a wire record, logging when its timestamp did not parse:
// the record survives with a zero date and sorts last.
func (s *ExpenseStore) fromRecord(rec api.ExpenseRecord) core.Expense {
	expense := ExpenseFromRecord(rec)
	if expense.Date.IsZero() {
		s.logger.Warn("expense date did not parse, record sorts last",
			log.FieldRecordID, rec.ID,
			log.FieldError, "unrecognized timestamp "+rec.Date)
	}
	return expense
}

// ExpenseFromRecord maps a wire record into the domain, parsing the
// serialized timestamp here (the gateway does no date parsing).
func ExpenseFromRecord(rec api.ExpenseRecord) core.Expense {
	return core.Expense{
		ID:          rec.ID,
		Amount:      core.CentsFromFloat(rec.Amount),
		Description: rec.Description,
		Category:    rec.Category,
		Date:        parseServerTime(rec.Date),
		OwnerID:     rec.UserID,
	}
}

// parseServerTime parses the timestamp formats the service emits. Unknown
// formats come back as the zero time rather than failing the whole record.
func parseServerTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
