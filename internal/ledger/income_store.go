package ledger

import (
	"context"
	"sync"

	"gastos/internal/api"
	"gastos/internal/core"
	"gastos/internal/log"
)

// IncomeGateway is the slice of the remote API the income store needs.
type IncomeGateway interface {
	ListIncome(ctx context.Context) ([]api.IncomeRecord, error)
	CreateIncome(ctx context.Context, payload api.IncomePayload) (api.IncomeRecord, error)
	DeleteIncome(ctx context.Context, id string) error
}

// IncomeStore holds the local income collection. It is simpler than the
// expense store: no update operation, and every mutation triggers a full
// re-fetch instead of a local splice, trading an extra round trip for
// guaranteed agreement with server-side ordering and assignment.
//
// Refreshes are unbounded (no page limit), unlike expenses. Income volumes
// in a personal ledger stay small enough for that to hold up.
type IncomeStore struct {
	gateway IncomeGateway
	logger  *log.Logger

	mu      sync.Mutex
	state   State
	lastErr error
	incomes []core.Income
}

// NewIncomeStore creates a store in the uninitialized state.
func NewIncomeStore(gateway IncomeGateway, logger *log.Logger) *IncomeStore {
	if logger == nil {
		logger = log.New(log.Config{})
	}
	return &IncomeStore{
		gateway: gateway,
		logger:  logger.WithComponent(log.ComponentIncome),
		state:   StateUninitialized,
	}
}

// Refresh discards local state and repopulates from the remote collection.
// On failure the previous collection is preserved.
func (s *IncomeStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()

	records, err := s.gateway.ListIncome(ctx)
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

	incomes := make([]core.Income, 0, len(records))
	for _, rec := range records {
		income := incomeFromRecord(rec)
		if income.CreatedAt.IsZero() {
			s.logger.Warn("income date did not parse",
				log.FieldRecordID, rec.ID,
				log.FieldError, "unrecognized timestamp "+rec.CreatedAt)
		}
		incomes = append(incomes, income)
	}

	s.mu.Lock()
	s.incomes = incomes
	s.state = StateReady
	s.lastErr = nil
	s.mu.Unlock()

	s.logger.Debug("refreshed",
		log.FieldOperation, log.OpRefresh,
		log.FieldCount, len(incomes))
	return nil
}

// Add validates the draft, creates the record remotely and then re-fetches
// the whole collection. A failed create leaves local state unchanged.
func (s *IncomeStore) Add(ctx context.Context, draft core.IncomeDraft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	rec, err := s.gateway.CreateIncome(ctx, api.IncomePayload{
		Amount:      draft.Amount.Float(),
		Source:      draft.Source,
		Description: draft.Description,
	})
	if err != nil {
		return err
	}

	s.logger.Info("income created",
		log.FieldOperation, log.OpCreate,
		log.FieldRecordID, rec.ID,
		log.FieldSource, rec.Source,
		log.FieldAmountCents, core.CentsFromFloat(rec.Amount).Cents)

	return s.Refresh(ctx)
}

// Delete removes the record remotely and then re-fetches the collection.
func (s *IncomeStore) Delete(ctx context.Context, id string) error {
	if err := s.gateway.DeleteIncome(ctx, id); err != nil {
		return err
	}

	s.logger.Info("income deleted",
		log.FieldOperation, log.OpDelete,
		log.FieldRecordID, id)

	return s.Refresh(ctx)
}

// Incomes returns a copy of the loaded collection in server order.
func (s *IncomeStore) Incomes() []core.Income {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Income, len(s.incomes))
	copy(out, s.incomes)
	return out
}

// Total is the running total across all loaded records.
func (s *IncomeStore) Total() core.Money {
	return core.TotalIncome(s.Incomes())
}

// State returns the load state.
func (s *IncomeStore) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastErr returns the error of the most recent failed refresh, or nil.
func (s *IncomeStore) LastErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func incomeFromRecord(rec api.IncomeRecord) core.Income {
	return core.Income{
		ID:          rec.ID,
		Amount:      core.CentsFromFloat(rec.Amount),
		Source:      rec.Source,
		Description: rec.Description,
		CreatedAt:   parseServerTime(rec.CreatedAt),
		OwnerID:     rec.UserID,
	}
}
