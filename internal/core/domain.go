package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Money is an amount in minor units (cents). Ledger amounts are always
	// strictly positive: expense versus income is a store-level partition,
	// never a sign convention.
	Money struct {
		Cents int64
	}

	// Expense is a server-confirmed expense record. ID and OwnerID are
	// assigned by the remote store and are never generated client-side.
	Expense struct {
		ID          string
		Amount      Money
		Description string
		Category    string // key into the category catalog, stored as-is
		Date        time.Time
		OwnerID     string
	}

	// Income is a server-confirmed income record. The attribution timestamp
	// is the server-assigned CreatedAt.
	Income struct {
		ID          string
		Amount      Money
		Source      string // key into the income source table, stored as-is
		Description string
		CreatedAt   time.Time
		OwnerID     string
	}

	// ExpenseDraft is client input for a new expense, validated before any
	// network call.
	ExpenseDraft struct {
		Amount      Money
		Description string
		Category    string
		Date        time.Time
	}

	// IncomeDraft is client input for a new income record.
	IncomeDraft struct {
		Amount      Money
		Source      string
		Description string
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyCategory    = errors.New("empty category")
	ErrEmptySource      = errors.New("empty source")
	ErrZeroDate         = errors.New("date cannot be zero")
)

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (d ExpenseDraft) Validate() error {
	if err := d.Amount.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(d.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(d.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if strings.TrimSpace(d.Category) == "" {
		return ErrEmptyCategory
	}
	if d.Date.IsZero() {
		return ErrZeroDate
	}
	return nil
}

func (d IncomeDraft) Validate() error {
	if err := d.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(d.Source) == "" {
		return ErrEmptySource
	}
	if len(d.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	return nil
}
