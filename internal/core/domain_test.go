package core

import (
	"testing"
	"time"
)

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
	if err := (Money{Cents: -100}).Validate(); err == nil {
		t.Fatalf("expected error for negative")
	}
}

func TestExpenseDraftValidate(t *testing.T) {
	good := ExpenseDraft{
		Amount:      Money{Cents: 1250},
		Description: "groceries",
		Category:    "food",
		Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name  string
		draft ExpenseDraft
		want  error
	}{
		{"zero amount", ExpenseDraft{Description: "a", Category: "c", Date: good.Date}, ErrInvalidAmount},
		{"empty description", ExpenseDraft{Amount: Money{Cents: 1}, Category: "c", Date: good.Date}, ErrEmptyDescription},
		{"blank description", ExpenseDraft{Amount: Money{Cents: 1}, Description: "   ", Category: "c", Date: good.Date}, ErrEmptyDescription},
		{"empty category", ExpenseDraft{Amount: Money{Cents: 1}, Description: "a", Date: good.Date}, ErrEmptyCategory},
		{"zero date", ExpenseDraft{Amount: Money{Cents: 1}, Description: "a", Category: "c"}, ErrZeroDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.draft.Validate(); err != tc.want {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestIncomeDraftValidate(t *testing.T) {
	good := IncomeDraft{Amount: Money{Cents: 500000}, Source: "salary", Description: "march"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (IncomeDraft{Amount: Money{Cents: 1}}).Validate(); err != ErrEmptySource {
		t.Fatalf("expected ErrEmptySource")
	}
	if err := (IncomeDraft{Source: "salary"}).Validate(); err != ErrInvalidAmount {
		t.Fatalf("expected ErrInvalidAmount")
	}
	// description is optional for income
	if err := (IncomeDraft{Amount: Money{Cents: 1}, Source: "other"}).Validate(); err != nil {
		t.Fatalf("expected ok without description, got %v", err)
	}
}
