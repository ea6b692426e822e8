package core

import (
	"testing"
	"time"
)

func expenseAt(cat string, cents int64, date time.Time) Expense {
	return Expense{ID: "x", Amount: Money{Cents: cents}, Description: "d", Category: cat, Date: date}
}

func TestTodayTotalBoundaries(t *testing.T) {
	loc := time.FixedZone("test", 8*60*60)
	now := time.Date(2024, 6, 15, 14, 30, 0, 0, loc)
	midnight := time.Date(2024, 6, 15, 0, 0, 0, 0, loc)

	expenses := []Expense{
		expenseAt("food", 1000, midnight.Add(time.Second)),  // 1s after midnight: in
		expenseAt("food", 2000, now.Add(-24*time.Hour)),     // exactly 24h ago: out
		expenseAt("food", 4000, midnight.Add(-time.Second)), // yesterday: out
		expenseAt("food", 8000, now),                        // now: in
	}

	got := TodayTotal(expenses, now)
	if got.Cents != 9000 {
		t.Fatalf("TodayTotal = %d, want 9000", got.Cents)
	}
}

func TestWeekTotalStartsSunday(t *testing.T) {
	// 2024-06-12 is a Wednesday; the week began Sunday 2024-06-09.
	now := time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC)

	expenses := []Expense{
		expenseAt("a", 100, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)),   // Sunday midnight: in
		expenseAt("a", 200, time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC)),  // Tuesday: in
		expenseAt("a", 400, time.Date(2024, 6, 8, 23, 0, 0, 0, time.UTC)),  // Saturday before: out
		expenseAt("a", 800, time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC)),  // previous week: out
	}

	if got := WeekTotal(expenses, now); got.Cents != 300 {
		t.Fatalf("WeekTotal = %d, want 300", got.Cents)
	}
}

func TestWeekTotalOnSunday(t *testing.T) {
	// When now is itself a Sunday the window starts at its own midnight.
	now := time.Date(2024, 6, 9, 10, 0, 0, 0, time.UTC)

	expenses := []Expense{
		expenseAt("a", 100, time.Date(2024, 6, 9, 1, 0, 0, 0, time.UTC)),
		expenseAt("a", 200, time.Date(2024, 6, 8, 22, 0, 0, 0, time.UTC)),
	}

	if got := WeekTotal(expenses, now); got.Cents != 100 {
		t.Fatalf("WeekTotal = %d, want 100", got.Cents)
	}
}

func TestMonthTotal(t *testing.T) {
	now := time.Date(2024, 2, 20, 8, 0, 0, 0, time.UTC)

	expenses := []Expense{
		expenseAt("a", 100, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
		expenseAt("a", 200, time.Date(2024, 2, 19, 0, 0, 0, 0, time.UTC)),
		expenseAt("a", 400, time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC)),
	}

	if got := MonthTotal(expenses, now); got.Cents != 300 {
		t.Fatalf("MonthTotal = %d, want 300", got.Cents)
	}
}

func TestCategoryTotals(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	expenses := []Expense{
		expenseAt("food", 1000, day),
		expenseAt("food", 500, day),
		expenseAt("transport", 700, day),
	}

	totals := CategoryTotals(expenses)
	if len(totals) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(totals))
	}
	if totals["food"].Cents != 1500 {
		t.Fatalf("food = %d, want 1500", totals["food"].Cents)
	}
	if totals["transport"].Cents != 700 {
		t.Fatalf("transport = %d, want 700", totals["transport"].Cents)
	}
}

func TestMonthlySeries(t *testing.T) {
	expenses := []Expense{
		expenseAt("a", 2000, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
		expenseAt("a", 3000, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
	}

	series := MonthlySeries(expenses)
	if len(series) != 2 {
		t.Fatalf("expected 2 months, got %d", len(series))
	}
	if series["2024-01"].Cents != 2000 {
		t.Fatalf("2024-01 = %d, want 2000", series["2024-01"].Cents)
	}
	if series["2024-02"].Cents != 3000 {
		t.Fatalf("2024-02 = %d, want 3000", series["2024-02"].Cents)
	}
}

func TestTotalIncome(t *testing.T) {
	incomes := []Income{
		{ID: "1", Amount: Money{Cents: 100}},
		{ID: "2", Amount: Money{Cents: 250}},
	}
	if got := TotalIncome(incomes); got.Cents != 350 {
		t.Fatalf("TotalIncome = %d, want 350", got.Cents)
	}
	if got := TotalIncome(nil); got.Cents != 0 {
		t.Fatalf("TotalIncome(nil) = %d, want 0", got.Cents)
	}
}

func TestSortByDateDesc(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	d3 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	expenses := []Expense{
		{ID: "a", Date: d1},
		{ID: "b", Date: d3},
		{ID: "c", Date: d2},
		{ID: "d", Date: d2}, // same date as c, must stay after it
	}
	SortByDateDesc(expenses)

	wantOrder := []string{"b", "c", "d", "a"}
	for i, id := range wantOrder {
		if expenses[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, expenses[i].ID, id)
		}
	}
}
