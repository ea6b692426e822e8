package core

import (
	"sort"
	"time"
)

// Derived metrics are pure aggregations over a ledger snapshot. Windowed
// totals take the reference instant explicitly instead of reading the system
// clock, so they stay deterministic under test. Nothing here is cached:
// every call recomputes from the snapshot it is given.

// TodayTotal sums expenses attributed to the calendar day of now, in now's
// location: the half-open interval [local midnight, local midnight + 24h).
func TodayTotal(expenses []Expense, now time.Time) Money {
	start := startOfDay(now)
	end := start.Add(24 * time.Hour)
	return sumWhere(expenses, func(e Expense) bool {
		return !e.Date.Before(start) && e.Date.Before(end)
	})
}

// WeekTotal sums expenses since the start of the current week. Weeks start
// on Sunday (day-of-week index 0) at local midnight.
func WeekTotal(expenses []Expense, now time.Time) Money {
	start := startOfDay(now).AddDate(0, 0, -int(now.Weekday()))
	return sumWhere(expenses, func(e Expense) bool {
		return !e.Date.Before(start)
	})
}

// MonthTotal sums expenses since the first day of now's calendar month,
// local time.
func MonthTotal(expenses []Expense, now time.Time) Money {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return sumWhere(expenses, func(e Expense) bool {
		return !e.Date.Before(start)
	})
}

// CategoryTotals maps each category key to its summed amount across the full
// snapshot. Not windowed.
func CategoryTotals(expenses []Expense) map[string]Money {
	totals := make(map[string]Money)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// MonthlySeries maps "YYYY-MM" keys to summed amounts across the full
// snapshot, for trend views.
func MonthlySeries(expenses []Expense) map[string]Money {
	series := make(map[string]Money)
	for _, e := range expenses {
		key := e.Date.Format("2006-01")
		series[key] = series[key].Add(e.Amount)
	}
	return series
}

// TotalIncome sums all loaded income amounts.
func TotalIncome(incomes []Income) Money {
	var total Money
	for _, in := range incomes {
		total = total.Add(in.Amount)
	}
	return total
}

// SortByDateDesc orders expenses most-recent-first. Stable so that records
// sharing a date keep their server order.
func SortByDateDesc(expenses []Expense) {
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sumWhere(expenses []Expense, keep func(Expense) bool) Money {
	var total Money
	for _, e := range expenses {
		if keep(e) {
			total = total.Add(e.Amount)
		}
	}
	return total
}
