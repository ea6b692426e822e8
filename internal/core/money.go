// Package core provides the ledger domain types, money handling and the
// derived-metrics engine.
//
// This file contains parsing and formatting of monetary amounts. Amounts are
// stored as int64 cents; decimals are only touched at the edges (user input
// and the remote wire format, which carries plain JSON numbers).
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a user-entered decimal string to Money.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and
// rounds half-up on the third decimal place. Signs are rejected: ledger
// amounts are entered as positive quantities.
//
// Examples:
//
//	ParseAmount("12.34")  -> 1234 cents
//	ParseAmount("12,346") -> 1235 cents (rounds up)
//	ParseAmount("-5")     -> ErrInvalidAmount
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return Money{}, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	cents := d.Shift(2).Round(0).IntPart()
	if cents <= 0 {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: cents}, nil
}

// CentsFromFloat converts a wire-format amount (JSON number) to Money,
// rounding half-up at the third decimal place.
func CentsFromFloat(v float64) Money {
	return Money{Cents: decimal.NewFromFloat(v).Shift(2).Round(0).IntPart()}
}

// Float returns the amount as the wire-format JSON number (major units).
func (m Money) Float() float64 {
	f, _ := decimal.New(m.Cents, -2).Float64()
	return f
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

// Format renders the amount for display: thousands separators, and either
// zero or two fraction digits depending on whether the amount is whole.
//
//	Money{Cents: 100000} -> "1,000"
//	Money{Cents: 123450} -> "1,234.50"
func (m Money) Format() string {
	d := decimal.New(m.Cents, -2)
	var s string
	if m.Cents%100 == 0 {
		s = d.StringFixed(0)
	} else {
		s = d.StringFixed(2)
	}
	return groupThousands(s)
}

// groupThousands inserts comma separators into the integer part of a
// formatted decimal string.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}
	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}
	out := intPart + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
