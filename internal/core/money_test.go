package core

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"12.345", 1235, true}, // rounds up (half away from zero)
		{"12.344", 1234, true}, // rounds down
		{"12.346", 1235, true}, // rounds up
		{"0.01", 1, true},
		{"1000", 100000, true},
		{" 7.5 ", 750, true},
		{"", 0, false},
		{"0", 0, false},
		{"0.00", 0, false},
		{"-5", 0, false},
		{"+5", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
	}
	for _, tc := range cases {
		m, err := ParseAmount(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseAmount(%q) expected error", tc.in)
		}
		if tc.ok && m.Cents != tc.cents {
			t.Fatalf("ParseAmount(%q) = %d cents, want %d", tc.in, m.Cents, tc.cents)
		}
	}
}

func TestCentsFromFloat(t *testing.T) {
	cases := []struct {
		in    float64
		cents int64
	}{
		{12.34, 1234},
		{0.1, 10},
		{100, 10000},
		{19.99, 1999},
	}
	for _, tc := range cases {
		if got := CentsFromFloat(tc.in); got.Cents != tc.cents {
			t.Fatalf("CentsFromFloat(%v) = %d, want %d", tc.in, got.Cents, tc.cents)
		}
	}
}

func TestMoneyFloatRoundTrip(t *testing.T) {
	for _, cents := range []int64{1, 99, 100, 1234, 100000} {
		m := Money{Cents: cents}
		if got := CentsFromFloat(m.Float()); got.Cents != cents {
			t.Fatalf("round trip %d -> %v -> %d", cents, m.Float(), got.Cents)
		}
	}
}

func TestMoneyFormat(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{100, "1"},
		{1234, "12.34"},
		{100000, "1,000"},
		{123450, "1,234.50"},
		{123456789, "1,234,567.89"},
		{50, "0.50"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).Format(); got != tc.want {
			t.Fatalf("Format(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}
