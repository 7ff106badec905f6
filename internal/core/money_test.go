package core

import "testing"

func TestMoneyDollars(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{1050, "10.50"},
		{50000, "500.00"},
		{5, "0.05"},
		{100, "1.00"},
		{99, "0.99"},
		{0, "0.00"},
		{-1050, "-10.50"},
		{123456789, "1234567.89"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).Dollars(); got != tc.want {
			t.Errorf("Dollars(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatal("expected error for zero")
	}
	if err := (Money{Cents: -100}).Validate(); err == nil {
		t.Fatal("expected error for negative")
	}
}
