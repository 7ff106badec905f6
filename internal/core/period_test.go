package core

import "testing"

func TestResolvePeriodQuarters(t *testing.T) {
	cases := []struct {
		label      string
		start, end Date
	}{
		{"Q1", "2026-01-01", "2026-03-31"},
		{"Q2", "2026-04-01", "2026-06-30"},
		{"Q3", "2026-07-01", "2026-09-30"},
		{"Q4", "2026-10-01", "2026-12-31"},
	}
	for _, tc := range cases {
		start, end, err := ResolvePeriod(2026, tc.label, PeriodQuarterly)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.label, err)
		}
		if start != tc.start || end != tc.end {
			t.Errorf("%s: got [%s, %s], want [%s, %s]", tc.label, start, end, tc.start, tc.end)
		}
	}
}

func TestResolvePeriodMonthly(t *testing.T) {
	cases := []struct {
		year       int
		label      string
		start, end Date
	}{
		{2026, "M1", "2026-01-01", "2026-01-31"},
		{2026, "M2", "2026-02-01", "2026-02-28"},
		{2024, "M2", "2024-02-01", "2024-02-29"}, // leap year
		{2026, "M12", "2026-12-01", "2026-12-31"},
	}
	for _, tc := range cases {
		start, end, err := ResolvePeriod(tc.year, tc.label, PeriodMonthly)
		if err != nil {
			t.Fatalf("%d %s: unexpected error %v", tc.year, tc.label, err)
		}
		if start != tc.start || end != tc.end {
			t.Errorf("%d %s: got [%s, %s], want [%s, %s]", tc.year, tc.label, start, end, tc.start, tc.end)
		}
	}
}

func TestResolvePeriodYearly(t *testing.T) {
	start, end, err := ResolvePeriod(2026, "YE", PeriodYearly)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if start != "2026-01-01" || end != "2026-12-31" {
		t.Errorf("got [%s, %s]", start, end)
	}
}

func TestResolvePeriodRejectsBadInput(t *testing.T) {
	cases := []struct {
		year       int
		label      string
		periodType PeriodType
	}{
		{2026, "Q5", PeriodQuarterly},
		{2026, "q1", PeriodQuarterly},
		{2026, "M13", PeriodMonthly},
		{2026, "M0", PeriodMonthly},
		{2026, "Q1", PeriodYearly},
		{2026, "Q1", PeriodType("weekly")},
		{2019, "Q1", PeriodQuarterly},
		{2101, "Q1", PeriodQuarterly},
	}
	for _, tc := range cases {
		if _, _, err := ResolvePeriod(tc.year, tc.label, tc.periodType); err == nil {
			t.Errorf("ResolvePeriod(%d, %q, %q) expected error", tc.year, tc.label, tc.periodType)
		}
	}
}

func TestCycleStart(t *testing.T) {
	cases := []struct {
		year int
		want Date
	}{
		{2025, "2025-01-01"},
		{2026, "2025-01-01"},
		{2027, "2027-01-01"},
		{2028, "2027-01-01"},
	}
	for _, tc := range cases {
		if got := CycleStart(tc.year); got != tc.want {
			t.Errorf("CycleStart(%d) = %s, want %s", tc.year, got, tc.want)
		}
	}
}
