package core

import (
	"fmt"
	"time"
)

// ItemizationThresholdCents is the cumulative per-payer amount in an election
// cycle above which contributions must be itemized on Schedule A.
const ItemizationThresholdCents = 20000

// Plausible range for report years accepted at the API boundary.
const (
	MinReportYear = 2020
	MaxReportYear = 2100
)

// ResolvePeriod maps a period label, type and year onto a concrete inclusive
// [start, end] date range. The mapping is pure and deterministic.
//
// Supported labels by type:
//
//	quarterly: Q1..Q4
//	monthly:   M1..M12
//	yearly:    YE
func ResolvePeriod(year int, label string, periodType PeriodType) (start, end Date, err error) {
	if year < MinReportYear || year > MaxReportYear {
		return "", "", fmt.Errorf("%w: year %d out of range %d-%d", ErrInvalidPeriod, year, MinReportYear, MaxReportYear)
	}

	switch periodType {
	case PeriodQuarterly:
		quarters := map[string]int{"Q1": 1, "Q2": 4, "Q3": 7, "Q4": 10}
		startMonth, ok := quarters[label]
		if !ok {
			return "", "", fmt.Errorf("%w: unknown quarterly label %q (use Q1-Q4)", ErrInvalidPeriod, label)
		}
		return monthSpan(year, startMonth, 3)
	case PeriodMonthly:
		var month int
		if _, scanErr := fmt.Sscanf(label, "M%d", &month); scanErr != nil || month < 1 || month > 12 {
			return "", "", fmt.Errorf("%w: unknown monthly label %q (use M1-M12)", ErrInvalidPeriod, label)
		}
		return monthSpan(year, month, 1)
	case PeriodYearly:
		if label != "YE" {
			return "", "", fmt.Errorf("%w: unknown yearly label %q (use YE)", ErrInvalidPeriod, label)
		}
		return monthSpan(year, 1, 12)
	}
	return "", "", fmt.Errorf("%w: unknown period type %q", ErrInvalidPeriod, periodType)
}

// CycleStart returns January 1 of the odd year opening the two-year election
// cycle containing the given year. Per-payer itemization totals accumulate
// from this date.
func CycleStart(year int) Date {
	if year%2 == 0 {
		year--
	}
	return Date(fmt.Sprintf("%04d-01-01", year))
}

func monthSpan(year, startMonth, months int) (Date, Date, error) {
	first := time.Date(year, time.Month(startMonth), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, months, -1)
	return Date(first.Format("2006-01-02")), Date(last.Format("2006-01-02")), nil
}
