// Package format renders an assembled report into its three external
// representations: per-schedule CSV, the flat electronic-filing file, and
// the bundled JSON payload. All transforms are pure; identical reports
// produce byte-identical output.
package format

import (
	"encoding/csv"
	"strconv"
	"strings"

	"mce/internal/core"
)

var (
	scheduleAHeader = []string{
		"date", "contributor_name", "address_line1", "city", "state", "zip",
		"occupation", "employer", "amount", "cycle_to_date",
	}
	scheduleBHeader = []string{
		"date", "payee_name", "address_line1", "city", "state", "zip",
		"purpose", "category", "amount", "check_number",
	}
)

// ScheduleACSV renders itemized contributions, one row per line item.
// An empty schedule still yields the header row.
func ScheduleACSV(r *core.Report) string {
	rows := make([][]string, 0, len(r.ScheduleA)+1)
	rows = append(rows, scheduleAHeader)
	for _, item := range r.ScheduleA {
		rows = append(rows, []string{
			string(item.Date),
			item.PayerName,
			item.Address.Line1,
			item.Address.City,
			item.Address.State,
			item.Address.Zip,
			item.Occupation,
			item.Employer,
			item.Amount.Dollars(),
			item.CycleToDate.Dollars(),
		})
	}
	return writeRows(rows)
}

// ScheduleBCSV renders itemized disbursements, one row per line item.
func ScheduleBCSV(r *core.Report) string {
	rows := make([][]string, 0, len(r.ScheduleB)+1)
	rows = append(rows, scheduleBHeader)
	for _, item := range r.ScheduleB {
		rows = append(rows, []string{
			string(item.Date),
			item.PayeeName,
			item.Address.Line1,
			item.Address.City,
			item.Address.State,
			item.Address.Zip,
			item.Purpose,
			string(item.Category),
			item.Amount.Dollars(),
			item.CheckNumber,
		})
	}
	return writeRows(rows)
}

// SummaryCSV renders the summary block as field,value rows.
func SummaryCSV(r *core.Report) string {
	s := r.Summary
	rows := [][]string{
		{"field", "value"},
		{"total_receipts", s.TotalReceipts.Dollars()},
		{"itemized_receipts", s.ItemizedReceipts.Dollars()},
		{"unitemized_receipts", s.UnitemizedReceipts.Dollars()},
		{"total_disbursements", s.TotalDisbursements.Dollars()},
		{"cash_on_hand_start", s.CashOnHandStart.Dollars()},
		{"cash_on_hand_end", s.CashOnHandEnd.Dollars()},
		{"schedule_a_count", strconv.Itoa(s.ScheduleACount)},
		{"schedule_b_count", strconv.Itoa(s.ScheduleBCount)},
		{"contribution_count", strconv.Itoa(s.ContributionCount)},
	}
	return writeRows(rows)
}

func writeRows(rows [][]string) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	// WriteAll flushes; the in-memory writer cannot fail.
	_ = w.WriteAll(rows)
	return sb.String()
}
