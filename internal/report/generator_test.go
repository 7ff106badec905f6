package report

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"mce/internal/core"
)

// memStore is an in-memory Store for generator tests.
type memStore struct {
	disbursements []core.Disbursement
	contributions []core.Contribution
	err           error
}

func (s *memStore) DisbursementsInRange(_ context.Context, start, end core.Date) ([]core.Disbursement, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []core.Disbursement
	for _, d := range s.disbursements {
		if d.Date >= start && d.Date <= end {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *memStore) ContributionsInRange(_ context.Context, start, end core.Date) ([]core.Contribution, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []core.Contribution
	for _, c := range s.contributions {
		if c.Date >= start && c.Date <= end {
			out = append(out, c)
		}
	}
	return out, nil
}

func contribution(id, payer string, cents int64, date core.Date) core.Contribution {
	return core.Contribution{ID: id, PayerName: payer, Amount: core.Money{Cents: cents}, Date: date}
}

func q1Params(cohStart int64) core.ReportParams {
	return core.ReportParams{
		Year:            2026,
		Period:          "Q1",
		PeriodType:      core.PeriodQuarterly,
		CashOnHandStart: core.Money{Cents: cohStart},
	}
}

func TestGenerateCashOnHandInvariant(t *testing.T) {
	store := &memStore{
		disbursements: []core.Disbursement{
			{ID: "d1", PayeeName: "Acme Printing", Amount: core.Money{Cents: 50000}, Date: "2026-02-01", Purpose: "Flyers", Category: core.CategoryOperating},
		},
		contributions: []core.Contribution{
			contribution("c1", "Jordan Smith", 30000, "2026-01-10"),
		},
	}

	r, err := NewGenerator(store).Generate(context.Background(), q1Params(100000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := r.Summary
	if s.TotalReceipts.Cents != 30000 {
		t.Errorf("total receipts = %d", s.TotalReceipts.Cents)
	}
	if s.TotalDisbursements.Cents != 50000 {
		t.Errorf("total disbursements = %d", s.TotalDisbursements.Cents)
	}
	if want := s.CashOnHandStart.Cents + s.TotalReceipts.Cents - s.TotalDisbursements.Cents; s.CashOnHandEnd.Cents != want {
		t.Errorf("ending cash on hand = %d, want %d", s.CashOnHandEnd.Cents, want)
	}
	if s.CashOnHandEnd.Cents != 80000 {
		t.Errorf("ending cash on hand = %d, want 80000", s.CashOnHandEnd.Cents)
	}
}

func TestGenerateItemizationThreshold(t *testing.T) {
	// Three $80 contributions from one payer: the third crosses the $200
	// cumulative threshold and is itemized; the first two stay unitemized.
	store := &memStore{
		contributions: []core.Contribution{
			contribution("c1", "Jordan Smith", 8000, "2026-01-05"),
			contribution("c2", "Jordan Smith", 8000, "2026-02-05"),
			contribution("c3", "Jordan Smith", 8000, "2026-03-05"),
		},
	}

	r, err := NewGenerator(store).Generate(context.Background(), q1Params(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(r.ScheduleA) != 1 {
		t.Fatalf("schedule A items = %d, want 1", len(r.ScheduleA))
	}
	item := r.ScheduleA[0]
	if item.ID != "c3" {
		t.Errorf("itemized id = %s, want c3", item.ID)
	}
	if item.CycleToDate.Cents != 24000 {
		t.Errorf("cycle to date = %d, want 24000", item.CycleToDate.Cents)
	}
	if r.Summary.UnitemizedReceipts.Cents != 16000 {
		t.Errorf("unitemized = %d, want 16000", r.Summary.UnitemizedReceipts.Cents)
	}
	if r.Summary.ItemizedReceipts.Cents != 8000 {
		t.Errorf("itemized = %d, want 8000", r.Summary.ItemizedReceipts.Cents)
	}
	if got, want := r.Summary.ItemizedReceipts.Cents+r.Summary.UnitemizedReceipts.Cents, r.Summary.TotalReceipts.Cents; got != want {
		t.Errorf("itemized+unitemized = %d, total receipts = %d", got, want)
	}
}

func TestGenerateItemizationPersistsAcrossPeriods(t *testing.T) {
	// The payer crossed the threshold in Q1; a small Q2 contribution is
	// still itemized because cycle totals carry forward.
	store := &memStore{
		contributions: []core.Contribution{
			contribution("c1", "Jordan Smith", 25000, "2026-01-05"),
			contribution("c2", "Jordan Smith", 500, "2026-04-10"),
		},
	}

	params := q1Params(0)
	params.Period = "Q2"
	r, err := NewGenerator(store).Generate(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(r.ScheduleA) != 1 || r.ScheduleA[0].ID != "c2" {
		t.Fatalf("expected c2 itemized in Q2, got %+v", r.ScheduleA)
	}
	if r.ScheduleA[0].CycleToDate.Cents != 25500 {
		t.Errorf("cycle to date = %d, want 25500", r.ScheduleA[0].CycleToDate.Cents)
	}
	// Q1's contribution must not leak into Q2 totals.
	if r.Summary.TotalReceipts.Cents != 500 {
		t.Errorf("total receipts = %d, want 500", r.Summary.TotalReceipts.Cents)
	}
}

func TestGenerateWarnsOnMissingOccupationEmployer(t *testing.T) {
	c := contribution("c1", "Jordan Smith", 30000, "2026-01-05")
	store := &memStore{contributions: []core.Contribution{c}}

	r, err := NewGenerator(store).Generate(context.Background(), q1Params(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Warnings) != 1 || !strings.Contains(r.Warnings[0], "Jordan Smith") {
		t.Fatalf("expected one warning naming the payer, got %v", r.Warnings)
	}

	// With both fields present there is no warning.
	c.Occupation = "Engineer"
	c.Employer = "Acme"
	store.contributions = []core.Contribution{c}
	r, err = NewGenerator(store).Generate(context.Background(), q1Params(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", r.Warnings)
	}
}

func TestGenerateOrdersLineItemsByDate(t *testing.T) {
	store := &memStore{
		disbursements: []core.Disbursement{
			{ID: "d2", PayeeName: "Later", Amount: core.Money{Cents: 100}, Date: "2026-03-01", Purpose: "x", Category: core.CategoryOther},
			{ID: "d1", PayeeName: "Earlier", Amount: core.Money{Cents: 100}, Date: "2026-01-01", Purpose: "x", Category: core.CategoryOther},
			{ID: "d0", PayeeName: "Same day", Amount: core.Money{Cents: 100}, Date: "2026-03-01", Purpose: "x", Category: core.CategoryOther},
		},
	}

	r, err := NewGenerator(store).Generate(context.Background(), q1Params(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var ids []string
	for _, item := range r.ScheduleB {
		ids = append(ids, item.ID)
	}
	if want := []string{"d1", "d0", "d2"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("order = %v, want %v", ids, want)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	store := &memStore{
		disbursements: []core.Disbursement{
			{ID: "d1", PayeeName: "Acme", Amount: core.Money{Cents: 100}, Date: "2026-01-01", Purpose: "x", Category: core.CategoryOperating},
		},
		contributions: []core.Contribution{
			contribution("c1", "A", 30000, "2026-01-02"),
			contribution("c2", "B", 30000, "2026-01-02"),
		},
	}
	gen := NewGenerator(store)

	first, err := gen.Generate(context.Background(), q1Params(1000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := gen.Generate(context.Background(), q1Params(1000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("reports from identical data differ")
	}
}

func TestGenerateStoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("connection refused")
	_, err := NewGenerator(&memStore{err: storeErr}).Generate(context.Background(), q1Params(0))
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestGenerateEmptyPeriod(t *testing.T) {
	r, err := NewGenerator(&memStore{}).Generate(context.Background(), q1Params(4200))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.ScheduleA) != 0 || len(r.ScheduleB) != 0 {
		t.Errorf("expected empty schedules")
	}
	if r.Summary.CashOnHandEnd.Cents != 4200 {
		t.Errorf("ending cash on hand = %d, want 4200", r.Summary.CashOnHandEnd.Cents)
	}
}

func TestGenerateRejectsBadPeriod(t *testing.T) {
	_, err := NewGenerator(&memStore{}).Generate(context.Background(), core.ReportParams{
		Year: 2026, Period: "Q9", PeriodType: core.PeriodQuarterly,
	})
	if err == nil {
		t.Fatal("expected error for unknown period label")
	}
}
