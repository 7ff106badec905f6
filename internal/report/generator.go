// Package report assembles period-bounded compliance reports from stored
// transaction records.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"mce/internal/core"
)

// Store is the record-store port the generator reads from. Implementations
// must return records whose dates fall inside [start, end] inclusive.
type Store interface {
	DisbursementsInRange(ctx context.Context, start, end core.Date) ([]core.Disbursement, error)
	ContributionsInRange(ctx context.Context, start, end core.Date) ([]core.Contribution, error)
}

// Generator computes reports on demand. It is stateless across calls: the
// store is injected once at startup and shared by reference, and concurrent
// Generate calls are safe.
type Generator struct {
	store Store
}

func NewGenerator(store Store) *Generator {
	return &Generator{store: store}
}

// Generate builds the report for one period. Contributions are pulled for
// the full election cycle up to the period end so per-payer itemization
// totals accumulate across period boundaries. Store failures propagate as a
// single wrapped error; partial data is never returned.
func (g *Generator) Generate(ctx context.Context, p core.ReportParams) (*core.Report, error) {
	start, end, err := core.ResolvePeriod(p.Year, p.Period, p.PeriodType)
	if err != nil {
		return nil, err
	}
	cycleStart := core.CycleStart(p.Year)

	var (
		disbursements []core.Disbursement
		contributions []core.Contribution
	)
	eg, egctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		disbursements, err = g.store.DisbursementsInRange(egctx, start, end)
		return err
	})
	eg.Go(func() error {
		var err error
		contributions, err = g.store.ContributionsInRange(egctx, cycleStart, end)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("query record store for %d %s: %w", p.Year, p.Period, err)
	}

	r := &core.Report{
		Year:       p.Year,
		Period:     p.Period,
		PeriodType: p.PeriodType,
		StartDate:  start,
		EndDate:    end,
		ScheduleA:  []core.ScheduleAItem{},
		ScheduleB:  []core.ScheduleBItem{},
		Warnings:   []string{},
	}

	g.buildScheduleA(r, contributions, start, end)
	g.buildScheduleB(r, disbursements)

	r.Summary.CashOnHandStart = p.CashOnHandStart
	r.Summary.CashOnHandEnd = core.Money{
		Cents: p.CashOnHandStart.Cents + r.Summary.TotalReceipts.Cents - r.Summary.TotalDisbursements.Cents,
	}
	r.Summary.ScheduleACount = len(r.ScheduleA)
	r.Summary.ScheduleBCount = len(r.ScheduleB)

	slog.InfoContext(ctx, "Report generated",
		"year", p.Year,
		"period", p.Period,
		"schedule_a_items", len(r.ScheduleA),
		"schedule_b_items", len(r.ScheduleB),
		"warnings", len(r.Warnings))

	return r, nil
}

// buildScheduleA walks the cycle's contributions in deterministic order,
// maintaining per-payer running totals. A contribution is itemized once the
// payer's cycle total exceeds the threshold, and every later contribution
// from that payer stays itemized even when individually small. In-period
// contributions below the threshold fold into the unitemized lump sum.
func (g *Generator) buildScheduleA(r *core.Report, contributions []core.Contribution, start, end core.Date) {
	sortContributions(contributions)

	running := make(map[string]int64)
	for _, c := range contributions {
		key := payerKey(c.PayerName)
		running[key] += c.Amount.Cents
		cycleToDate := running[key]

		inPeriod := c.Date >= start && c.Date <= end
		if !inPeriod {
			continue
		}
		r.Summary.ContributionCount++
		r.Summary.TotalReceipts.Cents += c.Amount.Cents

		if cycleToDate <= core.ItemizationThresholdCents {
			r.Summary.UnitemizedReceipts.Cents += c.Amount.Cents
			continue
		}

		r.Summary.ItemizedReceipts.Cents += c.Amount.Cents
		r.ScheduleA = append(r.ScheduleA, core.ScheduleAItem{
			Contribution: c,
			CycleToDate:  core.Money{Cents: cycleToDate},
		})
		if c.Occupation == "" || c.Employer == "" {
			r.Warnings = append(r.Warnings, fmt.Sprintf(
				"itemized contribution from %s on %s is missing occupation/employer", c.PayerName, c.Date))
		}
	}
}

func (g *Generator) buildScheduleB(r *core.Report, disbursements []core.Disbursement) {
	sort.SliceStable(disbursements, func(i, j int) bool {
		if disbursements[i].Date != disbursements[j].Date {
			return disbursements[i].Date < disbursements[j].Date
		}
		return disbursements[i].ID < disbursements[j].ID
	})
	for _, d := range disbursements {
		r.Summary.TotalDisbursements.Cents += d.Amount.Cents
		r.ScheduleB = append(r.ScheduleB, core.ScheduleBItem{Disbursement: d})
	}
}

// sortContributions orders by date then record id. The ordering is a
// contract: downstream consumers diff reports generated at different times.
func sortContributions(contributions []core.Contribution) {
	sort.SliceStable(contributions, func(i, j int) bool {
		if contributions[i].Date != contributions[j].Date {
			return contributions[i].Date < contributions[j].Date
		}
		return contributions[i].ID < contributions[j].ID
	})
}

// payerKey folds payer identity for cycle aggregation. Matching is by
// case-insensitive trimmed name.
func payerKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
