package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"mce/internal/core"
	"mce/internal/format"
)

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	params, ok := s.reportParams(w, r)
	if !ok {
		return
	}

	rep, err := s.generator.Generate(r.Context(), params)
	if err != nil {
		if errors.Is(err, core.ErrInvalidPeriod) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Report generation failed",
			"error", err, "year", params.Year, "period", params.Period)
		writeError(w, http.StatusInternalServerError, "could not generate report")
		return
	}

	s.recordAudit(r, "report", fmt.Sprintf("%d_%s", rep.Year, rep.Period), "generate", rep.Summary)

	switch r.URL.Query().Get("format") {
	case "", "json":
		writeJSON(w, http.StatusOK, format.Payload(rep))
	case "csv":
		s.writeCSVReport(w, r, rep)
	case "fec":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", format.FECFilename(rep)))
		_, _ = w.Write([]byte(format.FECFile(rep)))
	default:
		writeError(w, http.StatusBadRequest, "format must be one of: json, csv, fec")
	}
}

// writeCSVReport serves one schedule as a CSV download. CSV has no
// natural bundling, so the schedule query parameter is mandatory.
func (s *Server) writeCSVReport(w http.ResponseWriter, r *http.Request, rep *core.Report) {
	schedule := r.URL.Query().Get("schedule")
	if schedule == "" {
		writeError(w, http.StatusBadRequest, "csv format requires a schedule parameter: a, b or summary")
		return
	}

	body, err := format.ScheduleCSV(rep, schedule)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", format.CSVFilename(rep, schedule)))
	_, _ = w.Write([]byte(body))
}

func (s *Server) reportParams(w http.ResponseWriter, r *http.Request) (core.ReportParams, bool) {
	q := r.URL.Query()

	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "year must be an integer")
		return core.ReportParams{}, false
	}
	if year < 2000 || year > 2100 {
		writeError(w, http.StatusBadRequest, "year must be between 2000 and 2100")
		return core.ReportParams{}, false
	}

	period := q.Get("period")
	if period == "" {
		writeError(w, http.StatusBadRequest, "period is required")
		return core.ReportParams{}, false
	}

	periodType := core.PeriodQuarterly
	switch q.Get("periodType") {
	case "", string(core.PeriodQuarterly):
	case string(core.PeriodMonthly):
		periodType = core.PeriodMonthly
	case string(core.PeriodYearly):
		periodType = core.PeriodYearly
	default:
		writeError(w, http.StatusBadRequest, "periodType must be one of: quarterly, monthly, yearly")
		return core.ReportParams{}, false
	}

	cashOnHandStart := s.defaultCashOnHandStartCents
	if v := q.Get("cashOnHandStart"); v != "" {
		cents, err := strconv.ParseInt(v, 10, 64)
		if err != nil || cents < 0 {
			writeError(w, http.StatusBadRequest, "cashOnHandStart must be a non-negative integer cent amount")
			return core.ReportParams{}, false
		}
		cashOnHandStart = cents
	}

	return core.ReportParams{
		Year:            year,
		Period:          period,
		PeriodType:      periodType,
		CashOnHandStart: core.Money{Cents: cashOnHandStart},
	}, true
}
