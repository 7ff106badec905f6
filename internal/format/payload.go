package format

import (
	"fmt"

	"mce/internal/core"
)

// ReportPayload bundles every representation of a report into one JSON
// response, so a single fetch serves clients that want the structured data,
// the CSVs, and the filing file without re-querying.
type ReportPayload struct {
	Report       *core.Report `json:"report"`
	ScheduleACSV string       `json:"scheduleACsv"`
	ScheduleBCSV string       `json:"scheduleBCsv"`
	SummaryCSV   string       `json:"summaryCsv"`
	FECFile      string       `json:"fecFile"`
}

func Payload(r *core.Report) ReportPayload {
	return ReportPayload{
		Report:       r,
		ScheduleACSV: ScheduleACSV(r),
		ScheduleBCSV: ScheduleBCSV(r),
		SummaryCSV:   SummaryCSV(r),
		FECFile:      FECFile(r),
	}
}

// ScheduleCSV returns one schedule's CSV by its query-parameter name.
func ScheduleCSV(r *core.Report, schedule string) (string, error) {
	switch schedule {
	case "a":
		return ScheduleACSV(r), nil
	case "b":
		return ScheduleBCSV(r), nil
	case "summary":
		return SummaryCSV(r), nil
	}
	return "", fmt.Errorf("unknown schedule %q: must be one of a, b, summary", schedule)
}

// CSVFilename returns the fixed download name for one schedule's CSV.
func CSVFilename(r *core.Report, schedule string) string {
	return fmt.Sprintf("schedule_%s_%d_%s.csv", schedule, r.Year, r.Period)
}
