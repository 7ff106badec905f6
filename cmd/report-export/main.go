// report-export generates a report for one period from the command line,
// writes it in the requested format, and optionally publishes the summary
// row to the configured Google Sheets spreadsheet.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"mce/internal/cli"
	"mce/internal/core"
	"mce/internal/format"
	"mce/internal/report"
	"mce/internal/sheets"
	gsheet "mce/internal/sheets/google"
)

func main() {
	var (
		year            = flag.Int("year", 0, "report year (required)")
		period          = flag.String("period", "", "period label: Q1-Q4, M1-M12 or YE (required)")
		periodType      = flag.String("period-type", "quarterly", "period type: quarterly, monthly or yearly")
		cashOnHandStart = flag.Int64("cash-on-hand-start", -1, "opening balance in cents (defaults to configuration)")
		outputFormat    = flag.String("format", "json", "output format: json, csv, fec")
		schedule        = flag.String("schedule", "", "schedule for csv output: a, b or summary")
		outPath         = flag.String("out", "", "output file (defaults to stdout)")
		exportSheets    = flag.Bool("sheets", false, "also append the summary row to the configured spreadsheet")
	)
	flag.Parse()

	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	if *year == 0 || *period == "" {
		fmt.Fprintln(os.Stderr, "usage: report-export -year 2026 -period Q1 [-format fec] [-out report.fec]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := cli.LoadAndValidateConfig(logger)

	sqliteRepo := cli.InitSQLite(logger, cfg.SQLiteDBPath)
	defer sqliteRepo.Close()

	opening := cfg.ReportCashOnHandStartCents
	if *cashOnHandStart >= 0 {
		opening = *cashOnHandStart
	}

	ctx := context.Background()
	generator := report.NewGenerator(sqliteRepo)
	rep, err := generator.Generate(ctx, core.ReportParams{
		Year:            *year,
		Period:          *period,
		PeriodType:      core.PeriodType(*periodType),
		CashOnHandStart: core.Money{Cents: opening},
	})
	if err != nil {
		logger.Error("Report generation failed", "error", err, "year", *year, "period", *period)
		os.Exit(1)
	}

	body, err := renderReport(rep, *outputFormat, *schedule)
	if err != nil {
		logger.Error("Report rendering failed", "error", err, "format", *outputFormat)
		os.Exit(1)
	}

	if err := writeOutput(*outPath, body); err != nil {
		logger.Error("Failed to write output", "error", err, "path", *outPath)
		os.Exit(1)
	}

	if *exportSheets {
		if cfg.GoogleSpreadsheetID == "" {
			logger.Error("Sheets export requested but no GOOGLE_SPREADSHEET_ID configured")
			os.Exit(1)
		}

		var writer sheets.ReportWriter
		writer, err = gsheet.NewClient(ctx, gsheet.Config{
			SpreadsheetID:   cfg.GoogleSpreadsheetID,
			SheetName:       cfg.GoogleSheetName,
			CredentialsJSON: cfg.GoogleCredentialsJSON,
			CredentialsFile: cfg.GoogleCredentialsFile,
		})
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", "error", err)
			os.Exit(1)
		}

		ref, err := writer.WriteReport(ctx, rep)
		if err != nil {
			logger.Error("Sheets export failed", "error", err)
			os.Exit(1)
		}
		logger.Info("Summary exported to spreadsheet", "sheets_ref", ref)
	}

	logger.Info("Report exported",
		"year", *year,
		"period", *period,
		"format", *outputFormat,
		"schedule_a_items", rep.Summary.ScheduleACount,
		"schedule_b_items", rep.Summary.ScheduleBCount,
		"warnings", len(rep.Warnings))
}

func renderReport(rep *core.Report, outputFormat, schedule string) (string, error) {
	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(format.Payload(rep), "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal payload: %w", err)
		}
		return string(data) + "\n", nil
	case "csv":
		if schedule == "" {
			return "", fmt.Errorf("csv format requires -schedule a, b or summary")
		}
		return format.ScheduleCSV(rep, schedule)
	case "fec":
		return format.FECFile(rep), nil
	}
	return "", fmt.Errorf("unknown format %q, must be one of: json, csv, fec", outputFormat)
}

func writeOutput(path, body string) error {
	if path == "" {
		_, err := os.Stdout.WriteString(body)
		return err
	}
	return os.WriteFile(path, []byte(body), 0644)
}
