package format

import (
	"fmt"
	"strconv"
	"strings"

	"mce/internal/core"
)

// Flat-file schema. The field order and widths below are the compatibility
// contract with downstream filing tooling; do not reorder fields.
//
//	HDR|FEC|8.3|MCE|1.0
//	F3N|<year>|<period>|<start YYYYMMDD>|<end YYYYMMDD>|<receipts cents>|<disbursements cents>|<coh start cents>|<coh end cents>
//	SA11A|<payer>|<line1>|<city>|<state>|<zip>|<date YYYYMMDD>|<amount cents>|<cycle-to-date cents>|<occupation>|<employer>
//	SB23|<payee>|<line1>|<city>|<state>|<zip>|<date YYYYMMDD>|<amount cents>|<category code>|<purpose>|<check number>
//	TRL|<schedule record count>
//
// Records are newline-terminated, pipe-delimited, amounts in whole cents,
// categories mapped through core.Category.FECCode. An empty period still
// emits HDR, F3N and TRL.
const (
	fecVersion  = "8.3"
	fecSoftware = "MCE"
	fecRelease  = "1.0"
)

// FECFile renders the flat electronic-filing representation. Output is
// byte-stable for identical input.
func FECFile(r *core.Report) string {
	var sb strings.Builder

	writeRecord(&sb, "HDR", "FEC", fecVersion, fecSoftware, fecRelease)
	writeRecord(&sb, "F3N",
		strconv.Itoa(r.Year),
		r.Period,
		r.StartDate.Compact(),
		r.EndDate.Compact(),
		cents(r.Summary.TotalReceipts),
		cents(r.Summary.TotalDisbursements),
		cents(r.Summary.CashOnHandStart),
		cents(r.Summary.CashOnHandEnd),
	)

	for _, item := range r.ScheduleA {
		writeRecord(&sb, "SA11A",
			item.PayerName,
			item.Address.Line1,
			item.Address.City,
			item.Address.State,
			item.Address.Zip,
			item.Date.Compact(),
			cents(item.Amount),
			cents(item.CycleToDate),
			item.Occupation,
			item.Employer,
		)
	}
	for _, item := range r.ScheduleB {
		writeRecord(&sb, "SB23",
			item.PayeeName,
			item.Address.Line1,
			item.Address.City,
			item.Address.State,
			item.Address.Zip,
			item.Date.Compact(),
			cents(item.Amount),
			item.Category.FECCode(),
			item.Purpose,
			item.CheckNumber,
		)
	}

	writeRecord(&sb, "TRL", strconv.Itoa(len(r.ScheduleA)+len(r.ScheduleB)))
	return sb.String()
}

// FECFilename returns the fixed download name for a period's filing.
func FECFilename(r *core.Report) string {
	return fmt.Sprintf("mce_%d_%s.fec", r.Year, r.Period)
}

func writeRecord(sb *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(sanitizeField(f))
	}
	sb.WriteByte('\n')
}

// sanitizeField keeps free text from breaking the record structure.
func sanitizeField(s string) string {
	s = strings.ReplaceAll(s, "|", "/")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

func cents(m core.Money) string {
	return strconv.FormatInt(m.Cents, 10)
}
