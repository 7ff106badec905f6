// Package sheets defines the export ports for publishing generated
// report summaries outside the engine.
package sheets

import (
	"context"

	"mce/internal/core"
)

// Ports for outbound adapters.
type (
	// ReportWriter publishes one generated report summary and returns an
	// adapter-specific reference to where it landed.
	ReportWriter interface {
		WriteReport(ctx context.Context, r *core.Report) (ref string, err error)
	}
)
