// Package memory is an in-process ReportWriter for tests and for
// running without a spreadsheet configured.
package memory

import (
	"context"
	"fmt"
	"sync"

	"mce/internal/core"
)

type Store struct {
	mu      sync.Mutex
	reports []*core.Report
}

func New() *Store {
	return &Store{}
}

// WriteReport stores the report and returns a synthetic reference.
func (s *Store) WriteReport(_ context.Context, r *core.Report) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, r)
	return fmt.Sprintf("mem:%d", len(s.reports)), nil
}

// Reports returns everything written so far.
func (s *Store) Reports() []*core.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*core.Report, len(s.reports))
	copy(out, s.reports)
	return out
}
