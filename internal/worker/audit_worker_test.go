package worker

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"mce/internal/amqp"
	"mce/internal/storage"
)

func TestHandleAuditMessage(t *testing.T) {
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "mce.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	w := NewAuditWorker(repo)
	ctx := context.Background()

	err = w.HandleAuditMessage(ctx, &amqp.AuditMessage{
		EntityType: "contribution",
		EntityID:   "c1",
		Action:     "create",
		NewValue:   `{"payerName":"Jordan Smith"}`,
		Source:     "api",
		RecordedAt: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("HandleAuditMessage: %v", err)
	}

	entries, err := repo.AuditEntriesForEntity(ctx, "contribution", "c1")
	if err != nil {
		t.Fatalf("AuditEntriesForEntity: %v", err)
	}
	if len(entries) != 1 || entries[0].Action != "create" || entries[0].Source != "api" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestHandleAuditMessageDefaultsRecordedAt(t *testing.T) {
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "mce.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	w := NewAuditWorker(repo)
	if err := w.HandleAuditMessage(context.Background(), &amqp.AuditMessage{
		EntityType: "disbursement",
		EntityID:   "d1",
		Action:     "create",
	}); err != nil {
		t.Fatalf("HandleAuditMessage: %v", err)
	}

	entries, err := repo.AuditEntriesForEntity(context.Background(), "disbursement", "d1")
	if err != nil {
		t.Fatalf("AuditEntriesForEntity: %v", err)
	}
	if len(entries) != 1 || entries[0].RecordedAt.IsZero() {
		t.Errorf("expected a recorded timestamp: %+v", entries)
	}
}
