// Package worker consumes audit events from the broker and persists
// them as the durable audit trail.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mce/internal/amqp"
	"mce/internal/storage"
)

// AuditWorker turns broker audit messages into stored audit entries.
type AuditWorker struct {
	storage *storage.SQLiteRepository
}

func NewAuditWorker(storage *storage.SQLiteRepository) *AuditWorker {
	return &AuditWorker{storage: storage}
}

// HandleAuditMessage processes a single audit event from AMQP. Returning
// an error requeues the delivery.
func (w *AuditWorker) HandleAuditMessage(ctx context.Context, msg *amqp.AuditMessage) error {
	recordedAt := msg.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}

	entry := storage.AuditEntry{
		ID:            msg.ID,
		EntityType:    msg.EntityType,
		EntityID:      msg.EntityID,
		Action:        msg.Action,
		PreviousValue: msg.PreviousValue,
		NewValue:      msg.NewValue,
		Source:        msg.Source,
		RecordedAt:    recordedAt,
	}

	if err := w.storage.InsertAuditEntry(ctx, entry); err != nil {
		return fmt.Errorf("persist audit entry: %w", err)
	}

	slog.InfoContext(ctx, "Audit entry persisted",
		"entity_type", msg.EntityType,
		"entity_id", msg.EntityID,
		"action", msg.Action)

	return nil
}
