// Package audit emits trail events for record mutations. Recording is
// fire-and-forget: a broker outage must never fail the request that
// triggered the event.
package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mce/internal/amqp"
)

// Entry is one audit trail event.
type Entry struct {
	EntityType    string
	EntityID      string
	Action        string
	PreviousValue string
	NewValue      string
	Source        string
}

// Recorder accepts audit entries. Implementations must not block the
// caller and must not surface delivery failures.
type Recorder interface {
	Record(ctx context.Context, e Entry)
}

// Publisher is the broker surface the AMQP recorder needs.
type Publisher interface {
	PublishAuditEvent(ctx context.Context, msg *amqp.AuditMessage) error
}

// AMQPRecorder hands entries to the message broker in a detached
// goroutine. Failures are logged and dropped.
type AMQPRecorder struct {
	publisher Publisher
}

func NewAMQPRecorder(publisher Publisher) *AMQPRecorder {
	return &AMQPRecorder{publisher: publisher}
}

func (r *AMQPRecorder) Record(ctx context.Context, e Entry) {
	msg := &amqp.AuditMessage{
		EntityType:    e.EntityType,
		EntityID:      e.EntityID,
		Action:        e.Action,
		PreviousValue: e.PreviousValue,
		NewValue:      e.NewValue,
		Source:        e.Source,
		RecordedAt:    time.Now().UTC(),
	}

	// Detach from the request context so an in-flight response does not
	// cancel the publish.
	go func() {
		publishCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := r.publisher.PublishAuditEvent(publishCtx, msg); err != nil {
			slog.Error("Failed to publish audit event",
				"error", err,
				"entity_type", e.EntityType,
				"entity_id", e.EntityID,
				"action", e.Action)
		}
	}()
}

// NopRecorder discards every entry. Used when no broker is configured.
type NopRecorder struct{}

func (NopRecorder) Record(ctx context.Context, e Entry) {}

// MemoryRecorder collects entries in memory for tests.
type MemoryRecorder struct {
	mu      sync.Mutex
	entries []Entry
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

func (r *MemoryRecorder) Record(ctx context.Context, e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

func (r *MemoryRecorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}
