package audit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mce/internal/amqp"
)

type capturePublisher struct {
	mu   sync.Mutex
	msgs []*amqp.AuditMessage
	err  error
	done chan struct{}
}

func newCapturePublisher(err error) *capturePublisher {
	return &capturePublisher{err: err, done: make(chan struct{}, 8)}
}

func (p *capturePublisher) PublishAuditEvent(ctx context.Context, msg *amqp.AuditMessage) error {
	p.mu.Lock()
	p.msgs = append(p.msgs, msg)
	p.mu.Unlock()
	p.done <- struct{}{}
	return p.err
}

func (p *capturePublisher) wait(t *testing.T) {
	t.Helper()
	select {
	case <-p.done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish never happened")
	}
}

func TestAMQPRecorderPublishes(t *testing.T) {
	pub := newCapturePublisher(nil)
	rec := NewAMQPRecorder(pub)

	rec.Record(context.Background(), Entry{
		EntityType: "disbursement",
		EntityID:   "d1",
		Action:     "create",
		Source:     "api",
	})
	pub.wait(t)

	pub.mu.Lock()
	defer pub.mu.Unlock()
	if len(pub.msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(pub.msgs))
	}
	msg := pub.msgs[0]
	if msg.EntityType != "disbursement" || msg.EntityID != "d1" || msg.Action != "create" {
		t.Errorf("unexpected message: %+v", msg)
	}
	if msg.RecordedAt.IsZero() {
		t.Error("RecordedAt not set")
	}
}

func TestAMQPRecorderSwallowsPublishErrors(t *testing.T) {
	pub := newCapturePublisher(errors.New("broker down"))
	rec := NewAMQPRecorder(pub)

	// Must not panic or block the caller.
	rec.Record(context.Background(), Entry{EntityType: "contribution", EntityID: "c1", Action: "create"})
	pub.wait(t)
}

func TestAMQPRecorderSurvivesCancelledRequestContext(t *testing.T) {
	pub := newCapturePublisher(nil)
	rec := NewAMQPRecorder(pub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec.Record(ctx, Entry{EntityType: "disbursement", EntityID: "d2", Action: "create"})
	pub.wait(t)
}

func TestMemoryRecorder(t *testing.T) {
	rec := NewMemoryRecorder()
	rec.Record(context.Background(), Entry{EntityID: "a"})
	rec.Record(context.Background(), Entry{EntityID: "b"})

	got := rec.Entries()
	if len(got) != 2 || got[0].EntityID != "a" || got[1].EntityID != "b" {
		t.Errorf("unexpected entries: %+v", got)
	}
}
