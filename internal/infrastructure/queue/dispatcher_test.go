package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-platform/internal/core/domain"
)

type captureAuditService struct {
	mu     sync.Mutex
	events []domain.AuditEvent
	done   chan struct{}
	want   int
}

func (s *captureAuditService) Process(_ context.Context, event domain.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcher_ProcessesAllEvents(t *testing.T) {
	svc := &captureAuditService{done: make(chan struct{}), want: 3}
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := int64(1); i <= 3; i++ {
		d.Record(domain.AuditEvent{Action: domain.AuditPostCreated, PostID: i, OccurredAt: time.Now().UTC()})
	}

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("events not processed in time")
	}
}

func TestDispatcher_SamePostKeepsOrder(t *testing.T) {
	svc := &captureAuditService{done: make(chan struct{}), want: 3}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	actions := []domain.AuditAction{domain.AuditPostCreated, domain.AuditPostUpdated, domain.AuditPostDeleted}
	for _, a := range actions {
		d.Record(domain.AuditEvent{Action: a, PostID: 42, OccurredAt: time.Now().UTC()})
	}

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("events not processed in time")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for i, a := range actions {
		if svc.events[i].Action != a {
			t.Fatalf("position %d: expected %s, got %s", i, a, svc.events[i].Action)
		}
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(4, nil, zerolog.Nop())
	first := d.shardIndex(42)
	for i := 0; i < 10; i++ {
		if d.shardIndex(42) != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}
