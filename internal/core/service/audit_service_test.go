package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-platform/internal/core/domain"
)

type stubAuditRepo struct {
	events    []*domain.AuditEvent
	insertErr error
}

func (r *stubAuditRepo) Insert(_ context.Context, event *domain.AuditEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.events = append(r.events, event)
	return nil
}

type stubDedup struct {
	seen    map[string]bool
	markErr error
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) key(action string, postID int64, ts time.Time) string {
	return fmt.Sprintf("%s:%d:%d", action, postID, ts.Unix())
}

func (d *stubDedup) IsDuplicate(_ context.Context, action string, postID int64, ts time.Time) (bool, error) {
	return d.seen[d.key(action, postID, ts)], nil
}

func (d *stubDedup) Mark(_ context.Context, action string, postID int64, ts time.Time) error {
	if d.markErr != nil {
		return d.markErr
	}
	d.seen[d.key(action, postID, ts)] = true
	return nil
}

func TestAuditService_PersistsEvent(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, newStubDedup(), zerolog.Nop())

	event := domain.AuditEvent{
		Action:     domain.AuditPostCreated,
		PostID:     5,
		ActorID:    3,
		OccurredAt: time.Now().UTC(),
	}
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected 1 persisted event, got %d", len(repo.events))
	}
	if repo.events[0].Action != domain.AuditPostCreated || repo.events[0].PostID != 5 {
		t.Fatalf("unexpected event: %+v", repo.events[0])
	}
}

func TestAuditService_SkipsDuplicates(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, newStubDedup(), zerolog.Nop())

	event := domain.AuditEvent{
		Action:     domain.AuditPostUpdated,
		PostID:     5,
		ActorID:    3,
		OccurredAt: time.Unix(1700000000, 0).UTC(),
	}
	ctx := context.Background()
	if err := svc.Process(ctx, event); err != nil {
		t.Fatalf("first Process returned error: %v", err)
	}
	if err := svc.Process(ctx, event); err != nil {
		t.Fatalf("duplicate Process returned error: %v", err)
	}
	if len(repo.events) != 1 {
		t.Fatalf("duplicate was persisted: %d events", len(repo.events))
	}
}

func TestAuditService_SurfacesInsertFailure(t *testing.T) {
	wantErr := errors.New("table is gone")
	repo := &stubAuditRepo{insertErr: wantErr}
	svc := NewAuditService(repo, newStubDedup(), zerolog.Nop())

	event := domain.AuditEvent{Action: domain.AuditPostDeleted, PostID: 1, OccurredAt: time.Now().UTC()}
	if err := svc.Process(context.Background(), event); !errors.Is(err, wantErr) {
		t.Fatalf("expected insert error to surface, got %v", err)
	}
}

func TestAuditService_MarkFailureIsNonFatal(t *testing.T) {
	repo := &stubAuditRepo{}
	dedup := newStubDedup()
	dedup.markErr = errors.New("redis down")
	svc := NewAuditService(repo, dedup, zerolog.Nop())

	event := domain.AuditEvent{Action: domain.AuditPostCreated, PostID: 2, OccurredAt: time.Now().UTC()}
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if len(repo.events) != 1 {
		t.Fatalf("event not persisted despite mark failure")
	}
}
