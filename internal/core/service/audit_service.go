package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-platform/internal/api/metrics"
	"github.com/bloghub/blog-platform/internal/core/domain"
	"github.com/bloghub/blog-platform/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, action string, postID int64, ts time.Time) (bool, error)
	Mark(ctx context.Context, action string, postID int64, ts time.Time) error
}

type auditService struct {
	repo  ports.AuditRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewAuditService returns an AuditService implementation.
func NewAuditService(repo ports.AuditRepository, dedup DedupChecker, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single audit event. Failures are
// surfaced to the dispatcher for logging only; the originating request has
// long since been answered.
func (s *auditService) Process(ctx context.Context, event domain.AuditEvent) error {
	action := string(event.Action)

	isDup, err := s.dedup.IsDuplicate(ctx, action, event.PostID, event.OccurredAt)
	if err != nil {
		s.log.Warn().Err(err).Str("action", action).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.AuditDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("action", action).Int64("post_id", event.PostID).Msg("duplicate audit event skipped")
		return nil
	}
	metrics.AuditDedupTotal.WithLabelValues("miss").Inc()

	if markErr := s.dedup.Mark(ctx, action, event.PostID, event.OccurredAt); markErr != nil {
		s.log.Warn().Err(markErr).Str("action", action).Msg("failed to set dedup key")
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		metrics.AuditEventsTotal.WithLabelValues(action, "error").Inc()
		return fmt.Errorf("process audit event: %w", err)
	}

	metrics.AuditEventsTotal.WithLabelValues(action, "ok").Inc()
	s.log.Info().
		Str("action", action).
		Int64("post_id", event.PostID).
		Int64("actor_id", event.ActorID).
		Msg("audit event recorded")

	return nil
}
