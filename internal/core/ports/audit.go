package ports

import (
	"context"

	"github.com/bloghub/blog-platform/internal/core/domain"
)

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditRecorder accepts audit events for asynchronous processing. Record must
// not block the request path beyond channel-buffer capacity.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditService processes a single audit event end to end.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}
