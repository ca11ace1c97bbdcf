package domain

import "time"

// AuditAction labels the post mutation an audit event records.
type AuditAction string

const (
	AuditPostCreated AuditAction = "post_created"
	AuditPostUpdated AuditAction = "post_updated"
	AuditPostDeleted AuditAction = "post_deleted"
)

// AuditEvent is an append-only activity record for a post mutation.
// Recording is best-effort: it never fails the originating request.
type AuditEvent struct {
	ID         int64       `json:"id"`
	Action     AuditAction `json:"action"`
	PostID     int64       `json:"post_id"`
	ActorID    int64       `json:"actor_id"`
	OccurredAt time.Time   `json:"occurred_at"`
}
