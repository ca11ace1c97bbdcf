package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bloghub/blog-platform/internal/core/domain"
)

// MySQLAuditRepository appends audit events to the audit_events table.
type MySQLAuditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) *MySQLAuditRepository {
	return &MySQLAuditRepository{db: db}
}

func (r *MySQLAuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO audit_events (action, post_id, actor_id, occurred_at) VALUES (?, ?, ?, ?)",
		string(event.Action), event.PostID, event.ActorID, event.OccurredAt)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	event.ID = id
	return nil
}
