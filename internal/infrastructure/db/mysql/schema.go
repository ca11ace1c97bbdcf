package mysql

import (
	"context"
	"database/sql"
	"fmt"
)

// No unique index on posts.title or posts.content: uniqueness is checked by
// lookup before insert, and a race window between check and insert exists
// under concurrent creates.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT       NOT NULL AUTO_INCREMENT,
		email         VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role          VARCHAR(16)  NOT NULL,
		created_at    DATETIME     NOT NULL,
		updated_at    DATETIME     NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS posts (
		id         BIGINT   NOT NULL AUTO_INCREMENT,
		title      TEXT     NOT NULL,
		content    TEXT     NOT NULL,
		author_id  BIGINT   NOT NULL,
		is_hidden  BOOLEAN  NOT NULL DEFAULT FALSE,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		PRIMARY KEY (id),
		KEY ix_posts_author (author_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS audit_events (
		id          BIGINT      NOT NULL AUTO_INCREMENT,
		action      VARCHAR(32) NOT NULL,
		post_id     BIGINT      NOT NULL,
		actor_id    BIGINT      NOT NULL,
		occurred_at DATETIME    NOT NULL,
		PRIMARY KEY (id),
		KEY ix_audit_post (post_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
