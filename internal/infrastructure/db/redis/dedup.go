package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker provides audit-event idempotency checks backed by Redis.
// Key format: audit:<action>:<post_id>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact audit event has already been recorded.
func (d *DedupChecker) IsDuplicate(ctx context.Context, action string, postID int64, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(action, postID, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this audit event has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, action string, postID int64, ts time.Time) error {
	return d.client.Set(ctx, d.key(action, postID, ts), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(action string, postID int64, ts time.Time) string {
	return fmt.Sprintf("audit:%s:%d:%d", action, postID, ts.Unix())
}
