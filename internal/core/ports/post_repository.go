package ports

import (
	"context"

	"github.com/bloghub/blog-platform/internal/core/domain"
)

// PostUpdate carries the full set of mutable post fields. Every update
// rewrites all of them, mirroring the PUT semantics of the API.
type PostUpdate struct {
	Title    string
	Content  string
	AuthorID int64
	IsHidden bool
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) error
	// FindByID fails with domain.ErrPostNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	// FindAll returns every post in stored order.
	FindAll(ctx context.Context) ([]*domain.Post, error)
	// ExistsSimilar reports whether any post already uses title OR content.
	ExistsSimilar(ctx context.Context, title, content string) (bool, error)
	Update(ctx context.Context, id int64, fields PostUpdate) error
	// DeleteOwned removes the post only when authorID owns it; returns the
	// number of rows removed (0 is not an error).
	DeleteOwned(ctx context.Context, id, authorID int64) (int64, error)
	// DeleteVisible removes the post only when it is not hidden; returns the
	// number of rows removed (0 is not an error).
	DeleteVisible(ctx context.Context, id int64) (int64, error)
}
