package ports

import (
	"context"

	"github.com/bloghub/blog-platform/internal/core/domain"
)

// CreatePostInput carries all data needed to create a post. AuthorID is taken
// verbatim from the request body; no ownership check is applied to it.
type CreatePostInput struct {
	Title    string
	Content  string
	AuthorID int64
	IsHidden bool
}

// PostService defines the use-case operations for posts. The caller argument
// is the authenticated identity; List additionally accepts nil for anonymous
// callers, which are treated as restricted.
type PostService interface {
	List(ctx context.Context, caller *domain.User) ([]*domain.Post, error)
	Get(ctx context.Context, caller *domain.User, id int64) (*domain.Post, error)
	Create(ctx context.Context, caller *domain.User, input CreatePostInput) error
	Update(ctx context.Context, caller *domain.User, id int64, fields PostUpdate) error
	Delete(ctx context.Context, caller *domain.User, id int64) error
}
