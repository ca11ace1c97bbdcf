package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-platform/internal/core/domain"
	"github.com/bloghub/blog-platform/internal/core/ports"
)

// PostService implements the per-role visibility and ownership rules for
// posts. Admins are unrestricted; bloggers are scoped to their own posts and
// never see hidden ones.
type PostService struct {
	repo   ports.PostRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, audit ports.AuditRecorder, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, audit: audit, logger: logger}
}

// List returns every post the caller may see. The full set is fetched and
// filtered in memory; a nil caller (anonymous) gets the restricted view.
func (s *PostService) List(ctx context.Context, caller *domain.User) ([]*domain.Post, error) {
	posts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.VisiblePosts(caller, posts), nil
}

// Get returns a single post by id. For restricted callers a hidden post is
// indistinguishable from a missing one: both fail with POST_NOT_FOUND, hidden
// via 401 and missing via 400.
func (s *PostService) Get(ctx context.Context, caller *domain.User, id int64) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if caller.Restricted() && post.IsHidden {
		return nil, domain.ErrPostHidden
	}
	return post, nil
}

// Create inserts a new post after a global uniqueness check on title OR
// content. The check and the insert are two store calls; concurrent creates
// with identical fields can both pass the check. AuthorID is taken from the
// input as-is: any authenticated caller may name any author.
func (s *PostService) Create(ctx context.Context, caller *domain.User, input ports.CreatePostInput) error {
	exists, err := s.repo.ExistsSimilar(ctx, input.Title, input.Content)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrPostExists
	}

	now := time.Now().UTC()
	post := &domain.Post{
		Title:     input.Title,
		Content:   input.Content,
		AuthorID:  input.AuthorID,
		IsHidden:  input.IsHidden,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return err
	}

	s.logger.Info().Int64("post_id", post.ID).Int64("author_id", post.AuthorID).Bool("hidden", post.IsHidden).Msg("post created")
	s.record(domain.AuditPostCreated, post.ID, caller)
	return nil
}

// Update overwrites all mutable fields of a post. Bloggers may only update
// their own posts; admins may update anything, including authorId and
// isHidden.
func (s *PostService) Update(ctx context.Context, caller *domain.User, id int64, fields ports.PostUpdate) error {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return domain.ErrUpdateTargetMissing
		}
		return err
	}
	if !post.EditableBy(caller) {
		return domain.ErrPostNotEditable
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return err
	}

	s.record(domain.AuditPostUpdated, id, caller)
	return nil
}

// Delete removes a post and always succeeds from the caller's point of view.
// Bloggers delete only rows they own; admins delete by id but only when the
// post is not hidden. Zero matched rows is a silent no-op.
func (s *PostService) Delete(ctx context.Context, caller *domain.User, id int64) error {
	var (
		deleted int64
		err     error
	)
	if caller.Restricted() {
		deleted, err = s.repo.DeleteOwned(ctx, id, caller.ID)
	} else {
		deleted, err = s.repo.DeleteVisible(ctx, id)
	}
	if err != nil {
		return err
	}

	if deleted > 0 {
		s.record(domain.AuditPostDeleted, id, caller)
	}
	return nil
}

func (s *PostService) record(action domain.AuditAction, postID int64, caller *domain.User) {
	if s.audit == nil {
		return
	}
	var actorID int64
	if caller != nil {
		actorID = caller.ID
	}
	s.audit.Record(domain.AuditEvent{
		Action:     action,
		PostID:     postID,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	})
}
