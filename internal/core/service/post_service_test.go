package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-platform/internal/core/domain"
	"github.com/bloghub/blog-platform/internal/core/ports"
)

// stubPostRepo is an in-memory PostRepository preserving insertion order.
type stubPostRepo struct {
	posts   []*domain.Post
	nextID  int64
	updates int
}

func newStubPostRepo(seed ...*domain.Post) *stubPostRepo {
	r := &stubPostRepo{nextID: 1}
	for _, p := range seed {
		copy := *p
		if copy.ID == 0 {
			copy.ID = r.nextID
		}
		if copy.ID >= r.nextID {
			r.nextID = copy.ID + 1
		}
		r.posts = append(r.posts, &copy)
	}
	return r
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.Post) error {
	p.ID = r.nextID
	r.nextID++
	copy := *p
	r.posts = append(r.posts, &copy)
	return nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id int64) (*domain.Post, error) {
	for _, p := range r.posts {
		if p.ID == id {
			copy := *p
			return &copy, nil
		}
	}
	return nil, domain.ErrPostNotFound
}

func (r *stubPostRepo) FindAll(_ context.Context) ([]*domain.Post, error) {
	out := make([]*domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		copy := *p
		out = append(out, &copy)
	}
	return out, nil
}

func (r *stubPostRepo) ExistsSimilar(_ context.Context, title, content string) (bool, error) {
	for _, p := range r.posts {
		if p.Title == title || p.Content == content {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubPostRepo) Update(_ context.Context, id int64, fields ports.PostUpdate) error {
	for _, p := range r.posts {
		if p.ID == id {
			p.Title = fields.Title
			p.Content = fields.Content
			p.AuthorID = fields.AuthorID
			p.IsHidden = fields.IsHidden
			r.updates++
			return nil
		}
	}
	return nil
}

func (r *stubPostRepo) DeleteOwned(_ context.Context, id, authorID int64) (int64, error) {
	return r.deleteWhere(func(p *domain.Post) bool { return p.ID == id && p.AuthorID == authorID })
}

func (r *stubPostRepo) DeleteVisible(_ context.Context, id int64) (int64, error) {
	return r.deleteWhere(func(p *domain.Post) bool { return p.ID == id && !p.IsHidden })
}

func (r *stubPostRepo) deleteWhere(match func(*domain.Post) bool) (int64, error) {
	var kept []*domain.Post
	var deleted int64
	for _, p := range r.posts {
		if match(p) {
			deleted++
			continue
		}
		kept = append(kept, p)
	}
	r.posts = kept
	return deleted, nil
}

// stubRecorder captures enqueued audit events.
type stubRecorder struct {
	events []domain.AuditEvent
}

func (s *stubRecorder) Record(event domain.AuditEvent) {
	s.events = append(s.events, event)
}

var (
	admin   = &domain.User{ID: 1, Role: domain.RoleAdmin}
	blogger = &domain.User{ID: 3, Role: domain.RoleBlogger}
)

func newPostService(repo *stubPostRepo) (*PostService, *stubRecorder) {
	rec := &stubRecorder{}
	return NewPostService(repo, rec, zerolog.Nop()), rec
}

func TestPostService_List_BloggerNeverSeesHidden(t *testing.T) {
	repo := newStubPostRepo(
		&domain.Post{ID: 1, Title: "a", IsHidden: false},
		&domain.Post{ID: 2, Title: "b", IsHidden: true},
		&domain.Post{ID: 3, Title: "c", IsHidden: false},
	)
	svc, _ := newPostService(repo)

	posts, err := svc.List(context.Background(), blogger)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	for _, p := range posts {
		if p.IsHidden {
			t.Fatalf("hidden post %d leaked to blogger", p.ID)
		}
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
}

func TestPostService_List_AdminSeesFullStoreInOrder(t *testing.T) {
	repo := newStubPostRepo(
		&domain.Post{ID: 1, IsHidden: true},
		&domain.Post{ID: 2, IsHidden: false},
		&domain.Post{ID: 3, IsHidden: true},
	)
	svc, _ := newPostService(repo)

	posts, err := svc.List(context.Background(), admin)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	for i, want := range []int64{1, 2, 3} {
		if posts[i].ID != want {
			t.Fatalf("position %d: expected id %d, got %d", i, want, posts[i].ID)
		}
	}
}

func TestPostService_List_AnonymousGetsRestrictedView(t *testing.T) {
	repo := newStubPostRepo(
		&domain.Post{ID: 1, IsHidden: true},
		&domain.Post{ID: 2, IsHidden: false},
	)
	svc, _ := newPostService(repo)

	posts, err := svc.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != 2 {
		t.Fatalf("unexpected anonymous view: %+v", posts)
	}
}

func TestPostService_Get_HiddenIndistinguishableFromMissing(t *testing.T) {
	repo := newStubPostRepo(&domain.Post{ID: 5, IsHidden: true})
	svc, _ := newPostService(repo)

	_, hiddenErr := svc.Get(context.Background(), blogger, 5)
	if !errors.Is(hiddenErr, domain.ErrPostHidden) {
		t.Fatalf("expected ErrPostHidden, got %v", hiddenErr)
	}

	_, missingErr := svc.Get(context.Background(), blogger, 99)
	if !errors.Is(missingErr, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", missingErr)
	}

	// Same client-facing code for both outcomes.
	if hiddenErr.Error() != missingErr.Error() {
		t.Fatalf("codes differ: %q vs %q", hiddenErr.Error(), missingErr.Error())
	}
}

func TestPostService_Get_AdminReadsHidden(t *testing.T) {
	repo := newStubPostRepo(&domain.Post{ID: 5, Title: "secret", IsHidden: true})
	svc, _ := newPostService(repo)

	post, err := svc.Get(context.Background(), admin, 5)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if post.Title != "secret" {
		t.Fatalf("unexpected post: %+v", post)
	}
}

func TestPostService_Create_RejectsDuplicateTitle(t *testing.T) {
	repo := newStubPostRepo()
	svc, _ := newPostService(repo)
	ctx := context.Background()

	first := ports.CreatePostInput{Title: "Hello", Content: "one", AuthorID: 3}
	if err := svc.Create(ctx, blogger, first); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	dup := ports.CreatePostInput{Title: "Hello", Content: "two", AuthorID: 3}
	if err := svc.Create(ctx, blogger, dup); !errors.Is(err, domain.ErrPostExists) {
		t.Fatalf("expected ErrPostExists, got %v", err)
	}
	if len(repo.posts) != 1 {
		t.Fatalf("duplicate create mutated store: %d posts", len(repo.posts))
	}
}

func TestPostService_Create_RejectsDuplicateContent(t *testing.T) {
	repo := newStubPostRepo(&domain.Post{ID: 1, Title: "x", Content: "same body"})
	svc, _ := newPostService(repo)

	in := ports.CreatePostInput{Title: "y", Content: "same body", AuthorID: 3}
	if err := svc.Create(context.Background(), blogger, in); !errors.Is(err, domain.ErrPostExists) {
		t.Fatalf("expected ErrPostExists, got %v", err)
	}
}

func TestPostService_Create_DistinctPostsBothSucceed(t *testing.T) {
	repo := newStubPostRepo()
	svc, rec := newPostService(repo)
	ctx := context.Background()

	if err := svc.Create(ctx, blogger, ports.CreatePostInput{Title: "a", Content: "A", AuthorID: 3}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if err := svc.Create(ctx, blogger, ports.CreatePostInput{Title: "b", Content: "B", AuthorID: 3}); err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if len(repo.posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(repo.posts))
	}
	if len(rec.events) != 2 || rec.events[0].Action != domain.AuditPostCreated {
		t.Fatalf("expected 2 create audit events, got %+v", rec.events)
	}
}

func TestPostService_Create_NoOwnershipCheckOnAuthorID(t *testing.T) {
	repo := newStubPostRepo()
	svc, _ := newPostService(repo)

	// A blogger may author a post "as" any authorId; the gap is contract.
	in := ports.CreatePostInput{Title: "t", Content: "c", AuthorID: 42}
	if err := svc.Create(context.Background(), blogger, in); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if repo.posts[0].AuthorID != 42 {
		t.Fatalf("authorId rewritten to %d", repo.posts[0].AuthorID)
	}
}

func TestPostService_Update_OwnerBloggerSucceeds(t *testing.T) {
	repo := newStubPostRepo(&domain.Post{ID: 5, Title: "old", Content: "old", AuthorID: 3})
	svc, _ := newPostService(repo)

	fields := ports.PostUpdate{Title: "A", Content: "B", AuthorID: 3, IsHidden: false}
	if err := svc.Update(context.Background(), blogger, 5, fields); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	got, _ := repo.FindByID(context.Background(), 5)
	if got.Title != "A" || got.Content != "B" || got.AuthorID != 3 || got.IsHidden {
		t.Fatalf("store does not reflect update: %+v", got)
	}
}

func TestPostService_Update_ForeignBloggerRejectedWithoutMutation(t *testing.T) {
	repo := newStubPostRepo(&domain.Post{ID: 5, Title: "old", AuthorID: 7})
	svc, _ := newPostService(repo)

	fields := ports.PostUpdate{Title: "hacked", AuthorID: 3}
	if err := svc.Update(context.Background(), blogger, 5, fields); !errors.Is(err, domain.ErrPostNotEditable) {
		t.Fatalf("expected ErrPostNotEditable, got %v", err)
	}
	if repo.updates != 0 {
		t.Fatalf("store mutated on rejected update")
	}
	got, _ := repo.FindByID(context.Background(), 5)
	if got.Title != "old" {
		t.Fatalf("post mutated: %+v", got)
	}
}

func TestPostService_Update_MissingPost(t *testing.T) {
	repo := newStubPostRepo()
	svc, _ := newPostService(repo)

	err := svc.Update(context.Background(), blogger, 99, ports.PostUpdate{Title: "x"})
	if !errors.Is(err, domain.ErrUpdateTargetMissing) {
		t.Fatalf("expected ErrUpdateTargetMissing, got %v", err)
	}

	// Same outcome for admins.
	err = svc.Update(context.Background(), admin, 99, ports.PostUpdate{Title: "x"})
	if !errors.Is(err, domain.ErrUpdateTargetMissing) {
		t.Fatalf("expected ErrUpdateTargetMissing for admin, got %v", err)
	}
}

func TestPostService_Update_AdminUpdatesAnyField(t *testing.T) {
	repo := newStubPostRepo(&domain.Post{ID: 5, AuthorID: 7, IsHidden: false})
	svc, _ := newPostService(repo)

	fields := ports.PostUpdate{Title: "t", Content: "c", AuthorID: 8, IsHidden: true}
	if err := svc.Update(context.Background(), admin, 5, fields); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	got, _ := repo.FindByID(context.Background(), 5)
	if got.AuthorID != 8 || !got.IsHidden {
		t.Fatalf("admin update not applied: %+v", got)
	}
}

func TestPostService_Delete_BloggerForeignPostIsNoOp(t *testing.T) {
	repo := newStubPostRepo(&domain.Post{ID: 5, AuthorID: 7})
	svc, rec := newPostService(repo)

	if err := svc.Delete(context.Background(), blogger, 5); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(repo.posts) != 1 {
		t.Fatalf("foreign post deleted")
	}
	if len(rec.events) != 0 {
		t.Fatalf("no-op delete produced audit events: %+v", rec.events)
	}
}

func TestPostService_Delete_BloggerOwnPost(t *testing.T) {
	repo := newStubPostRepo(&domain.Post{ID: 5, AuthorID: 3})
	svc, rec := newPostService(repo)

	if err := svc.Delete(context.Background(), blogger, 5); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(repo.posts) != 0 {
		t.Fatalf("own post not deleted")
	}
	if len(rec.events) != 1 || rec.events[0].Action != domain.AuditPostDeleted {
		t.Fatalf("expected delete audit event, got %+v", rec.events)
	}
}

func TestPostService_Delete_AdminCannotDeleteHiddenPost(t *testing.T) {
	repo := newStubPostRepo(&domain.Post{ID: 5, AuthorID: 7, IsHidden: true})
	svc, _ := newPostService(repo)

	// The admin delete predicate requires is_hidden = false; the hidden row
	// survives and the call still succeeds.
	if err := svc.Delete(context.Background(), admin, 5); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(repo.posts) != 1 {
		t.Fatalf("hidden post deleted through admin path")
	}
}

func TestPostService_Delete_AdminDeletesAnyVisiblePost(t *testing.T) {
	repo := newStubPostRepo(&domain.Post{ID: 5, AuthorID: 7, IsHidden: false})
	svc, _ := newPostService(repo)

	if err := svc.Delete(context.Background(), admin, 5); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(repo.posts) != 0 {
		t.Fatalf("visible post not deleted by admin")
	}
}
