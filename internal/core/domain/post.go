package domain

import (
	"errors"
	"time"
)

// Sentinel errors carry the stable machine-readable codes returned to clients.
// The HTTP status each one maps to lives in the API error handler.
var ErrPostNotFound = errors.New("POST_NOT_FOUND")

// ErrPostHidden deliberately shares its code with ErrPostNotFound: the
// existence of a hidden post is denied to restricted callers, not merely
// access to it. Only the HTTP status differs (401 vs 400).
var ErrPostHidden = errors.New("POST_NOT_FOUND")
var ErrPostExists = errors.New("POST_ALREADY_EXISTS")
var ErrPostNotEditable = errors.New("YOU_CANT_UPDATE_THIS_POST")
var ErrUpdateTargetMissing = errors.New("YOUR_POST_NOT_FOUND")

// Post is the core aggregate root. Title and content are globally unique at
// creation time (checked by lookup before insert, not by a store constraint).
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"authorId"`
	IsHidden  bool      `json:"isHidden"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EditableBy reports whether caller may update the post. Admins edit anything;
// bloggers edit only their own posts.
func (p *Post) EditableBy(caller *User) bool {
	if caller == nil {
		return false
	}
	return !caller.Restricted() || p.AuthorID == caller.ID
}

// VisiblePosts filters posts down to what caller may see. Admin callers see
// everything; restricted callers (bloggers and anonymous) never see hidden
// posts. Pure in-memory filter, order preserved.
func VisiblePosts(caller *User, posts []*Post) []*Post {
	if !caller.Restricted() {
		return posts
	}
	visible := make([]*Post, 0, len(posts))
	for _, p := range posts {
		if !p.IsHidden {
			visible = append(visible, p)
		}
	}
	return visible
}
