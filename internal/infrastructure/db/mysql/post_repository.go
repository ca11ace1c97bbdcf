package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bloghub/blog-platform/internal/core/domain"
	"github.com/bloghub/blog-platform/internal/core/ports"
)

// MySQLPostRepository persists posts in the posts table.
type MySQLPostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *MySQLPostRepository {
	return &MySQLPostRepository{db: db}
}

const postColumns = "id, title, content, author_id, is_hidden, created_at, updated_at"

func (r *MySQLPostRepository) Create(ctx context.Context, p *domain.Post) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO posts (title, content, author_id, is_hidden, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		p.Title, p.Content, p.AuthorID, p.IsHidden, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	p.ID = id
	return nil
}

func (r *MySQLPostRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	var p domain.Post
	err := r.db.QueryRowContext(ctx,
		"SELECT "+postColumns+" FROM posts WHERE id = ? LIMIT 1", id).
		Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.IsHidden, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return &p, nil
}

func (r *MySQLPostRepository) FindAll(ctx context.Context) ([]*domain.Post, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+postColumns+" FROM posts ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.IsHidden, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}

// ExistsSimilar reports whether any post already uses title OR content.
func (r *MySQLPostRepository) ExistsSimilar(ctx context.Context, title, content string) (bool, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM posts WHERE title = ? OR content = ?", title, content).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("similar post check: %w", err)
	}
	return n > 0, nil
}

func (r *MySQLPostRepository) Update(ctx context.Context, id int64, fields ports.PostUpdate) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE posts SET title = ?, content = ?, author_id = ?, is_hidden = ?, updated_at = UTC_TIMESTAMP() WHERE id = ?",
		fields.Title, fields.Content, fields.AuthorID, fields.IsHidden, id)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	return nil
}

func (r *MySQLPostRepository) DeleteOwned(ctx context.Context, id, authorID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM posts WHERE id = ? AND author_id = ?", id, authorID)
	if err != nil {
		return 0, fmt.Errorf("delete post: %w", err)
	}
	return res.RowsAffected()
}

func (r *MySQLPostRepository) DeleteVisible(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM posts WHERE id = ? AND is_hidden = FALSE", id)
	if err != nil {
		return 0, fmt.Errorf("delete post: %w", err)
	}
	return res.RowsAffected()
}
