package ports

import (
	"context"

	"github.com/bloghub/blog-platform/internal/core/domain"
)

type UserService interface {
	Register(ctx context.Context, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
