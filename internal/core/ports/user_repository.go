package ports

import (
	"context"

	"github.com/fumer/blog-platform-api/internal/core/domain"
)

// UserUpdate carries the mutable profile fields. Nil means "leave unchanged".
type UserUpdate struct {
	Name         *string
	PasswordHash *string
}

// UserRepository defines persistence operations for user accounts.
// Uniqueness on id and email is enforced by the underlying store.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update applies the given fields and restamps updated_at.
	Update(ctx context.Context, id string, upd UserUpdate) (*domain.User, error)
}
