package ports

import (
	"context"

	"github.com/fumer/blog-platform-api/internal/core/domain"
)

// AuthService covers account registration, credential exchange, and bearer
// token resolution.
type AuthService interface {
	// Register creates a user account with the non-privileged role.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies email+password and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Authenticate validates a bearer token, resolves its email claim against
	// the user store, and returns the sanitized user. It fails with
	// domain.ErrInvalidToken on a malformed, expired, or badly signed token
	// and with domain.ErrUserNotFound when the claim matches no account.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	// UpdateProfile changes the display name and/or password. Empty arguments
	// leave the corresponding field unchanged.
	UpdateProfile(ctx context.Context, userID, name, password string) (*domain.User, error)
}
