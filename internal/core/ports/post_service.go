package ports

import (
	"context"

	"github.com/fumer/blog-platform-api/internal/core/domain"
)

// CreatePostInput carries all data needed to create a post. Author is the
// denormalized email of the creating admin.
type CreatePostInput struct {
	Title      string
	Content    string
	Author     string
	Tags       []string
	Categories []string
	Status     domain.PostStatus
	ImageURL   *string
	IsPremium  bool
}

// UpdatePostInput carries a partial replacement for an existing post.
// Nil fields keep the stored value, which is also how the lenient fallback
// for malformed multipart array fields is expressed.
type UpdatePostInput struct {
	Title      *string
	Content    *string
	Tags       *[]string
	Categories *[]string
	Status     *domain.PostStatus
	ImageURL   *string
	IsPremium  *bool
}

// PostService defines the blog post use cases. Requester identity is the
// sanitized user resolved by the authentication gate; nil means anonymous.
type PostService interface {
	CreatePost(ctx context.Context, in CreatePostInput) (*domain.BlogPost, error)
	// GetPost serves the admin surface: admins see any post, everyone else
	// only published ones (in full, no premium truncation on this route).
	GetPost(ctx context.Context, id string, requester *domain.User) (*domain.BlogPost, error)
	ListPosts(ctx context.Context) ([]*domain.BlogPost, error)
	ListPostsByStatus(ctx context.Context, status domain.PostStatus) ([]*domain.BlogPost, error)
	UpdatePost(ctx context.Context, id string, in UpdatePostInput) (*domain.BlogPost, error)
	DeletePost(ctx context.Context, id string) error

	// GetPublicPost applies the full visibility policy (draft hiding, premium
	// preview truncation) and returns the post's view tally.
	GetPublicPost(ctx context.Context, id string, requester *domain.User) (*domain.BlogPost, int64, error)
	// ListPublicPosts returns published posts with the visibility policy
	// applied per item.
	ListPublicPosts(ctx context.Context, requester *domain.User) ([]*domain.BlogPost, error)

	AddComment(ctx context.Context, id, userID, text string) (*domain.BlogPost, error)
	ToggleLike(ctx context.Context, id, userID string) (*domain.BlogPost, error)
	ToggleBookmark(ctx context.Context, id, userID string) (*domain.BlogPost, error)
	ListBookmarked(ctx context.Context, userID string) ([]*domain.BlogPost, error)
	ListLiked(ctx context.Context, userID string) ([]*domain.BlogPost, error)
}
