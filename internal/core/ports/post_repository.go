package ports

import (
	"context"

	"github.com/fumer/blog-platform-api/internal/core/domain"
)

// ListPostsFilter narrows FindAll. Zero values mean "no filter".
type ListPostsFilter struct {
	Status domain.PostStatus // optional: filter by publication status
	Author string            // optional: filter by denormalized author email
}

// PostRepository defines persistence operations for blog posts. All finders
// return documents sorted by creation time descending. Implementations must
// treat bare and prefixed identifiers as the same key (domain.NormalizePostID).
type PostRepository interface {
	Create(ctx context.Context, post *domain.BlogPost) error
	FindByID(ctx context.Context, id string) (*domain.BlogPost, error)
	FindAll(ctx context.Context, filter ListPostsFilter) ([]*domain.BlogPost, error)
	// FindLikedBy returns posts whose liked_by set contains userID.
	FindLikedBy(ctx context.Context, userID string) ([]*domain.BlogPost, error)
	// FindBookmarkedBy returns posts whose bookmarks set contains userID.
	FindBookmarkedBy(ctx context.Context, userID string) ([]*domain.BlogPost, error)
	// Update replaces the stored document with post (same id), always
	// restamping updated_at, and returns the stored result.
	Update(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error)
	// Delete removes the post and reports whether a document was removed.
	Delete(ctx context.Context, id string) (bool, error)
}
