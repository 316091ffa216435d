package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fumer/blog-platform-api/internal/core/domain"
	"github.com/fumer/blog-platform-api/internal/core/ports"
	"github.com/fumer/blog-platform-api/internal/pkg/metrics"
)

const (
	previewLength        = 200
	premiumPreviewSuffix = "... (Login to read more)"
)

// ViewCounter abstracts the per-post view tally store (Redis).
type ViewCounter interface {
	Increment(ctx context.Context, postID string) (int64, error)
}

type PostService struct {
	repo   ports.PostRepository
	views  ViewCounter
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, views ViewCounter, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, views: views, logger: logger}
}

func (s *PostService) CreatePost(ctx context.Context, in ports.CreatePostInput) (*domain.BlogPost, error) {
	if in.Title == "" || in.Content == "" {
		return nil, domain.ErrInvalidInput
	}

	status := in.Status
	if status == "" {
		status = domain.StatusDraft
	}

	now := time.Now().UTC()
	post := &domain.BlogPost{
		ID:         domain.NewPostID(now),
		Title:      in.Title,
		Content:    in.Content,
		Author:     in.Author,
		Tags:       emptyIfNil(in.Tags),
		Categories: emptyIfNil(in.Categories),
		Status:     status,
		ImageURL:   in.ImageURL,
		IsPremium:  in.IsPremium,
		Likes:      0,
		LikedBy:    []string{},
		Comments:   []domain.Comment{},
		Bookmarks:  []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		s.logger.Error().Err(err).Str("title", in.Title).Msg("failed to create post")
		return nil, err
	}

	metrics.PostsCreatedTotal.WithLabelValues(string(status)).Inc()
	s.logger.Info().Str("post_id", post.ID).Str("author", post.Author).Str("status", string(status)).Msg("post created")

	return post, nil
}

// GetPost serves the admin surface: drafts are visible to admins only, and no
// premium truncation is applied here.
func (s *PostService) GetPost(ctx context.Context, id string, requester *domain.User) (*domain.BlogPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !requester.IsAdmin() && post.Status != domain.StatusPublished {
		// Indistinguishable from a genuinely absent post.
		return nil, domain.ErrPostNotFound
	}
	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context) ([]*domain.BlogPost, error) {
	return s.repo.FindAll(ctx, ports.ListPostsFilter{})
}

func (s *PostService) ListPostsByStatus(ctx context.Context, status domain.PostStatus) ([]*domain.BlogPost, error) {
	return s.repo.FindAll(ctx, ports.ListPostsFilter{Status: status})
}

func (s *PostService) UpdatePost(ctx context.Context, id string, in ports.UpdatePostInput) (*domain.BlogPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.Tags != nil {
		post.Tags = emptyIfNil(*in.Tags)
	}
	if in.Categories != nil {
		post.Categories = emptyIfNil(*in.Categories)
	}
	if in.Status != nil {
		post.Status = *in.Status
	}
	if in.ImageURL != nil {
		post.ImageURL = in.ImageURL
	}
	if in.IsPremium != nil {
		post.IsPremium = *in.IsPremium
	}

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("post_id", post.ID).Msg("failed to update post")
		return nil, err
	}

	s.logger.Info().Str("post_id", updated.ID).Msg("post updated")
	return updated, nil
}

func (s *PostService) DeletePost(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrPostNotFound
	}

	s.logger.Info().Str("post_id", domain.NormalizePostID(id)).Msg("post deleted")
	return nil
}

// GetPublicPost applies the visibility policy and increments the view tally.
// A view-counter failure is diagnostic only, never fatal to the read.
func (s *PostService) GetPublicPost(ctx context.Context, id string, requester *domain.User) (*domain.BlogPost, int64, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	visible := s.applyVisibility(post, requester)
	if visible == nil {
		return nil, 0, domain.ErrPostNotFound
	}

	var views int64
	if s.views != nil {
		views, err = s.views.Increment(ctx, post.ID)
		if err != nil {
			s.logger.Warn().Err(err).Str("post_id", post.ID).Msg("view counter unavailable")
			views = 0
		}
	}

	return visible, views, nil
}

func (s *PostService) ListPublicPosts(ctx context.Context, requester *domain.User) ([]*domain.BlogPost, error) {
	posts, err := s.repo.FindAll(ctx, ports.ListPostsFilter{Status: domain.StatusPublished})
	if err != nil {
		return nil, err
	}

	out := make([]*domain.BlogPost, 0, len(posts))
	for _, p := range posts {
		if visible := s.applyVisibility(p, requester); visible != nil {
			out = append(out, visible)
		}
	}
	return out, nil
}

// applyVisibility decides what shape of the post the requester may see.
// It returns nil when the post must be hidden:
//
//	admin                → full record, drafts included
//	authenticated user   → published only, full content
//	anonymous            → published only; premium content truncated to the
//	                       first 200 characters plus a login prompt
func (s *PostService) applyVisibility(post *domain.BlogPost, requester *domain.User) *domain.BlogPost {
	if requester.IsAdmin() {
		return post
	}
	if post.Status != domain.StatusPublished {
		return nil
	}
	if requester != nil || !post.IsPremium {
		return post
	}

	preview := *post
	preview.Content = truncateContent(post.Content) + premiumPreviewSuffix
	preview.IsPremium = true
	metrics.PremiumPreviewsTotal.Inc()
	return &preview
}

// truncateContent cuts at a raw character count, not word boundaries.
func truncateContent(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength])
}

func (s *PostService) AddComment(ctx context.Context, id, userID, text string) (*domain.BlogPost, error) {
	if text == "" {
		return nil, domain.ErrInvalidInput
	}

	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post.Comments = append(post.Comments, domain.Comment{
		ID:        domain.NewCommentID(now),
		UserID:    userID,
		Content:   text,
		CreatedAt: now,
	})

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	metrics.CommentsAddedTotal.Inc()
	return updated, nil
}

// ToggleLike flips the requester's membership in the liked-by set, keeping
// the likes counter equal to the set size. This is a read-modify-write with
// last-write-wins semantics under concurrent toggles.
func (s *PostService) ToggleLike(ctx context.Context, id, userID string) (*domain.BlogPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	action := "like"
	if post.HasLiked(userID) {
		post.LikedBy = removeMember(post.LikedBy, userID)
		if post.Likes > 0 {
			post.Likes--
		}
		action = "unlike"
	} else {
		post.LikedBy = append(post.LikedBy, userID)
		post.Likes++
	}

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	metrics.LikeTogglesTotal.WithLabelValues(action).Inc()
	return updated, nil
}

// ToggleBookmark flips the requester's membership in the bookmark set.
func (s *PostService) ToggleBookmark(ctx context.Context, id, userID string) (*domain.BlogPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	action := "bookmark"
	if post.HasBookmarked(userID) {
		post.Bookmarks = removeMember(post.Bookmarks, userID)
		action = "unbookmark"
	} else {
		post.Bookmarks = append(post.Bookmarks, userID)
	}

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	metrics.BookmarkTogglesTotal.WithLabelValues(action).Inc()
	return updated, nil
}

func (s *PostService) ListBookmarked(ctx context.Context, userID string) ([]*domain.BlogPost, error) {
	return s.repo.FindBookmarkedBy(ctx, userID)
}

func (s *PostService) ListLiked(ctx context.Context, userID string) ([]*domain.BlogPost, error) {
	return s.repo.FindLikedBy(ctx, userID)
}

func removeMember(set []string, member string) []string {
	out := make([]string, 0, len(set))
	for _, m := range set {
		if m != member {
			out = append(out, m)
		}
	}
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
