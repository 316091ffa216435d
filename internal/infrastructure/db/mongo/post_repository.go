package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fumer/blog-platform-api/internal/core/domain"
	"github.com/fumer/blog-platform-api/internal/core/ports"
)

const postsCollection = "blog_posts"

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection(postsCollection)}
}

// Create inserts a new post document.
func (r *PostRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// FindByID retrieves a post, accepting bare or prefixed identifiers.
func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var post domain.BlogPost
	err := r.col.FindOne(ctx, bson.M{"id": domain.NormalizePostID(id)}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return &post, nil
}

// FindAll returns posts matching the filter, newest first.
func (r *PostRepository) FindAll(ctx context.Context, filter ports.ListPostsFilter) ([]*domain.BlogPost, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Author != "" {
		query["author"] = filter.Author
	}
	return r.find(ctx, query)
}

// FindLikedBy returns posts whose liked_by set contains userID, newest first.
func (r *PostRepository) FindLikedBy(ctx context.Context, userID string) ([]*domain.BlogPost, error) {
	return r.find(ctx, bson.M{"liked_by": userID})
}

// FindBookmarkedBy returns posts whose bookmarks set contains userID, newest first.
func (r *PostRepository) FindBookmarkedBy(ctx context.Context, userID string) ([]*domain.BlogPost, error) {
	return r.find(ctx, bson.M{"bookmarks": userID})
}

func (r *PostRepository) find(ctx context.Context, query bson.M) ([]*domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []*domain.BlogPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

// Update replaces the stored document, restamping updated_at.
func (r *PostRepository) Update(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	post.UpdatedAt = time.Now().UTC()

	result, err := r.col.ReplaceOne(ctx, bson.M{"id": post.ID}, post)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, domain.ErrPostNotFound
	}
	return post, nil
}

// Delete removes the post and reports whether a document was removed.
func (r *PostRepository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.DeleteOne(ctx, bson.M{"id": domain.NormalizePostID(id)})
	if err != nil {
		return false, fmt.Errorf("delete post: %w", err)
	}
	return result.DeletedCount > 0, nil
}

// EnsureIndexes creates necessary indexes on the posts collection.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "author", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
