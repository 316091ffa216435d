package domain

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// PostStatus represents the publication state of a blog post.
type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
)

// postIDPrefix namespaces post identifiers in the document store.
const postIDPrefix = "post:"

var ErrPostNotFound = errors.New("blog post not found")
var ErrInvalidInput = errors.New("invalid input")
var ErrForbidden = errors.New("access forbidden")

// Comment is owned exclusively by its parent post; it has no lifecycle of
// its own. Identifiers derive from the creation timestamp.
type Comment struct {
	ID        string    `json:"id" bson:"id"`
	UserID    string    `json:"userId" bson:"user_id"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// BlogPost is the core aggregate root. The author is a denormalized email
// string, not a user relation. The likes counter always equals len(LikedBy).
type BlogPost struct {
	ID         string     `json:"id" bson:"id"`
	Title      string     `json:"title" bson:"title"`
	Content    string     `json:"content" bson:"content"`
	Author     string     `json:"author" bson:"author"`
	Tags       []string   `json:"tags" bson:"tags"`
	Categories []string   `json:"categories" bson:"categories"`
	Status     PostStatus `json:"status" bson:"status"`
	ImageURL   *string    `json:"imageUrl" bson:"image_url,omitempty"`
	IsPremium  bool       `json:"isPremium" bson:"is_premium"`
	Likes      int        `json:"likes" bson:"likes"`
	LikedBy    []string   `json:"likedBy" bson:"liked_by"`
	Comments   []Comment  `json:"comments" bson:"comments"`
	Bookmarks  []string   `json:"bookmarks" bson:"bookmarks"`
	CreatedAt  time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time  `json:"updatedAt" bson:"updated_at"`
}

// NewPostID returns a fresh namespaced post identifier.
func NewPostID(now time.Time) string {
	return postIDPrefix + strconv.FormatInt(now.UnixMilli(), 10)
}

// NewCommentID derives a comment identifier from its creation time.
func NewCommentID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// NormalizePostID maps bare and prefixed identifier forms to the same
// canonical key, so "42" and "post:42" address one document.
func NormalizePostID(id string) string {
	if strings.HasPrefix(id, postIDPrefix) {
		return id
	}
	return postIDPrefix + id
}

// HasLiked reports whether userID is a member of the post's liked-by set.
func (p *BlogPost) HasLiked(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// HasBookmarked reports whether userID is a member of the bookmark set.
func (p *BlogPost) HasBookmarked(userID string) bool {
	for _, id := range p.Bookmarks {
		if id == userID {
			return true
		}
	}
	return false
}
