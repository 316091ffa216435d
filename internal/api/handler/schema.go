package handler

import (
	"github.com/fumer/blog-platform-api/internal/core/domain"
)

// errorResponse documents the standard error envelope for swagger; the real
// rendering happens in the central error handler.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name     string `json:"name"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// --- Posts ---

// Post responses serialize the domain record directly; its JSON tags are the
// wire contract (id, title, content, author, tags, categories, status,
// imageUrl, isPremium, likes, likedBy, comments, bookmarks, createdAt,
// updatedAt).

// publicPostResponse decorates a post with its Redis-backed view tally on the
// public detail route.
type publicPostResponse struct {
	*domain.BlogPost
	Views int64 `json:"views"`
}

type commentRequest struct {
	Comment string `json:"comment" validate:"required"`
}

type deleteResponse struct {
	Message string `json:"message"`
}
