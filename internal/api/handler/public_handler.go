package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fumer/blog-platform-api/internal/api/middleware"
	"github.com/fumer/blog-platform-api/internal/core/ports"
)

// PublicHandler serves the reader-facing routes. Authentication is optional;
// the visibility policy decides per requester whether a post is hidden,
// served in full, or truncated to a premium preview.
type PublicHandler struct {
	service ports.PostService
}

func NewPublicHandler(service ports.PostService) *PublicHandler {
	return &PublicHandler{service: service}
}

// List handles GET /api/posts and GET /api/admin/public/posts.
//
// @Summary      List published posts
// @Tags         public
// @Produce      json
// @Success      200  {array}  domain.BlogPost
// @Router       /api/posts [get]
func (h *PublicHandler) List(c echo.Context) error {
	posts, err := h.service.ListPublicPosts(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Get handles GET /api/posts/:id and GET /api/admin/public/posts/:id.
//
// @Summary      Get a published post
// @Tags         public
// @Produce      json
// @Param        id   path      string  true  "Post ID (bare or prefixed)"
// @Success      200  {object}  publicPostResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/posts/{id} [get]
func (h *PublicHandler) Get(c echo.Context) error {
	post, views, err := h.service.GetPublicPost(c.Request().Context(), c.Param("id"), middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, publicPostResponse{BlogPost: post, Views: views})
}
