package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fumer/blog-platform-api/internal/api/middleware"
	"github.com/fumer/blog-platform-api/internal/core/ports"
)

// InteractionHandler handles reader interactions: comments, like and bookmark
// toggles, and the requester's membership listings. All routes require
// authentication; the full updated post is returned, matching the contract
// existing consumers rely on.
type InteractionHandler struct {
	service ports.PostService
}

func NewInteractionHandler(service ports.PostService) *InteractionHandler {
	return &InteractionHandler{service: service}
}

// AddComment handles POST /api/admin/posts/:id/comments.
//
// @Summary      Add a comment
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Post ID"
// @Param        body  body      commentRequest  true  "Comment text"
// @Success      200   {object}  domain.BlogPost
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/posts/{id}/comments [post]
func (h *InteractionHandler) AddComment(c echo.Context) error {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Comment == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "comment is required")
	}

	user := middleware.CurrentUser(c)
	post, err := h.service.AddComment(c.Request().Context(), c.Param("id"), user.ID, req.Comment)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// ToggleLike handles POST /api/admin/posts/:id/like.
//
// @Summary      Toggle a like
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  domain.BlogPost
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/posts/{id}/like [post]
func (h *InteractionHandler) ToggleLike(c echo.Context) error {
	user := middleware.CurrentUser(c)
	post, err := h.service.ToggleLike(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// ToggleBookmark handles POST /api/admin/posts/:id/bookmark.
//
// @Summary      Toggle a bookmark
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  domain.BlogPost
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/posts/{id}/bookmark [post]
func (h *InteractionHandler) ToggleBookmark(c echo.Context) error {
	user := middleware.CurrentUser(c)
	post, err := h.service.ToggleBookmark(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// ListBookmarks handles GET /api/admin/user/bookmarks.
//
// @Summary      List the requester's bookmarked posts
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.BlogPost
// @Failure      401  {object}  errorResponse
// @Router       /api/admin/user/bookmarks [get]
func (h *InteractionHandler) ListBookmarks(c echo.Context) error {
	user := middleware.CurrentUser(c)
	posts, err := h.service.ListBookmarked(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// ListLikes handles GET /api/admin/user/likes.
//
// @Summary      List the requester's liked posts
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.BlogPost
// @Failure      401  {object}  errorResponse
// @Router       /api/admin/user/likes [get]
func (h *InteractionHandler) ListLikes(c echo.Context) error {
	user := middleware.CurrentUser(c)
	posts, err := h.service.ListLiked(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}
