package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fumer/blog-platform-api/internal/api/middleware"
	"github.com/fumer/blog-platform-api/internal/core/domain"
	"github.com/fumer/blog-platform-api/internal/core/ports"
)

// PostHandler handles the admin post CRUD surface. Create and update accept
// multipart forms whose tags, categories, and isPremium fields arrive as
// JSON-encoded strings.
type PostHandler struct {
	service   ports.PostService
	uploadDir string
	logger    zerolog.Logger
}

func NewPostHandler(service ports.PostService, uploadDir string, logger zerolog.Logger) *PostHandler {
	return &PostHandler{service: service, uploadDir: uploadDir, logger: logger}
}

// Create handles POST /api/admin/posts (admin only, multipart form).
//
// @Summary      Create a blog post
// @Tags         posts
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        title      formData  string  true   "Title"
// @Param        content    formData  string  true   "Content"
// @Param        tags       formData  string  false  "JSON-encoded string array"
// @Param        categories formData  string  false  "JSON-encoded string array"
// @Param        status     formData  string  false  "draft or published"
// @Param        isPremium  formData  string  false  "JSON-encoded boolean"
// @Param        image      formData  file    false  "Cover image"
// @Success      201  {object}  domain.BlogPost
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	title := c.FormValue("title")
	content := c.FormValue("content")
	if title == "" || content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title and content are required")
	}

	imageURL, err := h.saveUpload(c)
	if err != nil {
		return err
	}

	in := ports.CreatePostInput{
		Title:      title,
		Content:    content,
		Author:     middleware.CurrentUser(c).Email,
		Tags:       h.parseList(c, "tags", []string{}),
		Categories: h.parseList(c, "categories", []string{}),
		Status:     domain.PostStatus(c.FormValue("status")),
		ImageURL:   imageURL,
		IsPremium:  h.parseBool(c, "isPremium", false),
	}

	post, err := h.service.CreatePost(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// List handles GET /api/admin/posts (admin only).
//
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.BlogPost
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Get handles GET /api/admin/posts/:id (optional auth). Admins see any post,
// everyone else only published ones.
//
// @Summary      Get one post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID (bare or prefixed)"
// @Success      200  {object}  domain.BlogPost
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.GetPost(c.Request().Context(), c.Param("id"), middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Update handles PUT /api/admin/posts/:id (admin only, multipart form).
//
// @Summary      Update a post
// @Tags         posts
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  domain.BlogPost
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	in := ports.UpdatePostInput{
		Tags:       h.parseListOptional(c, "tags"),
		Categories: h.parseListOptional(c, "categories"),
		IsPremium:  h.parseBoolOptional(c, "isPremium"),
	}

	if v := c.FormValue("title"); v != "" {
		in.Title = &v
	}
	if v := c.FormValue("content"); v != "" {
		in.Content = &v
	}
	if v := c.FormValue("status"); v != "" {
		status := domain.PostStatus(v)
		in.Status = &status
	}

	imageURL, err := h.saveUpload(c)
	if err != nil {
		return err
	}
	if imageURL != nil {
		in.ImageURL = imageURL
	}

	post, err := h.service.UpdatePost(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /api/admin/posts/:id (admin only).
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  deleteResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.service.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResponse{Message: "blog post deleted successfully"})
}

// ListByStatus handles GET /api/admin/posts/status/:status (admin only).
//
// @Summary      List posts by status
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        status  path      string  true  "draft or published"
// @Success      200     {array}   domain.BlogPost
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Router       /api/admin/posts/status/{status} [get]
func (h *PostHandler) ListByStatus(c echo.Context) error {
	posts, err := h.service.ListPostsByStatus(c.Request().Context(), domain.PostStatus(c.Param("status")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// --- Multipart helpers ---

// parseList decodes a JSON-encoded string array from the form. A malformed
// value is logged and replaced by fallback rather than rejecting the request.
func (h *PostHandler) parseList(c echo.Context, field string, fallback []string) []string {
	raw := c.FormValue(field)
	if raw == "" {
		return fallback
	}

	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		h.logger.Warn().Str("field", field).Str("raw", raw).Err(err).Msg("discarding malformed form field")
		return fallback
	}
	return out
}

// parseListOptional returns nil when the field is absent or malformed, which
// the service treats as "keep the stored value".
func (h *PostHandler) parseListOptional(c echo.Context, field string) *[]string {
	raw := c.FormValue(field)
	if raw == "" {
		return nil
	}

	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		h.logger.Warn().Str("field", field).Str("raw", raw).Err(err).Msg("discarding malformed form field")
		return nil
	}
	return &out
}

func (h *PostHandler) parseBool(c echo.Context, field string, fallback bool) bool {
	raw := c.FormValue(field)
	if raw == "" {
		return fallback
	}

	var out bool
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		h.logger.Warn().Str("field", field).Str("raw", raw).Err(err).Msg("discarding malformed form field")
		return fallback
	}
	return out
}

func (h *PostHandler) parseBoolOptional(c echo.Context, field string) *bool {
	raw := c.FormValue(field)
	if raw == "" {
		return nil
	}

	var out bool
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		h.logger.Warn().Str("field", field).Str("raw", raw).Err(err).Msg("discarding malformed form field")
		return nil
	}
	return &out
}

// saveUpload persists the optional "image" multipart file under the upload
// directory and returns its public URL, or nil when no file was sent.
func (h *PostHandler) saveUpload(c echo.Context) (*string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		// Absent file, or a non-multipart body: nothing to store.
		return nil, nil
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return nil, err
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, err
	}

	url := "/uploads/" + name
	return &url, nil
}
