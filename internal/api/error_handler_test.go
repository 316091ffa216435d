package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/fumer/blog-platform-api/internal/core/domain"
)

func renderError(t *testing.T, err error, env string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop(), env)(err, c)
	return rec
}

func TestErrorHandler_DomainMappings(t *testing.T) {
	cases := []struct {
		err  error
		code int
		body string
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest, `{"error":"invalid input"}`},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, `{"error":"invalid credentials"}`},
		{domain.ErrInvalidToken, http.StatusForbidden, `{"error":"invalid token"}`},
		{domain.ErrForbidden, http.StatusForbidden, `{"error":"access forbidden"}`},
		{domain.ErrPostNotFound, http.StatusNotFound, `{"error":"blog post not found"}`},
		{domain.ErrUserNotFound, http.StatusNotFound, `{"error":"user not found"}`},
		{domain.ErrUserExists, http.StatusConflict, `{"error":"user already exists"}`},
	}

	for _, tc := range cases {
		rec := renderError(t, tc.err, "production")
		assert.Equal(t, tc.code, rec.Code, "error %v", tc.err)
		assert.JSONEq(t, tc.body, rec.Body.String(), "error %v", tc.err)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "title and content are required"), "production")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"title and content are required"}`, rec.Body.String())
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	rec := renderError(t, errors.New("connection reset"), "production")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestErrorHandler_DetailsOutsideProduction(t *testing.T) {
	rec := renderError(t, errors.New("connection reset"), "development")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error","details":"connection reset"}`, rec.Body.String())
}
