package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/fumer/blog-platform-api/internal/core/domain"
)

func invokeRBAC(t *testing.T, user *domain.User, roles ...string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(userContextKey, user)
	}

	var nextCalled bool
	handler := RBAC(roles...)(func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, nextCalled
}

func TestRBAC_AllowsMatchingRole(t *testing.T) {
	admin := &domain.User{ID: "user:1", Role: domain.RoleAdmin}

	rec, nextCalled := invokeRBAC(t, admin, domain.RoleAdmin)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, nextCalled)
}

func TestRBAC_ForbidsOtherRoles(t *testing.T) {
	reader := &domain.User{ID: "user:2", Role: domain.RoleUser}

	rec, nextCalled := invokeRBAC(t, reader, domain.RoleAdmin)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, nextCalled)
}

func TestRBAC_RejectsAnonymous(t *testing.T) {
	rec, nextCalled := invokeRBAC(t, nil, domain.RoleAdmin)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestRBAC_MultipleRoles(t *testing.T) {
	reader := &domain.User{ID: "user:2", Role: domain.RoleUser}

	rec, nextCalled := invokeRBAC(t, reader, domain.RoleAdmin, domain.RoleUser)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, nextCalled)
}
