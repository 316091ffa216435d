package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fumer/blog-platform-api/internal/core/domain"
	"github.com/fumer/blog-platform-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users map[string]*domain.User // keyed by id
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email || u.ID == user.ID {
			return nil, domain.ErrUserExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, id string, upd ports.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.PasswordHash != nil {
		u.PasswordHash = *upd.PasswordHash
	}
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass123")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, domain.RoleUser, user.Role)
	assert.True(t, len(user.ID) > len("user:"), "expected a namespaced id, got %q", user.ID)
	assert.Empty(t, user.PasswordHash, "returned user must be sanitized")

	stored := repo.users[user.ID]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")))
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	_, err := svc.Register(context.Background(), "", "a@example.com", "pass")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Register(context.Background(), "Bob", "", "pass")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Register(context.Background(), "Bob", "b@example.com", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	_, err := svc.Register(context.Background(), "Bob", "bob@example.com", "pass")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Bobby", "bob@example.com", "pass2")
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, err := svc.Register(context.Background(), "Carol", "carol@example.com", "s3cret")
	require.NoError(t, err)

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotNil(t, user)
	assert.Empty(t, user.PasswordHash)

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	assert.Equal(t, "carol@example.com", claims["email"])
	assert.Equal(t, domain.RoleUser, claims["role"])
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	_, err := svc.Register(context.Background(), "Dave", "dave@example.com", "goodpass")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "dave@example.com", "badpass")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "pass")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ---------------------------------------------------------------------------
// Authenticate
// ---------------------------------------------------------------------------

func TestAuthService_Authenticate_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, err := svc.Register(context.Background(), "Erin", "erin@example.com", "pass123")
	require.NoError(t, err)

	token, _, err := svc.Login(context.Background(), "erin@example.com", "pass123")
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "erin@example.com", user.Email)
	assert.Empty(t, user.PasswordHash, "resolved identity must be sanitized")
}

func TestAuthService_Authenticate_Malformed(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	_, err := svc.Authenticate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAuthService_Authenticate_WrongSecret(t *testing.T) {
	other := NewAuthService(newStubUserRepo(), "other-secret", time.Hour)
	forged, err := other.generateToken(&domain.User{Email: "x@example.com", Role: domain.RoleUser})
	require.NoError(t, err)

	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)
	_, err = svc.Authenticate(context.Background(), forged)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAuthService_Authenticate_Expired(t *testing.T) {
	repo := newStubUserRepo()
	expiring := NewAuthService(repo, "secret", time.Nanosecond)

	_, err := expiring.Register(context.Background(), "Frank", "frank@example.com", "pass123")
	require.NoError(t, err)

	token, _, err := expiring.Login(context.Background(), "frank@example.com", "pass123")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = expiring.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAuthService_Authenticate_UnknownIdentity(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	// Token is valid but the account behind the claim is gone.
	token, err := svc.generateToken(&domain.User{Email: "ghost@example.com", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ---------------------------------------------------------------------------
// UpdateProfile
// ---------------------------------------------------------------------------

func TestAuthService_UpdateProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	created, err := svc.Register(context.Background(), "Grace", "grace@example.com", "oldpass")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), created.ID, "Grace H", "newpass")
	require.NoError(t, err)
	assert.Equal(t, "Grace H", updated.Name)
	assert.Empty(t, updated.PasswordHash)

	stored := repo.users[created.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpass")))

	_, _, err = svc.Login(context.Background(), "grace@example.com", "newpass")
	assert.NoError(t, err)
}

func TestAuthService_UpdateProfile_NothingToChange(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	_, err := svc.UpdateProfile(context.Background(), "user:1", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
