package auth

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/skysearch/internal/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewMemoryStore(), zerolog.Nop())
}

func register(t *testing.T, s *Service, email string) models.User {
	t.Helper()
	result := s.Register(context.Background(), models.RegisterCredentials{
		Name:            "Test User",
		Email:           email,
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.True(t, result.Success, "registration failed: %s", result.Error)
	return *result.User
}

func TestRegister(t *testing.T) {
	s := newTestService(t)

	user := register(t, s, "amy@example.com")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "amy@example.com", user.Email)
	assert.Equal(t, "Test User", user.Name)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRegisterValidation(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		creds models.RegisterCredentials
		want  string
	}{
		{
			name:  "missing email",
			creds: models.RegisterCredentials{Password: "secret1", ConfirmPassword: "secret1"},
			want:  models.ErrMissingCredential.Error(),
		},
		{
			name:  "password mismatch",
			creds: models.RegisterCredentials{Email: "a@b.c", Password: "secret1", ConfirmPassword: "secret2"},
			want:  models.ErrPasswordMismatch.Error(),
		},
		{
			name:  "password too short",
			creds: models.RegisterCredentials{Email: "a@b.c", Password: "short", ConfirmPassword: "short"},
			want:  models.ErrPasswordTooShort.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.Register(ctx, tt.creds)
			assert.False(t, result.Success)
			assert.Equal(t, tt.want, result.Error)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newTestService(t)
	register(t, s, "amy@example.com")

	result := s.Register(context.Background(), models.RegisterCredentials{
		Email:           "amy@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})

	assert.False(t, result.Success)
	assert.Equal(t, models.ErrEmailTaken.Error(), result.Error)
}

func TestLoginAndSession(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	register(t, s, "amy@example.com")

	result := s.Login(ctx, models.LoginCredentials{Email: "amy@example.com", Password: "secret1"})

	require.True(t, result.Success)
	require.NotEmpty(t, result.Token)

	user, err := s.CurrentUser(ctx, result.Token)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "amy@example.com", user.Email)
	assert.True(t, s.Authenticated(ctx, result.Token))

	require.NoError(t, s.Logout(ctx, result.Token))

	user, err = s.CurrentUser(ctx, result.Token)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.False(t, s.Authenticated(ctx, result.Token))
}

func TestLoginFailures(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	register(t, s, "amy@example.com")

	unknown := s.Login(ctx, models.LoginCredentials{Email: "bob@example.com", Password: "secret1"})
	assert.False(t, unknown.Success)
	assert.Equal(t, models.ErrUserNotFound.Error(), unknown.Error)

	badPassword := s.Login(ctx, models.LoginCredentials{Email: "amy@example.com", Password: "short"})
	assert.False(t, badPassword.Success)
	assert.Equal(t, models.ErrInvalidPassword.Error(), badPassword.Error)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	store, err := NewRedisStore(RedisConfig{Host: mr.Host(), Port: mr.Port()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()

	_, exists, err := store.GetUser(ctx, "amy@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	user := models.User{ID: "u-1", Email: "amy@example.com", Name: "Amy"}
	require.NoError(t, store.SaveUser(ctx, user))

	got, exists, err := store.GetUser(ctx, "amy@example.com")
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, user.ID, got.ID)

	require.NoError(t, store.SaveSession(ctx, "token-1", user))
	session, exists, err := store.GetSession(ctx, "token-1")
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, "amy@example.com", session.Email)

	require.NoError(t, store.DeleteSession(ctx, "token-1"))
	_, exists, err = store.GetSession(ctx, "token-1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestServiceOnRedisStore(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	store, err := NewRedisStore(RedisConfig{Host: mr.Host(), Port: mr.Port()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	s := NewService(store, zerolog.Nop())
	register(t, s, "redis@example.com")

	result := s.Login(context.Background(), models.LoginCredentials{Email: "redis@example.com", Password: "secret1"})
	require.True(t, result.Success)
	assert.True(t, s.Authenticated(context.Background(), result.Token))
}
