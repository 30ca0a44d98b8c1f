// Package auth is the account and session service behind the search app's
// login screens. Hardening is an explicit non-goal of this system; the
// checks here mirror the demo rules (matching confirmation, six character
// minimum) and nothing stronger.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dharmasatrya/skysearch/internal/models"
)

type Service struct {
	store Store
	log   zerolog.Logger
	now   func() time.Time
}

// Result mirrors the outcome shape of the search pipeline: failures are
// values, not errors, so handlers never branch on error types.
type Result struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user,omitempty"`
	Token   string       `json:"token,omitempty"`
	Error   string       `json:"error,omitempty"`
}

func NewService(store Store, log zerolog.Logger) *Service {
	return &Service{store: store, log: log, now: time.Now}
}

// Register creates a new account and returns it without a session; the
// caller logs in separately.
func (s *Service) Register(ctx context.Context, creds models.RegisterCredentials) Result {
	if creds.Email == "" || creds.Password == "" {
		return failure(models.ErrMissingCredential)
	}
	if creds.Password != creds.ConfirmPassword {
		return failure(models.ErrPasswordMismatch)
	}
	if len(creds.Password) < 6 {
		return failure(models.ErrPasswordTooShort)
	}

	_, exists, err := s.store.GetUser(ctx, creds.Email)
	if err != nil {
		s.log.Error().Err(err).Msg("registration lookup failed")
		return Result{Error: "registration failed"}
	}
	if exists {
		return failure(models.ErrEmailTaken)
	}

	user := models.User{
		ID:        uuid.NewString(),
		Email:     creds.Email,
		Name:      creds.Name,
		CreatedAt: s.now(),
	}
	if err := s.store.SaveUser(ctx, user); err != nil {
		s.log.Error().Err(err).Msg("saving user failed")
		return Result{Error: "registration failed"}
	}

	return Result{Success: true, User: &user}
}

// Login checks the credentials against the store and opens a session,
// returning its token.
func (s *Service) Login(ctx context.Context, creds models.LoginCredentials) Result {
	if creds.Email == "" || creds.Password == "" {
		return failure(models.ErrMissingCredential)
	}

	user, exists, err := s.store.GetUser(ctx, creds.Email)
	if err != nil {
		s.log.Error().Err(err).Msg("login lookup failed")
		return Result{Error: "login failed"}
	}
	if !exists {
		return failure(models.ErrUserNotFound)
	}

	// Passwords are not persisted; the length rule is the whole check.
	if len(creds.Password) < 6 {
		return failure(models.ErrInvalidPassword)
	}

	token := uuid.NewString()
	if err := s.store.SaveSession(ctx, token, *user); err != nil {
		s.log.Error().Err(err).Msg("saving session failed")
		return Result{Error: "login failed"}
	}

	return Result{Success: true, User: user, Token: token}
}

// Logout drops the session. Logging out an unknown token is a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.store.DeleteSession(ctx, token)
}

// CurrentUser returns the user bound to a session token, or nil when the
// session does not exist.
func (s *Service) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	user, exists, err := s.store.GetSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}
	return user, nil
}

// Authenticated reports whether the token names a live session.
func (s *Service) Authenticated(ctx context.Context, token string) bool {
	user, err := s.CurrentUser(ctx, token)
	return err == nil && user != nil
}

func failure(err models.ValidationError) Result {
	return Result{Error: err.Error()}
}
