package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/skysearch/internal/auth"
)

func newAuthHandler() *AuthHandler {
	return NewAuthHandler(auth.NewService(auth.NewMemoryStore(), zerolog.Nop()))
}

func TestRegisterLoginMeFlow(t *testing.T) {
	h := newAuthHandler()

	rec := doJSON(t, h.Register, http.MethodPost, "/api/v1/auth/register",
		`{"name":"Amy","email":"amy@example.com","password":"secret1","confirmPassword":"secret1"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h.Login, http.MethodPost, "/api/v1/auth/login",
		`{"email":"amy@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result auth.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.True(t, result.Success)
	require.NotEmpty(t, result.Token)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", strings.NewReader(""))
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+result.Token)
	meRec := httptest.NewRecorder()
	require.NoError(t, h.Me(e.NewContext(req, meRec)))

	assert.Equal(t, http.StatusOK, meRec.Code)
	assert.Contains(t, meRec.Body.String(), "amy@example.com")
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	h := newAuthHandler()

	rec := doJSON(t, h.Login, http.MethodPost, "/api/v1/auth/login",
		`{"email":"ghost@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeWithoutSession(t *testing.T) {
	h := newAuthHandler()

	rec := doJSON(t, h.Me, http.MethodGet, "/api/v1/auth/me", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterRejectsMismatchedPasswords(t *testing.T) {
	h := newAuthHandler()

	rec := doJSON(t, h.Register, http.MethodPost, "/api/v1/auth/register",
		`{"name":"Amy","email":"amy@example.com","password":"secret1","confirmPassword":"secret2"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "passwords do not match")
}
