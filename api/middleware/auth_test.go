package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgAuth "github.com/campuskart/campuskart-backend/pkg/auth"
	"github.com/campuskart/campuskart-backend/pkg/config"
	"github.com/campuskart/campuskart-backend/pkg/enums"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "campuskart",
		ExpirationMinutes: 30,
	}
}

func mintTestToken(t *testing.T, cfg config.JWTConfig, role enums.UserRole) (string, uuid.UUID) {
	t.Helper()
	userID := uuid.New()
	token, err := pkgAuth.MintAccessToken(cfg, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: userID,
		Email:  "user@example.edu",
		Role:   role,
	})
	require.NoError(t, err)
	return token, userID
}

func messageFrom(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestAuthMissingTokenIs401(t *testing.T) {
	handler := Auth(testJWTConfig(), nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler should not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/user/items", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Access token required", messageFrom(t, rec))
}

func TestAuthInvalidTokenIs403(t *testing.T) {
	handler := Auth(testJWTConfig(), nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler should not run")
	}))

	r := httptest.NewRequest("GET", "/api/user/items", nil)
	r.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Invalid token", messageFrom(t, rec))
}

func TestAuthWrongSecretIs403(t *testing.T) {
	otherCfg := testJWTConfig()
	otherCfg.Secret = "different-secret"
	token, _ := mintTestToken(t, otherCfg, enums.UserRoleMember)

	handler := Auth(testJWTConfig(), nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler should not run")
	}))

	r := httptest.NewRequest("GET", "/api/user/items", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthSeedsContext(t *testing.T) {
	cfg := testJWTConfig()
	token, userID := mintTestToken(t, cfg, enums.UserRoleAdmin)

	var gotUserID, gotRole, gotEmail string
	handler := Auth(cfg, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromContext(r.Context())
		gotRole = RoleFromContext(r.Context())
		gotEmail = EmailFromContext(r.Context())
	}))

	r := httptest.NewRequest("GET", "/api/user/items", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), gotUserID)
	assert.Equal(t, "admin", gotRole)
	assert.Equal(t, "user@example.edu", gotEmail)
}

func TestRequireAdminBlocksMembers(t *testing.T) {
	handler := RequireAdmin(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler should not run")
	}))

	r := httptest.NewRequest("GET", "/api/admin/pending-items", nil)
	r = r.WithContext(WithRole(r.Context(), "member"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Admin access required", messageFrom(t, rec))
}

func TestRequireAdminAllowsAdmins(t *testing.T) {
	called := false
	handler := RequireAdmin(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	}))

	r := httptest.NewRequest("GET", "/api/admin/pending-items", nil)
	r = r.WithContext(WithRole(r.Context(), "admin"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}
