package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskart/campuskart-backend/internal/catalog"
	pkgauth "github.com/campuskart/campuskart-backend/pkg/auth"
	"github.com/campuskart/campuskart-backend/pkg/config"
	"github.com/campuskart/campuskart-backend/pkg/enums"
	"github.com/campuskart/campuskart-backend/pkg/logger"
)

type routerCatalogStub struct{}

func (routerCatalogStub) PublicItems(context.Context, catalog.ItemFilters) ([]catalog.ItemView, error) {
	return []catalog.ItemView{}, nil
}

func (routerCatalogStub) PendingItems(context.Context) ([]catalog.ItemView, error) {
	return []catalog.ItemView{}, nil
}

func (routerCatalogStub) OwnerItems(context.Context, uuid.UUID) ([]catalog.ItemView, error) {
	return []catalog.ItemView{}, nil
}

func (routerCatalogStub) OwnerOrders(context.Context, uuid.UUID) ([]catalog.OrderView, error) {
	return []catalog.OrderView{}, nil
}

func testRouterConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Env:  "test",
			Port: "0",
		},
		JWT: config.JWTConfig{
			Secret:            "router-test-secret",
			Issuer:            "campuskart-test",
			ExpirationMinutes: 60,
		},
		AuthRateLimit: config.AuthRateLimitConfig{
			LoginWindow:        time.Minute,
			LoginEmailLimit:    5,
			LoginIPLimit:       20,
			RegisterWindow:     5 * time.Minute,
			RegisterEmailLimit: 3,
			RegisterIPLimit:    20,
		},
		Uploads: config.UploadsConfig{MaxUploadMB: 10},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	return NewRouter(Params{
		Config:         cfg,
		Logger:         logger.New(logger.Options{Level: zerolog.Disabled, Output: io.Discard}),
		CatalogService: routerCatalogStub{},
	})
}

func mintToken(t *testing.T, cfg *config.Config, role enums.UserRole) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg.JWT, time.Now(), pkgauth.AccessTokenPayload{
		UserID: uuid.New(),
		Email:  "router@campus.edu",
		Role:   role,
	})
	require.NoError(t, err)
	return token
}

func TestRouterPublicItemsReachable(t *testing.T) {
	router := newTestRouter(t, testRouterConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRouterHealthLive(t *testing.T) {
	router := newTestRouter(t, testRouterConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t, testRouterConfig())

	for _, path := range []string{"/api/user/items", "/api/user/orders", "/api/admin/pending-items"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "Access token required", path)
	}
}

func TestRouterAdminRoutesRejectMembers(t *testing.T) {
	cfg := testRouterConfig()
	router := newTestRouter(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/pending-items", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, cfg, enums.UserRoleMember))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Admin access required")
}

func TestRouterAdminRoutesAllowAdmins(t *testing.T) {
	cfg := testRouterConfig()
	router := newTestRouter(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/pending-items", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, cfg, enums.UserRoleAdmin))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRouterGarbageTokenForbidden(t *testing.T) {
	cfg := testRouterConfig()
	router := newTestRouter(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/user/items", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}
