package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campuskart/campuskart-backend/api/controllers"
	"github.com/campuskart/campuskart-backend/api/middleware"
	"github.com/campuskart/campuskart-backend/internal/auth"
	"github.com/campuskart/campuskart-backend/internal/catalog"
	"github.com/campuskart/campuskart-backend/internal/moderation"
	"github.com/campuskart/campuskart-backend/internal/orders"
	"github.com/campuskart/campuskart-backend/pkg/config"
	"github.com/campuskart/campuskart-backend/pkg/logger"
	"github.com/campuskart/campuskart-backend/pkg/metrics"
	"github.com/campuskart/campuskart-backend/pkg/redis"
)

// Params carries everything the router wires together. Redis and the health
// pingers are optional; the corresponding features degrade quietly when they
// are absent.
type Params struct {
	Config *config.Config
	Logger *logger.Logger

	AuthService       auth.Service
	CatalogService    catalog.Service
	ModerationService moderation.Service
	OrdersService     orders.Service

	Redis       *redis.Client
	HTTPMetrics *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer
	HealthDeps  map[string]controllers.Pinger
	UploadsDir  string
}

func NewRouter(p Params) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
		middleware.Metrics(p.HTTPMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)
	authLimited := func(policy middleware.AuthRateLimitPolicy) func(http.Handler) http.Handler {
		if p.Redis == nil {
			return middleware.AuthRateLimit(policy, nil, logg)
		}
		return middleware.AuthRateLimit(policy, p.Redis, logg)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.HealthDeps))
	})

	if p.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{}))
	}

	if p.UploadsDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(p.UploadsDir)))
		r.Method(http.MethodGet, "/uploads/*", fs)
	}

	r.Route("/api", func(r chi.Router) {
		r.With(authLimited(registerPolicy)).Post("/register", controllers.AuthRegister(p.AuthService, logg))
		r.With(authLimited(loginPolicy)).Post("/login", controllers.AuthLogin(p.AuthService, logg))

		r.Get("/items", controllers.ListItems(p.CatalogService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))

			maxUploadBytes := int64(cfg.Uploads.MaxUploadMB) << 20
			r.Post("/items", controllers.CreateItem(p.ModerationService, maxUploadBytes, logg))

			r.Get("/user/items", controllers.UserItems(p.CatalogService, logg))
			r.Get("/user/orders", controllers.UserOrders(p.CatalogService, logg))

			r.Post("/orders", controllers.PlaceOrder(p.OrdersService, logg))
			r.Post("/contact-seller", controllers.ContactSeller(p.OrdersService, logg))

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin(logg))
				r.Get("/pending-items", controllers.AdminPendingItems(p.CatalogService, logg))
				r.Put("/items/{id}/status", controllers.AdminUpdateItemStatus(p.ModerationService, logg))
				r.Delete("/items/{id}", controllers.AdminDeleteItem(p.ModerationService, logg))
			})
		})
	})

	return r
}
