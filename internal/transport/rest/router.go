package rest

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/teampulse/teampulse-backend/internal/auth"
	"github.com/teampulse/teampulse-backend/internal/config"
	"github.com/teampulse/teampulse-backend/internal/transport/middleware"
)

// RouterDeps bundles everything NewRouter needs.
type RouterDeps struct {
	Log       *slog.Logger
	Auth      *AuthHandler
	Entries   *EntryHandler
	Analytics *AnalyticsHandler
	Dashboard *DashboardHandler
	Reports   *ReportHandler
	Health    *HealthHandler

	JWT *auth.JWTManager

	Registry    *prometheus.Registry
	RateLimiter *middleware.RateLimiter
	CORS        config.CORSConfig
}

// NewRouter assembles the HTTP routing table and middleware chain.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Infrastructure endpoints, outside the auth chain.
	mux.HandleFunc("GET /healthz", deps.Health.Live)
	mux.HandleFunc("GET /readyz", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	// Credential endpoints carry a tighter rate limit.
	authLimit := deps.RateLimiter.Limit(10)
	mux.Handle("POST /api/v1/auth/register", authLimit(http.HandlerFunc(deps.Auth.Register)))
	mux.Handle("POST /api/v1/auth/login", authLimit(http.HandlerFunc(deps.Auth.Login)))

	// Authenticated API.
	protected := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireUser(h)
	}
	mux.Handle("GET /api/v1/users/me", protected(deps.Auth.Me))

	mux.Handle("POST /api/v1/entries", protected(deps.Entries.Create))
	mux.Handle("GET /api/v1/entries", protected(deps.Entries.List))
	mux.Handle("GET /api/v1/entries/{id}", protected(deps.Entries.Get))
	mux.Handle("DELETE /api/v1/entries/{id}", protected(deps.Entries.Delete))

	mux.Handle("GET /api/v1/analytics/mood-history", protected(deps.Analytics.MoodHistogram))
	mux.Handle("GET /api/v1/analytics/energy-heatmap", protected(deps.Analytics.EnergyHeatmap))
	mux.Handle("GET /api/v1/analytics/complexity-satisfaction", protected(deps.Analytics.ComplexitySatisfaction))
	mux.Handle("GET /api/v1/analytics/energy-satisfaction", protected(deps.Analytics.Scatter))
	mux.Handle("GET /api/v1/analytics/org-mood", protected(deps.Analytics.OrgDistribution))
	mux.Handle("GET /api/v1/analytics/energy-trend", protected(deps.Analytics.EnergyTrend))
	mux.Handle("GET /api/v1/analytics/weekday-satisfaction", protected(deps.Analytics.WeekdaySatisfaction))

	mux.Handle("GET /api/v1/dashboard", protected(deps.Dashboard.Summary))

	mux.Handle("POST /api/v1/reports", protected(deps.Reports.Generate))
	mux.Handle("GET /api/v1/reports", protected(deps.Reports.List))
	mux.Handle("GET /api/v1/reports/{id}", protected(deps.Reports.Get))

	// Admin surface.
	admin := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireUser(middleware.RequireAdmin(h))
	}
	mux.Handle("GET /api/v1/users", admin(deps.Auth.ListUsers))
	mux.Handle("GET /api/v1/admin/entries", admin(deps.Entries.ListAll))
	mux.Handle("POST /api/v1/admin/entries/rescore", admin(deps.Entries.Rescore))

	metrics := middleware.NewMetrics(deps.Registry)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(deps.Log),
		middleware.Logger(deps.Log),
		metrics.Handler,
		middleware.CORS(deps.CORS),
		middleware.Auth(deps.JWT),
	)

	return chain(mux)
}
