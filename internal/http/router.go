package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/storefront-tracker/docs"
	"github.com/rogerio-castellano/storefront-tracker/internal/http/handlers"
	rl "github.com/rogerio-castellano/storefront-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/storefront-tracker/internal/telemetry"
)

type RouterOptions struct {
	Logger         *slog.Logger
	CORSOrigins    []string
	Visitors       *rl.Visitors
	RequestTimeout time.Duration
}

func NewRouter(srv *handlers.Server, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(telemetry.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", srv.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		if opts.Visitors != nil {
			r.Use(RateLimitMiddleware(opts.Visitors))
		}
		r.Use(chimiddleware.Timeout(timeout))

		r.Get("/catalog", srv.GetCatalog)
		r.Get("/catalog/categories", srv.GetCategories)
		r.Get("/catalog/summary", srv.GetSummary)
		r.Get("/products/{id}", srv.GetProduct)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", srv.GetDashboard)
			r.Post("/login", srv.Login)
			r.Post("/logout", srv.Logout)
			r.Post("/alerts/refresh", srv.RefreshAlerts)
			r.Post("/insights/refresh", srv.RefreshInsights)
			r.Post("/analyze/{productId}", srv.Analyze)
		})
	})

	return r
}
