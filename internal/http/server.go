// Package http exposes the shop over a JSON API: order entry, menu
// management, expense tracking, reports with CSV export, and the
// dashboard, plus health and metrics endpoints.
package http

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"dukaan/internal/cache"
	"dukaan/internal/config"
	"dukaan/internal/log"
	"dukaan/internal/middleware/ratelimit"
	"dukaan/internal/services"
	"dukaan/web"
)

// Default lookback windows, in days, when a report request carries no
// explicit range.
const (
	defaultSalesWindow     = 7
	defaultExpenseWindow   = 30
	defaultDashboardWindow = 30
)

type Server struct {
	shop    *services.ShopService
	cfg     *config.Config
	logger  *log.Logger
	router  chi.Router
	metrics *metrics

	// Report responses are memoized per date range and dropped on every
	// mutation, so repeated dashboard polls don't re-aggregate.
	salesCache   *cache.LRU[salesReportResponse]
	expenseCache *cache.LRU[expenseReportResponse]
	dashCache    *cache.LRU[dashboardResponse]
}

func NewServer(shop *services.ShopService, cfg *config.Config, logger *log.Logger) *Server {
	s := &Server{
		shop:         shop,
		cfg:          cfg,
		logger:       logger.WithComponent(log.ComponentHTTP),
		metrics:      newMetrics(),
		salesCache:   cache.NewLRU[salesReportResponse](cfg.CacheSize, cfg.CacheTTL),
		expenseCache: cache.NewLRU[expenseReportResponse](cfg.CacheSize, cfg.CacheTTL),
		dashCache:    cache.NewLRU[dashboardResponse](cfg.CacheSize, cfg.CacheTTL),
	}
	s.router = s.routes()
	return s
}

// Handler returns the fully wired router.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(s.metrics.middleware)
	r.Use(securityHeaders)
	if s.cfg.RateLimitPerMinute > 0 {
		r.Use(ratelimit.NewLimiter(s.cfg.RateLimitPerMinute).Middleware)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.healthz)
	r.Get("/readyz", s.readyz)
	r.Handle("/metrics", s.metrics.handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", s.createOrder)
			r.Get("/recent", s.recentOrders)
			r.Delete("/{id}", s.deleteOrder)
		})

		r.Route("/menu", func(r chi.Router) {
			r.Get("/", s.getMenu)
			r.Route("/items", func(r chi.Router) {
				r.Get("/", s.listMenuItems)
				r.Post("/", s.createMenuItem)
				r.Delete("/{id}", s.deleteMenuItem)
			})
			r.Route("/categories", func(r chi.Router) {
				r.Get("/", s.listMenuCategories)
				r.Post("/", s.createMenuCategory)
			})
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Post("/", s.createExpense)
			r.Get("/categories", s.expenseCategories)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/sales", s.salesReport)
			r.Get("/sales/export", s.salesExport)
			r.Get("/expenses", s.expenseReport)
			r.Get("/expenses/export", s.expenseExport)
		})

		r.Get("/dashboard", s.dashboard)
	})

	// The embedded till page drives the JSON API from a browser.
	if static, err := fs.Sub(web.StaticFS, "static"); err == nil {
		r.Handle("/*", http.FileServer(http.FS(static)))
	}

	return r
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	if s.shop == nil {
		writeError(w, http.StatusServiceUnavailable, "shop service not ready")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// invalidate drops every memoized report. Called after each successful
// mutation so reports never serve stale aggregates.
func (s *Server) invalidate() {
	s.salesCache.Purge()
	s.expenseCache.Purge()
	s.dashCache.Purge()
}
