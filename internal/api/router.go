package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/arco/demo/internal/api/handler"
	apimw "github.com/arco/demo/internal/api/middleware"
	"github.com/arco/demo/internal/metrics"
	"github.com/arco/demo/internal/ratelimiter"
	"github.com/arco/demo/internal/service"
)

// Deps carries everything the router needs. Users may be nil, in which case
// the /users routes are not mounted and fall through to the not-found view.
type Deps struct {
	AppName            string
	CORSAllowedOrigins []string
	Users              *service.UserService
	Limiter            *ratelimiter.Limiter
	Metrics            *metrics.Metrics
	Gatherer           prometheus.Gatherer
	Logger             *zap.Logger
}

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer)            // recover panics, return 500
	r.Use(chimw.RealIP)               // trust X-Forwarded-For / X-Real-IP
	r.Use(chimw.RequestSize(1 << 20)) // 1 MB max request body
	r.Use(apimw.CorrelationID)        // X-Correlation-ID inject / echo
	r.Use(apimw.RequestLogger(d.Logger))
	r.Use(apimw.Instrument(d.Metrics))
	r.Use(apimw.SecurityHeaders)
	if len(d.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: d.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowedHeaders: []string{"Content-Type", apimw.HeaderCorrelationID},
			ExposedHeaders: []string{apimw.HeaderCorrelationID},
		}).Handler)
	}
	if d.Limiter != nil {
		r.Use(d.Limiter.Middleware)
	}
	r.Use(chimw.GetHead) // HEAD is served by the GET handler

	// --- handler instances ---
	ph := handler.NewPageHandler(func(view string) {
		d.Metrics.ViewRenders.WithLabelValues(view).Inc()
	})
	hh := handler.NewHealthHandler()
	vh := handler.NewVersionHandler(d.AppName)

	r.NotFound(ph.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	// --- page routes ---
	r.Get("/version", ph.Version)
	r.Get("/health", ph.Health)

	// --- JSON system routes ---
	r.Get("/healthz", hh.Health)
	r.Get("/healthcheck", hh.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))

	r.Get("/api/v1/version", vh.Version)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/foo", handler.Application("foo"))
		r.Get("/bar", handler.Application("bar"))
	})

	if d.Users != nil {
		uh := handler.NewUserHandler(d.Users, d.Logger)
		r.Route("/users", func(r chi.Router) {
			r.Post("/", uh.Create)
			r.Get("/{id}", uh.GetByID)
			r.Put("/{id}", uh.Update)
			r.Delete("/{id}", uh.Delete)
		})
	}

	return r
}
