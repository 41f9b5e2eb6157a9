package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"service-dispatch/internal/http/handlers"
	mw "service-dispatch/internal/http/middleware"
	"service-dispatch/internal/http/middleware/ratelimit"
	"service-dispatch/internal/logx"
	"service-dispatch/internal/metrics"
)

const defaultRequestTimeout = 10 * time.Second

// Params lists the router dependencies. RateLimit, Metrics and Gatherer are optional.
type Params struct {
	Base     *handlers.Handlers
	Orders   *handlers.OrderHandler
	Handover *handlers.HandoverHandler
	Bags     *handlers.BagHandler

	Logger         logx.Logger
	Metrics        *metrics.HTTP
	RateLimit      *ratelimit.Middleware
	Gatherer       prometheus.Gatherer
	RequestTimeout time.Duration
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(p Params) http.Handler {
	if p.RequestTimeout <= 0 {
		p.RequestTimeout = defaultRequestTimeout
	}
	if p.Gatherer == nil {
		p.Gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Observability(p.Logger, p.Metrics))
	r.Use(middleware.Recoverer)

	r.Get("/ping", p.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(p.Base.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{}))
	r.NotFound(p.Base.NotFound)
	r.MethodNotAllowed(p.Base.MethodNotAllowed)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(p.RequestTimeout))
		if p.RateLimit != nil {
			r.Use(p.RateLimit.Handler())
		}

		r.Get("/couriers", p.Orders.ListCouriers)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", p.Orders.List)
			r.Post("/", p.Orders.Create)
			r.Get("/export.xlsx", p.Orders.Export)
			r.Post("/bulk", p.Orders.Bulk)
			r.Get("/{id}", p.Orders.Get)
			r.Patch("/{id}", p.Orders.Update)
		})

		r.Route("/handover/sessions", func(r chi.Router) {
			r.Post("/", p.Handover.Open)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", p.Handover.Get)
				r.Delete("/", p.Handover.Close)
				r.Put("/courier", p.Handover.SelectCourier)
				r.Post("/scans", p.Handover.Scan)
				r.Post("/commit", p.Handover.Commit)
				r.Post("/reset", p.Handover.Reset)
			})
		})

		r.Route("/bags", func(r chi.Router) {
			r.Get("/", p.Bags.List)
			r.Get("/{id}", p.Bags.Get)
			r.Get("/{id}/manifest", p.Bags.Manifest)
			r.Get("/{id}/receipt", p.Bags.Receipt)
		})
	})

	return r
}
