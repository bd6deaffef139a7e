// Package api exposes the validation engine over HTTP.
package api

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/uranus"
	"github.com/dmitrymomot/uranus/pkg/httpserver"
	"github.com/dmitrymomot/uranus/pkg/logger"
	"github.com/dmitrymomot/uranus/pkg/requestid"
)

// DefaultMaxBodyBytes caps request documents when Opts.MaxBodyBytes is zero.
const DefaultMaxBodyBytes = 1 << 20

// Opts configures the HTTP API.
type Opts struct {
	// Engine options shared by every request. A request may still switch
	// progressive mode on or off.
	EngineOptions []uranus.Option
	// Gatherer, when set, is served on /metrics.
	Gatherer prometheus.Gatherer
	// MaxBodyBytes limits request bodies; zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64
	Logger       *slog.Logger
}

type api struct {
	chi.Router
	opts Opts

	// engines holds one engine per progressive setting; fallback is the
	// one EngineOptions selects.
	engines  map[bool]*uranus.Engine
	fallback *uranus.Engine
	log      *slog.Logger
}

// New builds the router:
//
//	POST /v1/validate   validate a document (see uranus.ParseRequest)
//	GET  /v1/rules      list rule names
//	GET  /health        liveness check
//	GET  /metrics       Prometheus metrics, when a Gatherer is set
func New(o Opts) http.Handler {
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if o.Logger == nil {
		o.Logger = logger.Discard()
	}
	o.Logger = slog.New(logger.NewContextHandler(o.Logger.Handler(), requestid.Extractor()))

	engineOpts := slices.Clip(append([]uranus.Option{uranus.WithLogger(o.Logger)}, o.EngineOptions...))
	fallback := uranus.New(engineOpts...)

	a := &api{
		Router: chi.NewRouter(),
		opts:   o,
		engines: map[bool]*uranus.Engine{
			false: uranus.New(append(engineOpts, uranus.WithProgressive(false))...),
			true:  uranus.New(append(engineOpts, uranus.WithProgressive(true))...),
		},
		fallback: fallback,
		log:      o.Logger.With(logger.Component("api")),
	}
	a.setup()
	return a
}

func (a *api) setup() {
	a.Use(requestid.Middleware)
	a.Use(middleware.Recoverer)

	a.Get("/health", httpserver.HealthHandler(a.log, a.registryLoaded))
	if a.opts.Gatherer != nil {
		a.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(a.opts.Gatherer, promhttp.HandlerOpts{}))
	}

	a.Route("/v1", func(r chi.Router) {
		r.Post("/validate", a.PostValidate)
		r.Get("/rules", a.GetRules)
	})
}
