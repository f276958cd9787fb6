package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/metrics"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// APIPrefix is the alternate mount point for every API route.
const APIPrefix = "/api"

// Handlers bundles the endpoint handlers served by the API.
type Handlers struct {
	Categories       http.HandlerFunc
	Questions        http.HandlerFunc
	Question         http.HandlerFunc
	CategoryQuestion http.HandlerFunc
	Quizzes          http.HandlerFunc
}

// Dependency is a backing service checked by /readyz.
type Dependency struct {
	Name string
	Ping func(ctx context.Context) error
}

// Options carries everything the router needs beyond the handlers.
type Options struct {
	Metrics      *metrics.Metrics
	Gatherer     prometheus.Gatherer
	Dependencies []Dependency
}

// NewHTTPServer wires API routes plus health and metrics endpoints.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, handlers Handlers, opts Options) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewRouter(cfg.CORS, logger, handlers, opts),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// NewRouter builds the full middleware stacked handler.
func NewRouter(corsCfg config.CORS, logger zerolog.Logger, handlers Handlers, opts Options) http.Handler {
	mux := http.NewServeMux()
	r := &router{mux: mux, metrics: opts.Metrics}

	r.handle("/categories", handlers.Categories)
	r.handle("/categories/{id}/questions", handlers.CategoryQuestion)
	r.handle("/questions", handlers.Questions)
	r.handle("/questions/{id}", handlers.Question)
	r.handle("/quizzes", handlers.Quizzes)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		for _, dep := range opts.Dependencies {
			if err := dep.Ping(ctx); err != nil {
				logger.Error().Err(err).Str("dependency", dep.Name).Msg("dependency ping failed")
				http.Error(w, "upstream error", http.StatusServiceUnavailable)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	})

	if opts.Gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondNotFound(w)
	})

	var h http.Handler = mux
	h = recoverer(h)
	h = corsMiddleware(corsCfg)(h)
	h = requestLogger(logger)(h)
	return h
}

type router struct {
	mux     *http.ServeMux
	metrics *metrics.Metrics
}

// handle registers h at pattern and again under APIPrefix.
func (r *router) handle(pattern string, h http.HandlerFunc) {
	if h == nil {
		return
	}
	instrumented := instrument(r.metrics, pattern, h)
	r.mux.Handle(pattern, instrumented)
	r.mux.Handle(APIPrefix+pattern, instrumented)
}
