// Package server implements the texttree HTTP render service.
//
// # Routes
//
//	POST   /render              render the posted document
//	POST   /trees               save a document, returns its id
//	GET    /trees/{id}          fetch a saved document
//	GET    /trees/{id}/render   render a saved document
//	GET    /trees/{id}/dot      Graphviz output (?format=dot|svg|png)
//	DELETE /trees/{id}          delete a saved document
//	GET    /healthz             liveness probe
//
// Render endpoints read formatting from the query string: style
// (ascii|box), anchor (below|left), prefix and indent (true|false).
// Unset parameters fall back to the server defaults.
//
// Documents are JSON unless the request Content-Type names YAML.
// Errors are returned as {"error": "...", "code": "..."} with a status
// derived from the error code.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/texttree/pkg/cache"
	"github.com/matzehuels/texttree/pkg/format"
	"github.com/matzehuels/texttree/pkg/store"
)

// DefaultMaxBodyBytes bounds request documents.
const DefaultMaxBodyBytes = 1 << 20

// Config wires the server's dependencies. Nil fields get in-process defaults.
type Config struct {
	Store    store.Store
	Cache    cache.Cache
	Keyer    cache.Keyer
	Logger   *log.Logger
	Defaults *format.Formatting

	// MaxBodyBytes bounds request bodies. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

// Server serves the render API.
type Server struct {
	store    store.Store
	cache    cache.Cache
	keyer    cache.Keyer
	logger   *log.Logger
	defaults format.Formatting
	maxBody  int64
	router   chi.Router
}

// New builds a server and its routes.
func New(cfg Config) *Server {
	s := &Server{
		store:    cfg.Store,
		cache:    cfg.Cache,
		keyer:    cfg.Keyer,
		logger:   cfg.Logger,
		defaults: format.Default(),
		maxBody:  cfg.MaxBodyBytes,
	}
	if s.store == nil {
		s.store = store.NewMemoryStore()
	}
	if s.cache == nil {
		s.cache = cache.NewNullCache()
	}
	if s.keyer == nil {
		s.keyer = cache.NewDefaultKeyer()
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if cfg.Defaults != nil {
		s.defaults = *cfg.Defaults
	}
	if s.maxBody <= 0 {
		s.maxBody = DefaultMaxBodyBytes
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)
	r.Route("/trees", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Delete("/", s.handleDelete)
			r.Get("/render", s.handleRenderStored)
			r.Get("/dot", s.handleDot)
		})
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close releases the store and cache.
func (s *Server) Close() error {
	return stderrors.Join(s.store.Close(), s.cache.Close())
}
