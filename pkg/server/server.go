package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/htmlify/pkg/markup"
	"github.com/vango-dev/htmlify/pkg/middleware"
	"github.com/vango-dev/htmlify/pkg/rawhtml"
	"github.com/vango-dev/htmlify/pkg/render"
	"github.com/vango-dev/htmlify/pkg/vdom"
)

// Server is the preview server.
type Server struct {
	config   *ServerConfig
	router   chi.Router
	metrics  *middleware.Metrics
	live     *LiveHub
	renderer *render.Renderer
	logger   *slog.Logger

	mu       sync.RWMutex
	document markup.Node
	html     string

	// updateMu orders replacements with their broadcasts.
	updateMu sync.Mutex

	httpServer *http.Server
}

// New creates a Server serving doc, which may be nil.
func New(config *ServerConfig, doc markup.Node) *Server {
	if config == nil {
		config = DefaultServerConfig()
	}
	config.fill()

	logger := slog.Default().With("component", "server")

	s := &Server{
		config:   config,
		metrics:  middleware.NewMetrics(middleware.WithRegistry(config.Registerer)),
		renderer: render.NewRenderer(render.RendererConfig{}),
		logger:   logger,
	}
	s.live = NewLiveHub(config.CheckOrigin, s.DocumentHTML, s.metrics, logger)
	if _, err := s.setDocument(doc); err != nil {
		logger.Error("initial document render failed, serving empty document", "error", err)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.OpenTelemetry(
		middleware.WithRequestFilter(func(r *http.Request) bool {
			return r.URL.Path != "/healthz" && r.URL.Path != "/metrics"
		}),
	))
	r.Use(s.metrics.Handler)

	r.Get("/", s.handlePage)
	r.Post("/render", s.handleRender)
	r.Put("/document", s.handlePutDocument)
	r.Get("/document", s.handleGetDocument)
	r.Get("/live", s.live.HandleWebSocket)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.config.Gatherer, promhttp.HandlerOpts{}))
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Document returns the current document.
func (s *Server) Document() markup.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.document
}

// DocumentHTML returns the current document as rendered inside the page.
func (s *Server) DocumentHTML() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.html
}

// SetDocument replaces the current document and pushes it to live clients.
func (s *Server) SetDocument(doc markup.Node) error {
	s.updateMu.Lock()
	defer s.updateMu.Unlock()

	html, err := s.setDocument(doc)
	if err != nil {
		return err
	}
	s.live.Broadcast(html)
	return nil
}

func (s *Server) setDocument(doc markup.Node) (string, error) {
	var html string
	if doc != nil {
		props, err := rawhtml.RenderProps(doc)
		if err != nil {
			return "", err
		}
		html, err = s.renderer.RenderToString(vdom.Mount(rawhtml.New(props)))
		if err != nil {
			return "", err
		}
	}

	s.mu.Lock()
	s.document = doc
	s.html = html
	s.mu.Unlock()
	return html, nil
}

// Live returns the live hub.
func (s *Server) Live() *LiveHub {
	return s.live
}

// Config returns the server configuration.
func (s *Server) Config() *ServerConfig {
	return s.config
}

// Logger returns the server's logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}

// SetLogger sets the server's logger.
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Run listens on the configured address and serves until ctx is done, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		ReadTimeout:       s.config.ReadTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes live connections and gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.live.Close()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}
