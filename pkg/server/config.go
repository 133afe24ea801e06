package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/htmlify/pkg/markup"
)

// ServerConfig holds preview server configuration.
type ServerConfig struct {
	// Address is the listen address.
	// Default: "localhost:3000".
	Address string

	// Title is the page title of GET /.
	Title string

	// Format is the default layout for POST /render.
	Format markup.Format

	// Sanitize passes text through the UGC policy by default.
	Sanitize bool

	// MaxBodySize limits request bodies of /render and /document.
	// Default: 1MB.
	MaxBodySize int64

	// CheckOrigin validates WebSocket origins. Default allows all.
	CheckOrigin func(r *http.Request) bool

	// Registerer receives the server's collectors and Gatherer backs
	// /metrics. Both default to the Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer

	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration

	// ShutdownTimeout bounds graceful shutdown in Run.
	// Default: 10 seconds.
	ShutdownTimeout time.Duration
}

// DefaultServerConfig returns a ServerConfig with sensible defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:           "localhost:3000",
		Title:             "htmlify preview",
		Format:            markup.FormatCompat,
		MaxBodySize:       1 << 20,
		CheckOrigin:       func(r *http.Request) bool { return true },
		Registerer:        prometheus.DefaultRegisterer,
		Gatherer:          prometheus.DefaultGatherer,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       2 * time.Minute,
		ShutdownTimeout:   10 * time.Second,
	}
}

// fill copies defaults into unset fields.
func (c *ServerConfig) fill() {
	defaults := DefaultServerConfig()
	if c.Address == "" {
		c.Address = defaults.Address
	}
	if c.Title == "" {
		c.Title = defaults.Title
	}
	if c.MaxBodySize <= 0 {
		c.MaxBodySize = defaults.MaxBodySize
	}
	if c.CheckOrigin == nil {
		c.CheckOrigin = defaults.CheckOrigin
	}
	if c.Registerer == nil {
		c.Registerer = defaults.Registerer
	}
	if c.Gatherer == nil {
		c.Gatherer = defaults.Gatherer
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = defaults.ReadHeaderTimeout
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = defaults.ReadTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = defaults.IdleTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = defaults.ShutdownTimeout
	}
}
