package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Option configures the HTTP server.
type Option func(*config)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("WithAddr: addr cannot be empty")
	}
	return func(c *config) { c.addr = addr }
}

// WithTimeouts sets the read, write and idle timeouts. Zero keeps the
// net/http behaviour for that timeout.
func WithTimeouts(read, write, idle time.Duration) Option {
	if read < 0 || write < 0 || idle < 0 {
		panic("WithTimeouts: durations must be >= 0")
	}
	return func(c *config) {
		c.readTimeout = read
		c.writeTimeout = write
		c.idleTimeout = idle
	}
}

// WithShutdownTimeout bounds graceful shutdown including the closers.
func WithShutdownTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithShutdownTimeout: duration must be > 0")
	}
	return func(c *config) { c.shutdownTimeout = d }
}

// WithServer uses srv instead of a zero http.Server. Fields already set on
// srv win over the options.
func WithServer(srv *http.Server) Option {
	if srv == nil {
		panic("WithServer: nil server")
	}
	return func(c *config) { c.server = srv }
}

// WithLogger sets the server logger. Nil falls back to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithCloser registers fn to run after the listener stops, e.g. flushing the
// parameter log sink or closing the database pool.
func WithCloser(name string, fn func(context.Context) error) Option {
	if fn == nil {
		panic("WithCloser: nil func")
	}
	return func(c *config) {
		c.closers = append(c.closers, Closer{Name: name, Fn: fn})
	}
}
