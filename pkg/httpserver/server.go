package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/formrequest/pkg/logger"
)

// Closer releases a resource once the listener has stopped accepting
// requests. Closers run in reverse registration order.
type Closer struct {
	Name string
	Fn   func(context.Context) error
}

type config struct {
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	server          *http.Server
	logger          *slog.Logger
	closers         []Closer
}

func defaultConfig() *config {
	return &config{
		addr:            ":8080",
		shutdownTimeout: 5 * time.Second,
	}
}

// Server runs the form request handlers behind http.Server and drains the
// registered closers on shutdown.
type Server struct {
	cfg  *config
	log  *slog.Logger
	srv  *http.Server
	once sync.Once
	mu   sync.Mutex
}

// New returns a configured Server.
func New(opts ...Option) *Server {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Server{
		cfg: cfg,
		log: logger.OrDefault(cfg.logger).With(logger.Component("httpserver")),
	}
}

// Run listens until ctx is cancelled, SIGINT/SIGTERM arrives or the listener
// fails. Listener failures are wrapped with ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	srv, err := s.prepare(handler)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.log.InfoContext(ctx, "server started", slog.String("addr", srv.Addr))

	var runErr error
	select {
	case <-ctx.Done():
		if err := s.Shutdown(context.WithoutCancel(ctx)); err != nil {
			s.log.ErrorContext(ctx, "shutdown failed", logger.Error(err))
		}
		runErr = <-errCh
	case runErr = <-errCh:
		s.close(context.WithoutCancel(ctx))
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, runErr)
	}
	return nil
}

func (s *Server) prepare(handler http.Handler) (*http.Server, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv != nil {
		return nil, errors.Join(ErrStart, ErrAlreadyRunning)
	}

	srv := s.cfg.server
	if srv == nil {
		srv = &http.Server{}
	}
	if srv.Addr == "" {
		srv.Addr = s.cfg.addr
	}
	if srv.ReadTimeout == 0 {
		srv.ReadTimeout = s.cfg.readTimeout
	}
	if srv.WriteTimeout == 0 {
		srv.WriteTimeout = s.cfg.writeTimeout
	}
	if srv.IdleTimeout == 0 {
		srv.IdleTimeout = s.cfg.idleTimeout
	}
	if srv.ErrorLog == nil {
		srv.ErrorLog = slog.NewLogLogger(s.log.Handler(), slog.LevelWarn)
	}
	srv.Handler = handler
	s.srv = srv
	return srv, nil
}

// Shutdown stops accepting requests, waits for in-flight ones within the
// shutdown timeout and then runs the closers. Repeated calls are no-ops.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.once.Do(func() {
		s.mu.Lock()
		srv := s.srv
		s.mu.Unlock()
		if srv == nil {
			return
		}

		ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
		defer cancel()

		if shutdownErr := srv.Shutdown(ctx); shutdownErr != nil && !errors.Is(shutdownErr, http.ErrServerClosed) {
			err = errors.Join(ErrShutdown, shutdownErr)
		}
		s.runClosers(ctx)
		s.log.InfoContext(ctx, "server stopped")
	})
	return err
}

// close runs the closers when the listener exited on its own.
func (s *Server) close(ctx context.Context) {
	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
		defer cancel()
		s.runClosers(ctx)
	})
}

func (s *Server) runClosers(ctx context.Context) {
	for i := len(s.cfg.closers) - 1; i >= 0; i-- {
		c := s.cfg.closers[i]
		if err := c.Fn(ctx); err != nil {
			s.log.ErrorContext(ctx, "closer failed",
				slog.String("closer", c.Name),
				logger.Error(err),
			)
		}
	}
}
