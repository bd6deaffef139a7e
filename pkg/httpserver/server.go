package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/uranus/pkg/logger"
)

type config struct {
	addr            string
	listener        net.Listener
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	server          *http.Server
	logger          *slog.Logger
	startHooks      []func(*slog.Logger)
	stopHooks       []func(*slog.Logger)
}

func defaultConfig() *config {
	return &config{
		addr:            ":8080",
		shutdownTimeout: 5 * time.Second,
	}
}

// Server wraps http.Server with graceful shutdown and logging.
type Server struct {
	cfg  *config
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
	if cfg.logger == nil {
		cfg.logger = logger.Discard()
	}
	cfg.logger = cfg.logger.With(logger.Component("httpserver"))
	return &Server{cfg: cfg}
}

// Run starts serving handler and blocks until ctx is cancelled, an
// interrupt or SIGTERM arrives, or Shutdown is called.
// Listen failures are wrapped with ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, errors.New("server already running"))
	}

	cfg := s.cfg
	srv := cfg.server
	if srv == nil {
		srv = &http.Server{}
	}
	if srv.Addr == "" {
		srv.Addr = cfg.addr
	}
	if srv.ReadTimeout == 0 && cfg.readTimeout != 0 {
		srv.ReadTimeout = cfg.readTimeout
	}
	if srv.WriteTimeout == 0 && cfg.writeTimeout != 0 {
		srv.WriteTimeout = cfg.writeTimeout
	}
	if srv.IdleTimeout == 0 && cfg.idleTimeout != 0 {
		srv.IdleTimeout = cfg.idleTimeout
	}
	srv.Handler = handler
	srv.ErrorLog = slog.NewLogLogger(cfg.logger.Handler(), slog.LevelError)

	ln := cfg.listener
	if ln == nil {
		var err error
		if ln, err = net.Listen("tcp", srv.Addr); err != nil {
			s.mu.Unlock()
			return errors.Join(ErrStart, err)
		}
	}
	s.srv = srv
	s.mu.Unlock()

	cfg.logger.Info("http server listening", slog.String("addr", ln.Addr().String()))
	for _, h := range cfg.startHooks {
		h(cfg.logger)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case <-ctx.Done():
		runErr = s.shutdownAndWait(errCh)
	case sig := <-stop:
		cfg.logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		runErr = s.shutdownAndWait(errCh)
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, runErr)
	}
	return nil
}

func (s *Server) shutdownAndWait(errCh <-chan error) error {
	if err := s.Shutdown(context.Background()); err != nil {
		s.cfg.logger.Error("graceful shutdown failed", logger.Error(err))
	}
	return <-errCh
}

// Shutdown stops the server gracefully before Run returns.
// It is safe for repeated calls.
// Any error from http.Server.Shutdown is wrapped with ErrShutdown.
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
		err = srv.Shutdown(ctx)

		s.cfg.logger.Info("http server stopped")
		for _, h := range s.cfg.stopHooks {
			h(s.cfg.logger)
		}
	})

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
