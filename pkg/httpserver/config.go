package httpserver

import "time"

// Config is loaded from the environment. Tags carry no prefix; callers
// choose one with config.WithPrefix (the serve command uses "URANUS_HTTP_").
type Config struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// NewFromConfig creates a Server from cfg. Zero values keep the package
// defaults; opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	configOpts := make([]Option, 0, 5+len(opts))

	if cfg.Addr != "" {
		configOpts = append(configOpts, WithAddr(cfg.Addr))
	}
	if cfg.ReadTimeout > 0 {
		configOpts = append(configOpts, WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.WriteTimeout > 0 {
		configOpts = append(configOpts, WithWriteTimeout(cfg.WriteTimeout))
	}
	if cfg.IdleTimeout > 0 {
		configOpts = append(configOpts, WithIdleTimeout(cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		configOpts = append(configOpts, WithShutdownTimeout(cfg.ShutdownTimeout))
	}

	return New(append(configOpts, opts...)...)
}
