package server

import (
	"time"
)

// Config holds server configuration with environment variable support.
type Config struct {
	// Addr is the listen address.
	Addr string `env:"STATICD_ADDR" envDefault:":8080"`

	// Timeouts
	ReadTimeout     time.Duration `env:"STATICD_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"STATICD_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"STATICD_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"STATICD_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// MaxHeaderBytes bounds request header size.
	MaxHeaderBytes int `env:"STATICD_MAX_HEADER_BYTES" envDefault:"1048576"`
}

// NewFromConfig creates a Server from configuration. Options override
// config values.
func NewFromConfig(cfg Config, opts ...Option) (*Server, error) {
	if cfg.Addr == "" {
		return nil, ErrMissingAddress
	}

	configOpts := make([]Option, 0, len(opts)+5)
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
	if cfg.MaxHeaderBytes > 0 {
		configOpts = append(configOpts, WithMaxHeaderBytes(cfg.MaxHeaderBytes))
	}
	configOpts = append(configOpts, opts...)

	return New(cfg.Addr, configOpts...), nil
}
