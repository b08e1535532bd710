package ratewall

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ratewall/ratewall/backends"
	"github.com/ratewall/ratewall/bucket"
	"github.com/ratewall/ratewall/internal/breaker"
	"github.com/ratewall/ratewall/metrics"
)

// Option is a functional option for configuring the service.
type Option func(*Service, *Config) error

// WithStorage injects a storage backend instance.
func WithStorage(storage backends.Backend) Option {
	return func(s *Service, _ *Config) error {
		if storage == nil {
			return fmt.Errorf("storage backend cannot be nil")
		}
		s.storage = storage
		return nil
	}
}

// WithBackend creates a storage backend by registered name. The adapter
// package must be imported for its side-effect registration.
func WithBackend(name string, config any) Option {
	return func(s *Service, _ *Config) error {
		storage, err := backends.Create(name, config)
		if err != nil {
			return fmt.Errorf("failed to create %s backend: %w", name, err)
		}
		s.storage = storage
		return nil
	}
}

// WithDefaultClass sets the bucket class for resources without an
// explicit class.
func WithDefaultClass(capacity, refillRate float64) Option {
	return func(_ *Service, cfg *Config) error {
		cfg.DefaultClass = bucket.Config{Capacity: capacity, RefillRate: refillRate}
		return nil
	}
}

// WithResourceClass sets the bucket class for one resource.
func WithResourceClass(resource string, capacity, refillRate float64) Option {
	return func(_ *Service, cfg *Config) error {
		if cfg.ResourceClasses == nil {
			cfg.ResourceClasses = make(map[string]bucket.Config)
		}
		cfg.ResourceClasses[resource] = bucket.Config{Capacity: capacity, RefillRate: refillRate}
		return nil
	}
}

// WithFailurePolicy selects fail-open or fail-closed behavior on storage
// trouble.
func WithFailurePolicy(policy FailurePolicy) Option {
	return func(_ *Service, cfg *Config) error {
		cfg.FailurePolicy = policy
		return nil
	}
}

// WithCheckTimeout sets the per-decision deadline applied when the caller
// provides none.
func WithCheckTimeout(timeout time.Duration) Option {
	return func(_ *Service, cfg *Config) error {
		cfg.CheckTimeout = timeout
		return nil
	}
}

// WithStateTTL sets the storage TTL refreshed on every write.
func WithStateTTL(ttl time.Duration) Option {
	return func(_ *Service, cfg *Config) error {
		cfg.StateTTL = ttl
		return nil
	}
}

// WithCASRetries bounds the compare-and-set loop.
func WithCASRetries(retries int) Option {
	return func(_ *Service, cfg *Config) error {
		cfg.CASRetries = retries
		return nil
	}
}

// WithBreaker tunes the storage circuit breaker.
func WithBreaker(config breaker.Config) Option {
	return func(_ *Service, cfg *Config) error {
		cfg.Breaker = config
		return nil
	}
}

// WithMetrics injects a metrics recorder.
func WithMetrics(recorder metrics.Recorder) Option {
	return func(s *Service, _ *Config) error {
		if recorder == nil {
			return fmt.Errorf("metrics recorder cannot be nil")
		}
		s.metrics = recorder
		return nil
	}
}

// WithAuditSink injects the audit pipeline.
func WithAuditSink(sink AuditSink) Option {
	return func(s *Service, _ *Config) error {
		if sink == nil {
			return fmt.Errorf("audit sink cannot be nil")
		}
		s.auditor = sink
		return nil
	}
}

// WithLogger injects a structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service, _ *Config) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		s.logger = logger
		return nil
	}
}
