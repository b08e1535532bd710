package ratewall

import (
	"fmt"
	"time"

	"github.com/ratewall/ratewall/bucket"
	"github.com/ratewall/ratewall/internal/breaker"
)

// FailurePolicy decides what a check returns when storage is unavailable
// (transient errors, deadline expiry, CAS exhaustion).
type FailurePolicy string

const (
	// FailOpen admits the request with a full remaining quota. The
	// default: rate limiting is a soft guard and availability wins.
	FailOpen FailurePolicy = "open"

	// FailClosed denies the request with retryAfter = 1.
	FailClosed FailurePolicy = "closed"
)

const (
	// DefaultCapacity and DefaultRefillRate describe the global default
	// bucket class: 100 requests per minute of burstable quota.
	DefaultCapacity   = 100.0
	DefaultRefillRate = 100.0 / 60.0

	// DefaultStateTTL is how long an idle bucket survives in storage.
	DefaultStateTTL = time.Hour

	// DefaultCheckTimeout bounds a single decision end to end.
	DefaultCheckTimeout = 100 * time.Millisecond

	// DefaultCASRetries bounds the read-decide-write loop under
	// contention.
	DefaultCASRetries = 3
)

// Config holds the assembled service configuration.
type Config struct {
	// DefaultClass applies to resources without an explicit class.
	// Unknown resources are limited, not rejected: an unconfigured
	// resource must not turn into an outage.
	DefaultClass bucket.Config

	// ResourceClasses maps a resource identifier to its bucket class.
	ResourceClasses map[string]bucket.Config

	// FailurePolicy selects fail-open or fail-closed behavior.
	FailurePolicy FailurePolicy

	// CheckTimeout is applied when the caller's context carries no
	// earlier deadline.
	CheckTimeout time.Duration

	// StateTTL is the storage TTL refreshed on every write.
	StateTTL time.Duration

	// CASRetries bounds compare-and-set attempts per decision.
	CASRetries int

	// Breaker tunes the storage circuit breaker.
	Breaker breaker.Config
}

// Validate checks the configuration invariants.
func (c Config) Validate() error {
	if err := c.DefaultClass.Validate(); err != nil {
		return fmt.Errorf("default class: %w", err)
	}
	for resource, class := range c.ResourceClasses {
		if err := class.Validate(); err != nil {
			return fmt.Errorf("resource class %q: %w", resource, err)
		}
	}
	switch c.FailurePolicy {
	case FailOpen, FailClosed:
	default:
		return fmt.Errorf("failure policy must be %q or %q, got %q", FailOpen, FailClosed, c.FailurePolicy)
	}
	if c.CheckTimeout <= 0 {
		return fmt.Errorf("check timeout must be positive, got %v", c.CheckTimeout)
	}
	if c.StateTTL <= 0 {
		return fmt.Errorf("state TTL must be positive, got %v", c.StateTTL)
	}
	if c.CASRetries < 1 {
		return fmt.Errorf("CAS retries must be at least 1, got %d", c.CASRetries)
	}
	return nil
}

// classFor resolves the bucket class for a resource.
func (c Config) classFor(resource string) bucket.Config {
	if class, ok := c.ResourceClasses[resource]; ok {
		return class
	}
	return c.DefaultClass
}

func defaultConfig() Config {
	return Config{
		DefaultClass: bucket.Config{
			Capacity:   DefaultCapacity,
			RefillRate: DefaultRefillRate,
		},
		FailurePolicy: FailOpen,
		CheckTimeout:  DefaultCheckTimeout,
		StateTTL:      DefaultStateTTL,
		CASRetries:    DefaultCASRetries,
	}
}
