// Package breaker provides a lock-free three-state circuit breaker. The
// rate-limit service wraps its storage calls with it: when storage keeps
// failing, the breaker opens and the service applies its fail-open or
// fail-closed policy immediately instead of waiting on a dead backend.
package breaker

import (
	"sync/atomic"
	"time"
)

// State represents the circuit breaker state.
type State int32

const (
	StateClosed State = iota
	StateHalfOpen
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateHalfOpen:
		return "half-open"
	case StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Config holds circuit breaker tuning.
type Config struct {
	FailureThreshold int32         // consecutive failures before tripping
	RecoveryTimeout  time.Duration // time to wait before probing again
}

// Breaker implements the circuit breaker with atomic operations only; it
// is safe for concurrent use on the request path.
type Breaker struct {
	config       Config // read-only after construction
	state        int32  // atomic, holds a State value
	failureCount int32  // atomic consecutive-failure counter
	openedAt     int64  // atomic, nanoseconds since the Unix epoch
}

// New creates a circuit breaker. Zero-value config fields get defaults
// (5 failures, 1s recovery).
func New(config Config) *Breaker {
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = 5
	}
	if config.RecoveryTimeout <= 0 {
		config.RecoveryTimeout = time.Second
	}
	return &Breaker{
		config: config,
		state:  int32(StateClosed),
	}
}

// RecordFailure counts a failure and trips the breaker once the threshold
// is reached. Returns true if the breaker is now open.
func (cb *Breaker) RecordFailure() bool {
	newCount := atomic.AddInt32(&cb.failureCount, 1)
	if newCount >= cb.config.FailureThreshold {
		cb.open()
		return true
	}
	return false
}

// RecordSuccess resets the breaker to closed.
func (cb *Breaker) RecordSuccess() {
	atomic.StoreInt32(&cb.state, int32(StateClosed))
	atomic.StoreInt32(&cb.failureCount, 0)
}

// Allow reports whether a call may proceed. While open it returns false
// until the recovery timeout elapses, then lets exactly one caller through
// in half-open state to probe the backend.
func (cb *Breaker) Allow() bool {
	switch State(atomic.LoadInt32(&cb.state)) {
	case StateOpen:
		openedAtNano := atomic.LoadInt64(&cb.openedAt)
		if time.Since(time.Unix(0, openedAtNano)) >= cb.config.RecoveryTimeout {
			// Transition to half-open; only the winning CAS probes.
			return atomic.CompareAndSwapInt32(&cb.state, int32(StateOpen), int32(StateHalfOpen))
		}
		return false
	default: // closed or half-open
		return true
	}
}

// GetState returns the current state.
func (cb *Breaker) GetState() State {
	return State(atomic.LoadInt32(&cb.state))
}

func (cb *Breaker) open() {
	atomic.StoreInt32(&cb.state, int32(StateOpen))
	atomic.StoreInt64(&cb.openedAt, time.Now().UnixNano())
}
