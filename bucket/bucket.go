// Package bucket implements the token-bucket decision core. It is pure:
// no I/O, no clocks, no failures. Callers supply the current time in unix
// milliseconds and receive the decision together with the successor state.
package bucket

import (
	"fmt"
	"math"
)

// Config describes one bucket class.
type Config struct {
	// Capacity is the maximum burst size in tokens. Must be >= 1.
	Capacity float64

	// RefillRate is the continuous refill speed in tokens per second.
	// Must be > 0. Fractional tokens accumulate internally.
	RefillRate float64
}

// Validate checks the config invariants.
func (c Config) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("bucket capacity must be >= 1, got %g", c.Capacity)
	}
	if c.RefillRate <= 0 || math.IsInf(c.RefillRate, 0) || math.IsNaN(c.RefillRate) {
		return fmt.Errorf("bucket refill rate must be a positive finite number, got %g", c.RefillRate)
	}
	return nil
}

// Limit returns the integer request limit advertised to clients.
func (c Config) Limit() int {
	return int(math.Floor(c.Capacity))
}

// State is the per-key bucket state shared through storage.
type State struct {
	// Tokens currently available, in [0, capacity].
	Tokens float64

	// LastRefill is the unix-millis timestamp of the last refill
	// observation. It never moves backward.
	LastRefill int64
}

// NewState returns the lazily-created state for a key seen for the first
// time: a full bucket observed at now.
func NewState(cfg Config, now int64) State {
	return State{Tokens: cfg.Capacity, LastRefill: now}
}

// Decision is the outcome of a single check.
type Decision struct {
	Allowed    bool
	Remaining  int   // floor of tokens left after the decision
	Limit      int   // floor(capacity)
	ResetAt    int64 // unix seconds when the bucket would be full again
	RetryAfter int   // seconds until the request could succeed; 0 if allowed
}

// Decide computes the decision and the successor state for one request of
// the given cost at time now (unix millis).
//
// Clock regressions (now < prior.LastRefill) clamp elapsed time to zero;
// LastRefill is never pushed backward. Panics on an invalid config, which
// is a programming error: configs are validated at load time.
func Decide(cfg Config, prior State, cost float64, now int64) (Decision, State) {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	effectiveNow := max(now, prior.LastRefill)
	elapsedSec := float64(effectiveNow-prior.LastRefill) / 1000.0

	refilled := math.Min(cfg.Capacity, prior.Tokens+elapsedSec*cfg.RefillRate)

	var d Decision
	var next State
	d.Limit = cfg.Limit()

	if refilled >= cost {
		next = State{Tokens: refilled - cost, LastRefill: effectiveNow}
		d.Allowed = true
		d.Remaining = max(int(math.Floor(next.Tokens)), 0)
	} else {
		next = State{Tokens: refilled, LastRefill: effectiveNow}
		d.Allowed = false
		d.Remaining = 0
		d.RetryAfter = clampSeconds(math.Ceil((cost - refilled) / cfg.RefillRate))
	}

	d.ResetAt = resetAt(cfg, next, effectiveNow)
	return d, next
}

// maxWaitSeconds bounds the wait values reported to clients. A huge cost
// against a slow bucket yields a wait beyond any retry horizon; reporting
// it saturated keeps the arithmetic inside int range on every platform.
const maxWaitSeconds = math.MaxInt32

// clampSeconds converts a non-negative float second count to int,
// saturating instead of overflowing.
func clampSeconds(seconds float64) int {
	if seconds > maxWaitSeconds {
		return maxWaitSeconds
	}
	return int(seconds)
}

// resetAt computes the unix-seconds instant at which the bucket would be
// full, given the successor state.
func resetAt(cfg Config, next State, now int64) int64 {
	if next.Tokens >= cfg.Capacity {
		return now / 1000
	}
	refillMillis := (cfg.Capacity - next.Tokens) / cfg.RefillRate * 1000.0
	if refillMillis > maxWaitSeconds*1000.0 {
		refillMillis = maxWaitSeconds * 1000.0
	}
	return (now + int64(refillMillis)) / 1000
}
