package backends

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnhealthy is a sentinel used to signal that the backend is
// unavailable. Errors matching it are transient: the rate-limit service
// applies its fail-open/fail-closed policy instead of propagating them.
var ErrUnhealthy = errors.New("backend unhealthy")

// HealthError wraps an underlying cause with operation context. Use it
// for connectivity, timeout and availability issues only; malformed
// values and bad commands must not trigger the failure policy.
type HealthError struct {
	Op    string // logical operation context, e.g. "redis:Get", "postgres:Ping"
	Cause error  // underlying error returned by the driver/client
}

func (e *HealthError) Error() string {
	if e == nil {
		return ErrUnhealthy.Error()
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %v", ErrUnhealthy, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %v", ErrUnhealthy, e.Cause)
}

// Unwrap returns the underlying cause, enabling errors.Is/As chaining.
func (e *HealthError) Unwrap() error { return e.Cause }

// Is matches the ErrUnhealthy sentinel.
func (e *HealthError) Is(target error) bool {
	return target == ErrUnhealthy
}

// NewHealthError wraps a cause as a health error with operation context.
func NewHealthError(op string, cause error) error {
	if cause == nil {
		return ErrUnhealthy
	}
	return &HealthError{Op: op, Cause: cause}
}

// IsHealthError reports whether err indicates the backend is unavailable.
func IsHealthError(err error) bool {
	if errors.Is(err, ErrUnhealthy) {
		return true
	}
	var he *HealthError
	return errors.As(err, &he)
}

// MaybeConnError classifies err as a health error when its message matches
// one of the lowercase patterns, or when it is a context cancellation or
// deadline error. Otherwise the original error is returned unchanged.
func MaybeConnError(op string, err error, patterns []string) error {
	if err == nil {
		return nil
	}

	if patterns != nil {
		errStr := strings.ToLower(err.Error())
		for _, pattern := range patterns {
			if strings.Contains(errStr, pattern) {
				return NewHealthError(op, err)
			}
		}
	}

	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return NewHealthError(op, err)
	}

	return err
}
