// Package audit defines the per-decision audit event, the publisher port,
// and the bounded asynchronous fan-out queue that keeps publication off
// the decision path.
package audit

import (
	"context"
	"encoding/json"
	"time"
)

// Topic is the audit event destination.
const Topic = "rate-limit.audit"

// Event records a single rate-limit decision. Created once per decision;
// immutable. Consumers dedupe by EventID (delivery is at-least-once).
type Event struct {
	EventID   string `json:"eventId"`
	Timestamp int64  `json:"timestamp"` // unix millis
	ClientID  string `json:"clientId"`
	Resource  string `json:"resource"`
	Allowed   bool   `json:"allowed"`
	Remaining int    `json:"remaining"`
}

// Marshal encodes the event as the wire JSON.
func (e Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher is the port to the durable bus. Publish must be keyed by
// ClientID so events for one client stay ordered at the consumer.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// QueueStats reports queue counters, primarily for metrics adapters.
type QueueStats struct {
	Published int64
	Dropped   int64
	Failures  int64
}

// queueObserver receives counter callbacks; satisfied by the metrics
// recorder.
type queueObserver interface {
	IncAuditPublished()
	IncAuditDropped()
	IncAuditFailure()
}

// nopObserver is used when no metrics recorder is wired.
type nopObserver struct{}

func (nopObserver) IncAuditPublished() {}
func (nopObserver) IncAuditDropped()   {}
func (nopObserver) IncAuditFailure()   {}

// retryBackoff returns the sleep before retry attempt n (0-based).
func retryBackoff(attempt int) time.Duration {
	return time.Duration(50<<attempt) * time.Millisecond
}
