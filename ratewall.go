// Package ratewall implements the distributed rate-limit service: a
// token-bucket decision per (clientId, resource) pair, with bucket state
// shared across replicas through a storage backend under compare-and-set
// discipline, synchronous metrics, and asynchronous audit fan-out.
package ratewall

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ratewall/ratewall/audit"
	"github.com/ratewall/ratewall/backends"
	"github.com/ratewall/ratewall/bucket"
	"github.com/ratewall/ratewall/internal/breaker"
	"github.com/ratewall/ratewall/metrics"
	"github.com/ratewall/ratewall/utils/builderpool"
)

// ErrConcurrentAccess is returned internally when the compare-and-set
// loop exhausts its retries; the failure policy absorbs it.
var ErrConcurrentAccess = errors.New("concurrent access retries exhausted")

// Request is a single rate-limit check.
type Request struct {
	ClientID string
	Resource string
	Cost     float64
}

// AuditSink receives audit events without blocking; *audit.Queue
// implements it.
type AuditSink interface {
	Enqueue(event audit.Event)
}

// nopSink drops events; used when no audit pipeline is wired.
type nopSink struct{}

func (nopSink) Enqueue(audit.Event) {}

// Service orchestrates one decision: storage read, pure decide,
// conditional write, metrics, audit.
type Service struct {
	config  Config
	storage backends.Backend
	metrics metrics.Recorder
	auditor AuditSink
	logger  *zap.Logger
	brk     *breaker.Breaker

	// now returns the current time in unix millis; replaceable in tests.
	now func() int64
}

// New creates a service with functional options. A storage backend is
// required; everything else has defaults.
func New(opts ...Option) (*Service, error) {
	cfg := defaultConfig()

	s := &Service{
		metrics: metrics.Nop{},
		auditor: nopSink{},
		logger:  zap.NewNop(),
		now:     func() int64 { return time.Now().UnixMilli() },
	}

	for _, opt := range opts {
		if err := opt(s, &cfg); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if s.storage == nil {
		return nil, fmt.Errorf("storage backend cannot be nil")
	}

	s.config = cfg
	s.brk = breaker.New(cfg.Breaker)
	return s, nil
}

// Check runs the full decision protocol for one request.
//
// Validation errors return before any I/O. Storage trouble (transient
// errors, deadline expiry, CAS exhaustion, open breaker) never escapes:
// the configured failure policy turns it into a decision, counted under
// status="timeout". Audit is emitted for every decision, including
// policy-derived ones.
func (s *Service) Check(ctx context.Context, req Request) (bucket.Decision, error) {
	if err := validateRequest(req); err != nil {
		return bucket.Decision{}, err
	}

	cfg := s.config.classFor(req.Resource)
	key := composeKey(req.ClientID, req.Resource)

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.CheckTimeout)
		defer cancel()
	}

	if !s.brk.Allow() {
		return s.failDecision(req, cfg, errors.New("storage circuit open")), nil
	}

	decision, err := s.tryCheck(ctx, cfg, key, req.Cost)
	if err != nil {
		s.brk.RecordFailure()
		return s.failDecision(req, cfg, err), nil
	}
	s.brk.RecordSuccess()

	status := metrics.StatusBlocked
	if decision.Allowed {
		status = metrics.StatusAllowed
	}
	s.metrics.IncCheck(req.ClientID, status)
	s.emitAudit(req, decision.Allowed, decision.Remaining)

	return decision, nil
}

// Quota reports the current quota without consuming it: a zero-cost
// check. The refreshed state is written back so the refill is durable.
func (s *Service) Quota(ctx context.Context, clientID, resource string) (bucket.Decision, error) {
	return s.Check(ctx, Request{ClientID: clientID, Resource: resource, Cost: 0})
}

// Close releases the storage backend. The audit queue is owned by the
// caller that wired it and is closed separately.
func (s *Service) Close() error {
	if s.storage != nil {
		return s.storage.Close()
	}
	return nil
}

// tryCheck is the bounded read-decide-write loop. A CAS conflict means
// another replica moved the bucket first; re-read and decide again.
func (s *Service) tryCheck(ctx context.Context, cfg bucket.Config, key string, cost float64) (bucket.Decision, error) {
	for attempt := 0; attempt < s.config.CASRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return bucket.Decision{}, backends.NewHealthError("check", err)
		}

		now := s.now()

		raw, err := s.storage.Get(ctx, key)
		if err != nil {
			return bucket.Decision{}, err
		}

		var prior bucket.State
		if raw == "" {
			prior = bucket.NewState(cfg, now)
		} else if decoded, ok := bucket.DecodeState(raw); ok {
			prior = decoded
		} else {
			// Malformed stored value: treat the key as absent; the
			// CAS below repairs the record.
			s.logger.Error("malformed bucket state in storage",
				zap.String("key", key),
				zap.String("value", raw))
			prior = bucket.NewState(cfg, now)
		}

		decision, next := bucket.Decide(cfg, prior, cost, now)

		applied, err := s.storage.CheckAndSet(ctx, key, raw, bucket.EncodeState(next), s.config.StateTTL)
		if err != nil {
			return bucket.Decision{}, err
		}
		if applied {
			return decision, nil
		}

		s.metrics.IncCASRetry()
		if attempt < s.config.CASRetries-1 {
			time.Sleep((19 * time.Nanosecond) << time.Duration(attempt))
		}
	}

	return bucket.Decision{}, ErrConcurrentAccess
}

// failDecision applies the failure policy and emits the timeout counter
// and the audit event for the synthesized decision.
func (s *Service) failDecision(req Request, cfg bucket.Config, cause error) bucket.Decision {
	policy := s.config.FailurePolicy

	s.logger.Warn("storage unavailable, applying failure policy",
		zap.String("client_id", req.ClientID),
		zap.String("resource", req.Resource),
		zap.String("policy", string(policy)),
		zap.Error(cause))
	s.metrics.IncCheck(req.ClientID, metrics.StatusTimeout)

	limit := cfg.Limit()
	var decision bucket.Decision
	if policy == FailOpen {
		decision = bucket.Decision{
			Allowed:   true,
			Remaining: limit,
			Limit:     limit,
			ResetAt:   s.now() / 1000,
		}
	} else {
		decision = bucket.Decision{
			Allowed:    false,
			Remaining:  0,
			Limit:      limit,
			ResetAt:    s.now() / 1000,
			RetryAfter: 1,
		}
	}

	s.emitAudit(req, decision.Allowed, decision.Remaining)
	return decision
}

func (s *Service) emitAudit(req Request, allowed bool, remaining int) {
	s.auditor.Enqueue(audit.Event{
		EventID:   uuid.NewString(),
		Timestamp: s.now(),
		ClientID:  req.ClientID,
		Resource:  req.Resource,
		Allowed:   allowed,
		Remaining: remaining,
	})
}

// composeKey builds the storage key "<clientId>:<resource>". Identifier
// validation guarantees neither part contains the separator.
func composeKey(clientID, resource string) string {
	sb := builderpool.Get()
	defer builderpool.Put(sb)

	sb.Grow(len(clientID) + 1 + len(resource))
	sb.WriteString(clientID)
	sb.WriteByte(':')
	sb.WriteString(resource)
	return sb.String()
}
