// Package metrics implements the Prometheus metrics adapter. The check
// counter is labeled by client id and decision status; because client ids
// are caller-controlled, the adapter caps label cardinality by hashing
// overflow clients into a fixed set of buckets.
package metrics

import (
	"hash/fnv"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	StatusAllowed = "allowed"
	StatusBlocked = "blocked"
	StatusTimeout = "timeout"

	defaultMaxClientLabels = 1000
	overflowBuckets        = 64
)

// Recorder is the metrics port used by the service. Implementations must
// be constant-time and non-blocking.
type Recorder interface {
	IncCheck(clientID, status string)
	IncCASRetry()
	IncAuditPublished()
	IncAuditDropped()
	IncAuditFailure()
}

// Prometheus implements Recorder on a prometheus registry.
type Prometheus struct {
	checks      *prometheus.CounterVec
	casRetries  prometheus.Counter
	auditPub    prometheus.Counter
	auditDrop   prometheus.Counter
	auditFail   prometheus.Counter
	maxClients  int
	clientCount atomic.Int64
	clients     sync.Map // set of client ids already admitted as labels
}

// NewPrometheus registers the ratewall collectors on reg. maxClientLabels
// bounds the number of distinct client_id label values; 0 uses the
// default (1000).
func NewPrometheus(reg prometheus.Registerer, maxClientLabels int) *Prometheus {
	if maxClientLabels <= 0 {
		maxClientLabels = defaultMaxClientLabels
	}

	p := &Prometheus{
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rate_limit_checks_total",
			Help: "Rate limit decisions by client and status.",
		}, []string{"client_id", "status"}),
		casRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rate_limit_cas_retries_total",
			Help: "Compare-and-set conflicts that forced a re-read.",
		}),
		auditPub: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audit_events_published_total",
			Help: "Audit events successfully published to the bus.",
		}),
		auditDrop: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audit_events_dropped_total",
			Help: "Audit events dropped due to queue back-pressure.",
		}),
		auditFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audit_publish_failures_total",
			Help: "Failed audit publish attempts (retries included).",
		}),
		maxClients: maxClientLabels,
	}

	reg.MustRegister(p.checks, p.casRetries, p.auditPub, p.auditDrop, p.auditFail)
	return p
}

// IncCheck counts one decision. Clients beyond the cardinality cap are
// folded into one of 64 hash buckets ("c~NN") instead of minting a new
// label value.
func (p *Prometheus) IncCheck(clientID, status string) {
	p.checks.WithLabelValues(p.clientLabel(clientID), status).Inc()
}

func (p *Prometheus) IncCASRetry()       { p.casRetries.Inc() }
func (p *Prometheus) IncAuditPublished() { p.auditPub.Inc() }
func (p *Prometheus) IncAuditDropped()   { p.auditDrop.Inc() }
func (p *Prometheus) IncAuditFailure()   { p.auditFail.Inc() }

func (p *Prometheus) clientLabel(clientID string) string {
	if _, known := p.clients.Load(clientID); known {
		return clientID
	}
	if p.clientCount.Load() < int64(p.maxClients) {
		if _, loaded := p.clients.LoadOrStore(clientID, struct{}{}); !loaded {
			p.clientCount.Add(1)
		}
		return clientID
	}
	return overflowLabel(clientID)
}

func overflowLabel(clientID string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(clientID))
	return "c~" + strconv.Itoa(int(h.Sum32()%overflowBuckets))
}

// Nop is a Recorder that does nothing; used in tests and as a default.
type Nop struct{}

func (Nop) IncCheck(clientID, status string) {}
func (Nop) IncCASRetry()                     {}
func (Nop) IncAuditPublished()               {}
func (Nop) IncAuditDropped()                 {}
func (Nop) IncAuditFailure()                 {}
