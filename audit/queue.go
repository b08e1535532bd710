package audit

import (
	"context"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const (
	defaultQueueSize      = 1024
	defaultWorkers        = 2
	defaultMaxAttempts    = 3
	defaultPublishTimeout = 5 * time.Second
)

// QueueConfig tunes the asynchronous publisher.
type QueueConfig struct {
	Size           int           // total buffered capacity across all workers
	Workers        int           // concurrent publish workers
	MaxAttempts    int           // publish attempts per event (at-least-once)
	PublishTimeout time.Duration // per-attempt deadline
}

// Queue fans audit events out to a Publisher on background workers. Events
// are sharded by client id, one shard per worker, so all events for one
// client pass through a single worker and reach the publisher in decision
// order. The decision path only ever calls Enqueue, which never blocks:
// when a shard is full its oldest pending event is dropped and counted.
type Queue struct {
	publisher Publisher
	logger    *zap.Logger
	observer  queueObserver
	config    QueueConfig

	// mu serializes Enqueue sends against Close closing the shards.
	mu     sync.RWMutex
	closed bool
	shards []chan Event
	wg     sync.WaitGroup

	published atomic.Int64
	dropped   atomic.Int64
	failures  atomic.Int64
}

// NewQueue starts the background workers. Close drains remaining events.
func NewQueue(publisher Publisher, logger *zap.Logger, observer queueObserver, config QueueConfig) *Queue {
	if config.Size <= 0 {
		config.Size = defaultQueueSize
	}
	if config.Workers <= 0 {
		config.Workers = defaultWorkers
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = defaultMaxAttempts
	}
	if config.PublishTimeout <= 0 {
		config.PublishTimeout = defaultPublishTimeout
	}
	if observer == nil {
		observer = nopObserver{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	q := &Queue{
		publisher: publisher,
		logger:    logger,
		observer:  observer,
		config:    config,
		shards:    make([]chan Event, config.Workers),
	}

	shardSize := max(config.Size/config.Workers, 1)
	for i := range q.shards {
		q.shards[i] = make(chan Event, shardSize)
		q.wg.Add(1)
		go q.worker(q.shards[i])
	}

	return q
}

// Enqueue hands an event to its client's worker without blocking. When the
// shard is full, the oldest pending event is evicted to make room; if
// another producer wins the freed slot, the new event is dropped instead.
// Either way a drop is counted and the decision path is never delayed.
func (q *Queue) Enqueue(event Event) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		q.dropped.Add(1)
		q.observer.IncAuditDropped()
		return
	}

	ch := q.shards[q.shardFor(event.ClientID)]
	select {
	case ch <- event:
		return
	default:
	}

	// Shard full: evict the oldest pending event.
	select {
	case old := <-ch:
		q.dropped.Add(1)
		q.observer.IncAuditDropped()
		q.logger.Warn("audit queue full, dropped oldest event",
			zap.String("dropped_event_id", old.EventID),
			zap.String("client_id", old.ClientID))
	default:
	}

	select {
	case ch <- event:
	default:
		q.dropped.Add(1)
		q.observer.IncAuditDropped()
		q.logger.Warn("audit queue full, dropped event",
			zap.String("event_id", event.EventID),
			zap.String("client_id", event.ClientID))
	}
}

// shardFor maps a client id to its worker. Every event of one client lands
// on the same shard, which is what keeps per-client publication ordered.
func (q *Queue) shardFor(clientID string) int {
	if len(q.shards) == 1 {
		return 0
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(clientID))
	return int(h.Sum32() % uint32(len(q.shards)))
}

// Close stops accepting events, drains the shards, and closes the
// underlying publisher.
func (q *Queue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	for _, ch := range q.shards {
		close(ch)
	}
	q.mu.Unlock()

	q.wg.Wait()
	return q.publisher.Close()
}

// Stats returns a snapshot of the queue counters.
func (q *Queue) Stats() QueueStats {
	return QueueStats{
		Published: q.published.Load(),
		Dropped:   q.dropped.Load(),
		Failures:  q.failures.Load(),
	}
}

func (q *Queue) worker(ch chan Event) {
	defer q.wg.Done()
	for event := range ch {
		q.publish(event)
	}
}

// publish attempts delivery with bounded retries. Failures never propagate
// anywhere near the decision path; they are logged and counted.
func (q *Queue) publish(event Event) {
	for attempt := 0; attempt < q.config.MaxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), q.config.PublishTimeout)
		err := q.publisher.Publish(ctx, event)
		cancel()

		if err == nil {
			q.published.Add(1)
			q.observer.IncAuditPublished()
			return
		}

		q.failures.Add(1)
		q.observer.IncAuditFailure()
		q.logger.Warn("audit publish failed",
			zap.String("event_id", event.EventID),
			zap.String("client_id", event.ClientID),
			zap.Int("attempt", attempt+1),
			zap.Error(err))

		if attempt < q.config.MaxAttempts-1 {
			time.Sleep(retryBackoff(attempt))
		}
	}

	q.logger.Error("audit event lost after retries",
		zap.String("event_id", event.EventID),
		zap.String("client_id", event.ClientID),
		zap.Int("attempts", q.config.MaxAttempts))
}
