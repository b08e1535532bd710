package audit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakePublisher records published events; an optional failure budget makes
// the first N publishes fail.
type fakePublisher struct {
	mu       sync.Mutex
	events   []Event
	failures int
	closed   bool
}

func (f *fakePublisher) Publish(ctx context.Context, event Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("broker unavailable")
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakePublisher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakePublisher) published() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Event, len(f.events))
	copy(out, f.events)
	return out
}

func TestQueuePublishesEveryDecision(t *testing.T) {
	pub := &fakePublisher{}
	q := NewQueue(pub, zap.NewNop(), nil, QueueConfig{Workers: 4})

	for i := 0; i < 10; i++ {
		q.Enqueue(Event{EventID: string(rune('a' + i)), ClientID: "alice", Timestamp: int64(i)})
	}
	require.NoError(t, q.Close())

	events := pub.published()
	require.Len(t, events, 10)

	// All events of one client share a shard, so decision order holds
	// even with several workers running.
	for i := 1; i < len(events); i++ {
		assert.LessOrEqual(t, events[i-1].Timestamp, events[i].Timestamp)
	}
	assert.True(t, pub.closed)
	assert.Equal(t, int64(10), q.Stats().Published)
}

// stallingPublisher delays one designated event, giving any other worker
// ample time to overtake it if the queue let two workers share a client.
type stallingPublisher struct {
	mu      sync.Mutex
	events  []Event
	stallID string
	stall   time.Duration
}

func (p *stallingPublisher) Publish(ctx context.Context, event Event) error {
	if event.EventID == p.stallID {
		time.Sleep(p.stall)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *stallingPublisher) Close() error { return nil }

func (p *stallingPublisher) published() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Event, len(p.events))
	copy(out, p.events)
	return out
}

func TestQueuePerClientOrderWithSlowPublish(t *testing.T) {
	pub := &stallingPublisher{stallID: "e1", stall: 200 * time.Millisecond}
	q := NewQueue(pub, zap.NewNop(), nil, QueueConfig{Workers: 4})

	q.Enqueue(Event{EventID: "e1", ClientID: "alice", Timestamp: 1})
	q.Enqueue(Event{EventID: "e2", ClientID: "alice", Timestamp: 2})
	require.NoError(t, q.Close())

	var got []string
	for _, e := range pub.published() {
		got = append(got, e.EventID)
	}
	assert.Equal(t, []string{"e1", "e2"}, got,
		"a stalled first event must not be overtaken by the second")
}

func TestQueuePerClientOrderAcrossManyClients(t *testing.T) {
	pub := &fakePublisher{}
	q := NewQueue(pub, zap.NewNop(), nil, QueueConfig{Workers: 4})

	clients := []string{"alice", "bob", "carol", "dave", "erin"}
	for seq := 0; seq < 20; seq++ {
		for _, client := range clients {
			q.Enqueue(Event{ClientID: client, Timestamp: int64(seq)})
		}
	}
	require.NoError(t, q.Close())

	events := pub.published()
	require.Len(t, events, 100)

	last := map[string]int64{}
	for _, e := range events {
		if prev, ok := last[e.ClientID]; ok {
			assert.LessOrEqual(t, prev, e.Timestamp,
				"client %s published out of decision order", e.ClientID)
		}
		last[e.ClientID] = e.Timestamp
	}
}

func TestQueueRetriesTransientFailures(t *testing.T) {
	pub := &fakePublisher{failures: 2}
	q := NewQueue(pub, zap.NewNop(), nil, QueueConfig{
		Workers:        1,
		MaxAttempts:    3,
		PublishTimeout: time.Second,
	})

	q.Enqueue(Event{EventID: "e1", ClientID: "alice"})
	require.NoError(t, q.Close())

	events := pub.published()
	require.Len(t, events, 1, "event delivered after retries (at-least-once)")
	assert.Equal(t, int64(2), q.Stats().Failures)
	assert.Equal(t, int64(1), q.Stats().Published)
}

func TestQueueDropsOldestWhenFull(t *testing.T) {
	// A publisher that blocks until released, forcing the queue to fill.
	release := make(chan struct{})
	blocking := &blockingPublisher{release: release}

	q := NewQueue(blocking, zap.NewNop(), nil, QueueConfig{
		Size:        2,
		Workers:     1,
		MaxAttempts: 1,
	})

	// One in-flight + two queued fills everything; more must not block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			q.Enqueue(Event{EventID: string(rune('0' + i))})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}

	close(release)
	require.NoError(t, q.Close())

	assert.Greater(t, q.Stats().Dropped, int64(0), "overflow is counted as drops")
}

func TestQueueEnqueueAfterClose(t *testing.T) {
	pub := &fakePublisher{}
	q := NewQueue(pub, zap.NewNop(), nil, QueueConfig{Workers: 1})
	require.NoError(t, q.Close())

	q.Enqueue(Event{EventID: "late"})
	assert.Empty(t, pub.published())
	assert.Equal(t, int64(1), q.Stats().Dropped)
}

// Concurrent Enqueue and Close must not race: a producer that slips past
// the closed check cannot hit a closed channel because Close waits for the
// send lock before closing the shards.
func TestQueueEnqueueDuringClose(t *testing.T) {
	pub := &fakePublisher{}
	q := NewQueue(pub, zap.NewNop(), nil, QueueConfig{Workers: 2})

	var wg sync.WaitGroup
	start := make(chan struct{})
	for w := 0; w < 8; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for i := 0; i < 100; i++ {
				q.Enqueue(Event{ClientID: "alice", Timestamp: int64(w*100 + i)})
			}
		}()
	}

	close(start)
	require.NoError(t, q.Close())
	wg.Wait()

	stats := q.Stats()
	assert.Equal(t, int64(800), stats.Published+stats.Dropped,
		"every event is either published or counted as dropped")
}

type blockingPublisher struct {
	release chan struct{}
}

func (b *blockingPublisher) Publish(ctx context.Context, event Event) error {
	<-b.release
	return nil
}

func (b *blockingPublisher) Close() error { return nil }

func TestEventMarshal(t *testing.T) {
	e := Event{
		EventID:   "550e8400-e29b-41d4-a716-446655440000",
		Timestamp: 1700000000000,
		ClientID:  "alice",
		Resource:  "api/search",
		Allowed:   true,
		Remaining: 9,
	}

	data, err := e.Marshal()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"eventId": "550e8400-e29b-41d4-a716-446655440000",
		"timestamp": 1700000000000,
		"clientId": "alice",
		"resource": "api/search",
		"allowed": true,
		"remaining": 9
	}`, string(data))
}
