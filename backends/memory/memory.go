// Package memory provides an in-process Backend with full compare-and-set
// semantics. It is the development and test backend; it also serves as the
// reference model for the distributed serializability tests, since its
// per-key locking makes CheckAndSet genuinely atomic.
package memory

import (
	"context"
	"sync"
	"time"
)

type Backend struct {
	locks  sync.Map // map[string]*sync.Mutex
	values sync.Map // map[string]memoryValue
}

type memoryValue struct {
	value      string
	expiration time.Time
}

// New initializes a new in-memory storage instance.
func New() *Backend {
	return &Backend{}
}

// getLock returns the mutex for the given key.
func (m *Backend) getLock(key string) *sync.Mutex {
	actual, _ := m.locks.LoadOrStore(key, &sync.Mutex{})
	return actual.(*sync.Mutex)
}

func (m *Backend) Get(ctx context.Context, key string) (string, error) {
	lock := m.getLock(key)
	lock.Lock()
	defer lock.Unlock()

	valAny, exists := m.values.Load(key)
	if !exists {
		return "", nil
	}

	val := valAny.(memoryValue)
	if time.Now().After(val.expiration) {
		m.values.Delete(key)
		return "", nil
	}

	return val.value, nil
}

func (m *Backend) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	lock := m.getLock(key)
	lock.Lock()
	defer lock.Unlock()

	m.values.Store(key, memoryValue{
		value:      value,
		expiration: time.Now().Add(ttl),
	})
	return nil
}

func (m *Backend) Delete(ctx context.Context, key string) error {
	lock := m.getLock(key)
	lock.Lock()
	defer lock.Unlock()

	m.values.Delete(key)
	return nil
}

// CheckAndSet atomically sets key to newValue only if the current value
// matches oldValue. oldValue == "" means "set only if key doesn't exist".
// Expired keys count as non-existent.
func (m *Backend) CheckAndSet(ctx context.Context, key, oldValue, newValue string, ttl time.Duration) (bool, error) {
	lock := m.getLock(key)
	lock.Lock()
	defer lock.Unlock()

	valAny, exists := m.values.Load(key)
	var val memoryValue
	if exists {
		val = valAny.(memoryValue)
		if time.Now().After(val.expiration) {
			exists = false
			m.values.Delete(key)
		}
	}

	if oldValue == "" {
		if exists {
			return false, nil
		}
		m.values.Store(key, memoryValue{
			value:      newValue,
			expiration: time.Now().Add(ttl),
		})
		return true, nil
	}

	if !exists || val.value != oldValue {
		return false, nil
	}

	m.values.Store(key, memoryValue{
		value:      newValue,
		expiration: time.Now().Add(ttl),
	})
	return true, nil
}

func (m *Backend) Close() error {
	m.values = sync.Map{}
	m.locks = sync.Map{}
	return nil
}
