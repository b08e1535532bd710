// Package redis implements the storage Backend on Redis. Compare-and-set
// runs as a server-side Lua script, so concurrent deciders on different
// replicas serialize through Redis itself.
package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ratewall/ratewall/backends"
)

type Config struct {
	Addr     string
	Password string
	DB       int
	PoolSize int

	// ConnErrorStrings overrides the default connectivity-error patterns
	// used to classify transient failures.
	ConnErrorStrings []string
}

type Backend struct {
	client      *redis.Client
	connErrStrs []string
}

// GetClient exposes the underlying client for health checks and tooling.
func (r *Backend) GetClient() *redis.Client {
	return r.client
}

// New initializes a Redis backend with the given configuration.
func New(config Config) (*Backend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
		PoolSize: config.PoolSize,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, NewConnectionFailedError(config.Addr, err)
	}

	patterns := config.ConnErrorStrings
	if patterns == nil {
		patterns = connErrorStrings
	}

	return &Backend{client: client, connErrStrs: patterns}, nil
}

// NewFromClient wraps an existing client. The caller keeps ownership of
// the client's lifecycle; Close is still safe to call.
func NewFromClient(client *redis.Client) *Backend {
	return &Backend{client: client, connErrStrs: connErrorStrings}
}

func (r *Backend) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil // key doesn't exist
	}
	if err != nil {
		return "", backends.MaybeConnError("redis:Get", NewGetFailedError(key, err), r.connErrStrs)
	}
	return val, nil
}

func (r *Backend) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return backends.MaybeConnError("redis:Set", NewSetFailedError(key, err), r.connErrStrs)
	}
	return nil
}

func (r *Backend) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return backends.MaybeConnError("redis:Del", NewDeleteFailedError(key, err), r.connErrStrs)
	}
	return nil
}

func (r *Backend) Close() error {
	if err := r.client.Close(); err != nil {
		return NewCloseFailedError(err)
	}
	return nil
}

// checkAndSetScript compares the stored value against ARGV[1] and replaces
// it with ARGV[2] on a match, refreshing the TTL (ARGV[3], millis; '0'
// means no expiration). An empty ARGV[1] means "set only if absent".
var checkAndSetScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1])

if ARGV[1] == '' then
	if current == false then
		if ARGV[3] == '0' then
			redis.call('SET', KEYS[1], ARGV[2])
		else
			redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
		end
		return 1
	end
	return 0
end

if current == ARGV[1] then
	if ARGV[3] == '0' then
		redis.call('SET', KEYS[1], ARGV[2])
	else
		redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
	end
	return 1
end

return 0
`)

// CheckAndSet atomically sets key to newValue only if the current value
// matches oldValue. oldValue == "" means "set only if key doesn't exist".
// Expired keys are treated as non-existent.
func (r *Backend) CheckAndSet(ctx context.Context, key, oldValue, newValue string, ttl time.Duration) (bool, error) {
	expMs := "0"
	if ttl > 0 {
		expMs = strconv.FormatInt(ttl.Milliseconds(), 10)
	}

	result, err := checkAndSetScript.Run(ctx, r.client, []string{key}, oldValue, newValue, expMs).Result()
	if err != nil {
		return false, backends.MaybeConnError("redis:Eval", NewEvalFailedError(err), r.connErrStrs)
	}

	applied, ok := result.(int64)
	if !ok {
		return false, ErrInvalidScriptResult
	}
	return applied == 1, nil
}
