// Package config loads the daemon configuration: YAML file first,
// environment overrides second, defaults for whatever is left unset.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// File is the top-level daemon configuration.
type File struct {
	Server  ServerSettings  `yaml:"server"`
	Storage StorageSettings `yaml:"storage"`
	Limits  LimitSettings   `yaml:"limits"`
	Audit   AuditSettings   `yaml:"audit"`
}

// ServerSettings covers the two listeners.
type ServerSettings struct {
	HTTPAddr     string        `yaml:"http_addr"`     // Default: ":8080"
	GRPCAddr     string        `yaml:"grpc_addr"`     // Default: ":9090"
	ReadTimeout  time.Duration `yaml:"read_timeout"`  // Default: 10s
	WriteTimeout time.Duration `yaml:"write_timeout"` // Default: 10s
}

// StorageSettings selects and configures the shared state backend.
type StorageSettings struct {
	// Backend is the registered backend name: memory, redis or postgres.
	Backend string `yaml:"backend"`

	// Redis connection, used when backend is "redis".
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`

	// Postgres DSN, used when backend is "postgres".
	PostgresDSN string `yaml:"postgres_dsn"`

	// StateTTL is how long an idle bucket survives.
	StateTTL time.Duration `yaml:"state_ttl"` // Default: 1h
}

// ClassSettings is one bucket class.
type ClassSettings struct {
	Capacity   float64 `yaml:"capacity"`
	RefillRate float64 `yaml:"refill_rate"` // tokens per second
}

// LimitSettings covers decision behavior.
type LimitSettings struct {
	// Default applies to resources without an explicit class.
	Default ClassSettings `yaml:"default"`

	// Resources maps a resource identifier to its class.
	Resources map[string]ClassSettings `yaml:"resources"`

	// FailurePolicy is "open" or "closed".
	FailurePolicy string `yaml:"failure_policy"` // Default: "open"

	// CheckTimeout bounds a single decision.
	CheckTimeout time.Duration `yaml:"check_timeout"` // Default: 100ms

	// CASRetries bounds the write loop under contention.
	CASRetries int `yaml:"cas_retries"` // Default: 3
}

// AuditSettings covers the Kafka audit pipeline. An empty broker list
// disables auditing.
type AuditSettings struct {
	Brokers   []string `yaml:"brokers"`
	Topic     string   `yaml:"topic"`      // Default: "rate-limit.audit"
	QueueSize int      `yaml:"queue_size"` // Default: 1024
	Workers   int      `yaml:"workers"`    // Default: 2
}

// Default returns the configuration used when no file is given.
func Default() *File {
	return &File{
		Server: ServerSettings{
			HTTPAddr:     ":8080",
			GRPCAddr:     ":9090",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Storage: StorageSettings{
			Backend:   "memory",
			RedisAddr: "localhost:6379",
			StateTTL:  time.Hour,
		},
		Limits: LimitSettings{
			Default:       ClassSettings{Capacity: 100, RefillRate: 100.0 / 60.0},
			FailurePolicy: "open",
			CheckTimeout:  100 * time.Millisecond,
			CASRetries:    3,
		},
		Audit: AuditSettings{
			Topic:     "rate-limit.audit",
			QueueSize: 1024,
			Workers:   2,
		},
	}
}

// LoadFromFile reads a YAML configuration file over the defaults.
func LoadFromFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// LoadFromEnv overrides configuration values with environment variables.
// Secrets and deployment-specific values land here rather than in YAML.
func (c *File) LoadFromEnv() {
	if addr := os.Getenv("RATEWALL_HTTP_ADDR"); addr != "" {
		c.Server.HTTPAddr = addr
	}
	if addr := os.Getenv("RATEWALL_GRPC_ADDR"); addr != "" {
		c.Server.GRPCAddr = addr
	}

	if backend := os.Getenv("RATEWALL_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if addr := os.Getenv("RATEWALL_REDIS_ADDR"); addr != "" {
		c.Storage.RedisAddr = addr
	}
	if password := os.Getenv("RATEWALL_REDIS_PASSWORD"); password != "" {
		c.Storage.RedisPassword = password
	}
	if dbStr := os.Getenv("RATEWALL_REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			c.Storage.RedisDB = db
		}
	}
	if dsn := os.Getenv("RATEWALL_POSTGRES_DSN"); dsn != "" {
		c.Storage.PostgresDSN = dsn
	}

	if policy := os.Getenv("RATEWALL_FAILURE_POLICY"); policy != "" {
		c.Limits.FailurePolicy = policy
	}
	if timeoutStr := os.Getenv("RATEWALL_CHECK_TIMEOUT"); timeoutStr != "" {
		if timeout, err := time.ParseDuration(timeoutStr); err == nil {
			c.Limits.CheckTimeout = timeout
		}
	}

	if brokers := os.Getenv("RATEWALL_KAFKA_BROKERS"); brokers != "" {
		c.Audit.Brokers = splitBrokers(brokers)
	}
}

// Validate checks the configuration invariants.
func (c *File) Validate() error {
	if c.Server.HTTPAddr == "" {
		return fmt.Errorf("server.http_addr required")
	}
	if c.Server.GRPCAddr == "" {
		return fmt.Errorf("server.grpc_addr required")
	}

	switch c.Storage.Backend {
	case "memory":
	case "redis":
		if c.Storage.RedisAddr == "" {
			return fmt.Errorf("storage.redis_addr required for redis backend")
		}
	case "postgres":
		if c.Storage.PostgresDSN == "" {
			return fmt.Errorf("storage.postgres_dsn required for postgres backend")
		}
	default:
		return fmt.Errorf("storage.backend must be memory, redis or postgres, got %q", c.Storage.Backend)
	}

	if c.Limits.Default.Capacity <= 0 {
		return fmt.Errorf("limits.default.capacity must be positive")
	}
	if c.Limits.Default.RefillRate <= 0 {
		return fmt.Errorf("limits.default.refill_rate must be positive")
	}
	for resource, class := range c.Limits.Resources {
		if class.Capacity <= 0 || class.RefillRate <= 0 {
			return fmt.Errorf("limits.resources[%s]: capacity and refill_rate must be positive", resource)
		}
	}
	if c.Limits.FailurePolicy != "open" && c.Limits.FailurePolicy != "closed" {
		return fmt.Errorf("limits.failure_policy must be \"open\" or \"closed\", got %q", c.Limits.FailurePolicy)
	}
	if c.Limits.CASRetries < 1 {
		return fmt.Errorf("limits.cas_retries must be >= 1")
	}

	if len(c.Audit.Brokers) > 0 {
		if c.Audit.Topic == "" {
			return fmt.Errorf("audit.topic required when brokers are set")
		}
		if c.Audit.QueueSize < 1 {
			return fmt.Errorf("audit.queue_size must be >= 1")
		}
	}
	return nil
}

func splitBrokers(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
