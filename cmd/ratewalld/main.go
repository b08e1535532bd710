// ratewalld is the rate-limit daemon: one service behind an HTTP and a
// gRPC listener, bucket state in a shared backend, audit events on Kafka.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/ratewall/ratewall"
	"github.com/ratewall/ratewall/api/ratewallpb"
	"github.com/ratewall/ratewall/audit"
	auditkafka "github.com/ratewall/ratewall/audit/kafka"
	"github.com/ratewall/ratewall/backends"
	_ "github.com/ratewall/ratewall/backends/memory"
	"github.com/ratewall/ratewall/backends/postgres"
	"github.com/ratewall/ratewall/backends/redis"
	"github.com/ratewall/ratewall/internal/config"
	"github.com/ratewall/ratewall/metrics"
	"github.com/ratewall/ratewall/server"
)

const shutdownGrace = 15 * time.Second

func main() {
	configPath := flag.String("config", "", "path to YAML configuration file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(*configPath, logger); err != nil {
		logger.Fatal("ratewalld exited with error", zap.Error(err))
	}
}

func run(configPath string, logger *zap.Logger) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	registry := prometheus.NewRegistry()
	recorder := metrics.NewPrometheus(registry, 0)

	storage, err := buildStorage(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize %s storage: %w", cfg.Storage.Backend, err)
	}
	logger.Info("storage backend ready", zap.String("backend", cfg.Storage.Backend))

	opts := []ratewall.Option{
		ratewall.WithStorage(storage),
		ratewall.WithDefaultClass(cfg.Limits.Default.Capacity, cfg.Limits.Default.RefillRate),
		ratewall.WithFailurePolicy(ratewall.FailurePolicy(cfg.Limits.FailurePolicy)),
		ratewall.WithCheckTimeout(cfg.Limits.CheckTimeout),
		ratewall.WithStateTTL(cfg.Storage.StateTTL),
		ratewall.WithCASRetries(cfg.Limits.CASRetries),
		ratewall.WithMetrics(recorder),
		ratewall.WithLogger(logger),
	}
	for resource, class := range cfg.Limits.Resources {
		opts = append(opts, ratewall.WithResourceClass(resource, class.Capacity, class.RefillRate))
	}

	var auditQueue *audit.Queue
	if len(cfg.Audit.Brokers) > 0 {
		publisher, err := auditkafka.New(auditkafka.Config{
			Brokers: cfg.Audit.Brokers,
			Topic:   cfg.Audit.Topic,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize kafka publisher: %w", err)
		}
		auditQueue = audit.NewQueue(publisher, logger, recorder, audit.QueueConfig{
			Size:    cfg.Audit.QueueSize,
			Workers: cfg.Audit.Workers,
		})
		opts = append(opts, ratewall.WithAuditSink(auditQueue))
		logger.Info("audit pipeline ready",
			zap.Strings("brokers", cfg.Audit.Brokers),
			zap.String("topic", cfg.Audit.Topic))
	}

	svc, err := ratewall.New(opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpHandler := server.NewHTTPHandler(svc, logger, registry)
	httpServer := &http.Server{
		Addr:         cfg.Server.HTTPAddr,
		Handler:      httpHandler.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	grpcServer := grpc.NewServer()
	ratewallpb.RegisterRateLimiterServiceServer(grpcServer, server.NewGRPCServer(svc, logger))
	grpcListener, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Server.GRPCAddr, err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", zap.String("addr", cfg.Server.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("grpc server listening", zap.String("addr", cfg.Server.GRPCAddr))
		if err := grpcServer.Serve(grpcListener); err != nil {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("http shutdown", zap.Error(err))
		}
		grpcServer.GracefulStop()
		return nil
	})

	err = g.Wait()

	// Drain pending audit events before the process exits; decisions are
	// already stopped, so this is bounded by the queue depth.
	if auditQueue != nil {
		if closeErr := auditQueue.Close(); closeErr != nil {
			logger.Warn("audit queue close", zap.Error(closeErr))
		}
	}
	if closeErr := svc.Close(); closeErr != nil {
		logger.Warn("service close", zap.Error(closeErr))
	}
	return err
}

// buildStorage constructs the configured backend through the registry.
// Importing the adapter packages registers their factories.
func buildStorage(cfg config.StorageSettings) (backends.Backend, error) {
	switch cfg.Backend {
	case "redis":
		return backends.Create("redis", redis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	case "postgres":
		return backends.Create("postgres", postgres.Config{ConnString: cfg.PostgresDSN})
	default:
		return backends.Create("memory", nil)
	}
}
