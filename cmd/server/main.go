package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"golang.org/x/sync/errgroup"

	"auth-gateway/internal/audit"
	"auth-gateway/internal/directory"
	"auth-gateway/internal/idp"
	"auth-gateway/internal/platform/config"
	"auth-gateway/internal/platform/httpserver"
	"auth-gateway/internal/platform/logger"
	"auth-gateway/internal/platform/metrics"
	platformredis "auth-gateway/internal/platform/redis"
	"auth-gateway/internal/session/service"
	httptransport "auth-gateway/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle
// small. Business logic lives in internal/session/service.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if err := run(cfg, log); err != nil {
		log.Error("gateway exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	m := metrics.New()

	httpClient := &http.Client{Timeout: 10 * time.Second}

	rdb, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	registry := directory.NewClient(cfg.DirectoryBaseURL, httpClient, log)
	var dir service.Directory = registry
	if rdb != nil {
		dir = directory.NewCachedClient(registry, rdb.Client, cfg.DirectoryCacheTTL, log)
	}

	sinks := []audit.Sink{audit.NewLogSink(log)}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaClient, err := kgo.NewClient(
			kgo.SeedBrokers(cfg.KafkaBrokers...),
			kgo.AllowAutoTopicCreation(),
		)
		if err != nil {
			return err
		}
		defer kafkaClient.Close()
		sinks = append(sinks, audit.NewKafkaSink(kafkaClient, cfg.AuditTopic))
	}
	recorder := audit.NewRecorder(log, sinks...)

	provider := idp.NewClient(cfg.ProviderBaseURL, cfg.ProviderPoolID, cfg.ProviderClientID, httpClient, log)

	svc := service.New(cfg.Policy, dir, provider, log,
		service.WithMetrics(m),
		service.WithAudit(recorder),
	)

	checks := map[string]httptransport.HealthCheck{}
	if rdb != nil {
		checks["redis"] = rdb.Health
	}

	router := httptransport.NewRouter(httptransport.NewSessionHandler(svc, log), checks)
	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting auth-gateway", "addr", cfg.Addr)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := recorder.Run(gctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
