package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sajinavi2006/julomvp-sub044/internal/application/usecase"
	"github.com/sajinavi2006/julomvp-sub044/internal/domain/service"
	"github.com/sajinavi2006/julomvp-sub044/internal/infrastructure/adapter"
	"github.com/sajinavi2006/julomvp-sub044/internal/infrastructure/config"
	"github.com/sajinavi2006/julomvp-sub044/internal/infrastructure/messaging"
	pgRepo "github.com/sajinavi2006/julomvp-sub044/internal/infrastructure/postgres"
	grpcPresentation "github.com/sajinavi2006/julomvp-sub044/internal/presentation/grpc"
	"github.com/sajinavi2006/julomvp-sub044/internal/presentation/rest"
	pkgkafka "github.com/sajinavi2006/julomvp-sub044/pkg/kafka"
	"github.com/sajinavi2006/julomvp-sub044/pkg/observability"
	pkgpostgres "github.com/sajinavi2006/julomvp-sub044/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load and validate configuration.
	cfg := config.Load()
	cfg.Validate()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.ServiceName,
	})
	slog.SetDefault(logger)

	logger.Info("starting pricing-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck // best-effort shutdown

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(dbCfg.DSN(), "file://internal/infrastructure/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	rateRepo := pgRepo.NewRateCardRepo(pool)
	limitRepo := pgRepo.NewAccountLimitRepo(pool)
	profileRepo := pgRepo.NewCustomerProfileRepo(pool)
	dbrRepo := pgRepo.NewDBRSettingRepo(pool)

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := messaging.NewKafkaEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	insuranceQuoter := adapter.NewStubInsuranceQuoter(decimal.RequireFromString(
		getEnv("INSURANCE_PREMIUM_RATE", "0"),
	))
	ddQuoter := adapter.NewStubDelayedDisbursementQuoter(decimal.RequireFromString(
		getEnv("DELAYED_DISBURSEMENT_PREMIUM", "0"),
	))

	// Wire the engine and use cases.
	resolver := service.NewRateResolver()
	assembler := service.NewOfferAssembler(logger)

	generateOffersUC := usecase.NewGenerateLoanOffersUseCase(
		rateRepo, limitRepo, profileRepo, dbrRepo,
		insuranceQuoter, ddQuoter, publisher,
		resolver, assembler, cfg.Pricing, logger,
	)
	getRateCardUC := usecase.NewGetRateCardUseCase(rateRepo, profileRepo, resolver)

	// gRPC server.
	handler := grpcPresentation.NewPricingHandler(generateOffersUC, getRateCardUC)
	grpcServer := grpcPresentation.NewServer(handler, cfg.GRPCPort, logger)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(cfg.ServiceName, map[string]rest.ReadinessCheck{
		"postgres": func(ctx context.Context) error {
			return pkgpostgres.HealthCheck(ctx, pool)
		},
	}, logger)
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           rest.LoggingMiddleware(logger)(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("pricing-service stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
