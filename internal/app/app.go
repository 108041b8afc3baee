package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/caffeinepub/amala-organics-1/internal/config"
	"github.com/caffeinepub/amala-organics-1/internal/event"
	handler "github.com/caffeinepub/amala-organics-1/internal/handler/http"
	"github.com/caffeinepub/amala-organics-1/internal/repository"
	"github.com/caffeinepub/amala-organics-1/internal/repository/memory"
	redisrepo "github.com/caffeinepub/amala-organics-1/internal/repository/redis"
	"github.com/caffeinepub/amala-organics-1/internal/service"
	"github.com/caffeinepub/amala-organics-1/pkg/health"
	pkgkafka "github.com/caffeinepub/amala-organics-1/pkg/kafka"
	"github.com/caffeinepub/amala-organics-1/pkg/middleware"
	"github.com/caffeinepub/amala-organics-1/pkg/tracing"
)

// App wires together all dependencies and runs the storefront service.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	rdb             *redis.Client
	producer        *pkgkafka.Producer
	httpServer      *http.Server
	tracingShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	app := &App{
		cfg:    cfg,
		logger: logger,
	}

	// Tracing.
	tracingShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "storefront",
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTELEndpoint,
		SampleRate:     cfg.OTELSampleRate,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}
	app.tracingShutdown = tracingShutdown

	// Session stores.
	cartTTL := time.Duration(cfg.CartTTL) * time.Hour
	checkoutTTL := time.Duration(cfg.CheckoutTTL) * time.Minute

	var (
		carts     repository.CartRepository
		checkouts repository.CheckoutRepository
	)
	switch cfg.CartStore {
	case config.StoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		logger.Info("connected to Redis",
			slog.String("addr", cfg.RedisAddr),
			slog.Int("db", cfg.RedisDB),
		)
		app.rdb = rdb
		carts = redisrepo.NewCartRepository(rdb, cartTTL)
		checkouts = redisrepo.NewCheckoutRepository(rdb, checkoutTTL)
	default:
		logger.Info("using in-memory session store")
		carts = memory.NewCartRepository(cartTTL)
		checkouts = memory.NewCheckoutRepository(checkoutTTL)
	}

	// Kafka producer (optional).
	if cfg.KafkaEnabled {
		kafkaCfg := pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers)
		app.producer = pkgkafka.NewProducer(kafkaCfg, logger)
		logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))
	}
	eventProducer := event.NewProducer(app.producer, logger)

	// Build the dependency graph.
	cartService := service.NewCartService(carts, eventProducer, logger)
	checkoutService := service.NewCheckoutService(carts, checkouts, eventProducer, logger, service.CheckoutConfig{
		CheckoutTTL:    checkoutTTL,
		WhatsAppPhone:  cfg.WhatsAppPhone,
		GPayPayeeName:  cfg.GPayPayeeName,
		GPayPayeePhone: cfg.GPayPayeePhone,
	})

	// Health checks.
	healthHandler := health.NewHandler()
	if app.rdb != nil {
		healthHandler.Register("redis", func(ctx context.Context) error {
			return app.rdb.Ping(ctx).Err()
		})
	}
	if app.producer != nil {
		healthHandler.Register("kafka", func(ctx context.Context) error {
			return app.producer.Ping(ctx)
		})
	}

	// HTTP router.
	router := handler.NewRouter(cartService, checkoutService, healthHandler, logger, middleware.CORSConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Environment:    cfg.Environment,
	})

	app.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return app, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
		}
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
		}
	}

	if a.tracingShutdown != nil {
		if err := a.tracingShutdown(shutdownCtx); err != nil {
			a.logger.Error("tracing shutdown error", slog.String("error", err.Error()))
		}
	}

	a.logger.Info("application shutdown complete")
	return nil
}
