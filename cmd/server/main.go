package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/fashionstop/storefront/internal/application/catalog"
	identityapp "github.com/fashionstop/storefront/internal/application/identity"
	orderapp "github.com/fashionstop/storefront/internal/application/order"
	"github.com/fashionstop/storefront/internal/infrastructure/config"
	"github.com/fashionstop/storefront/internal/infrastructure/event"
	"github.com/fashionstop/storefront/internal/infrastructure/logger"
	"github.com/fashionstop/storefront/internal/infrastructure/persistence"
	"github.com/fashionstop/storefront/internal/infrastructure/telemetry"
	"github.com/fashionstop/storefront/internal/interfaces/http/handler"
	"github.com/fashionstop/storefront/internal/interfaces/http/middleware"
	"github.com/fashionstop/storefront/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting FashionStop API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("storage", cfg.Storage.Driver),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer func() {
		_ = tp.Shutdown(context.Background())
	}()

	mp, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize metrics", zap.Error(err))
	}
	defer func() {
		_ = mp.Shutdown(context.Background())
	}()

	lp, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize log export", zap.Error(err))
	}
	defer func() {
		_ = lp.Shutdown(context.Background())
	}()
	log = telemetry.Bridge(log, cfg.Telemetry.ServiceName, lp, log.Level())

	store, err := persistence.OpenStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to open store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Error closing store", zap.Error(err))
		}
	}()
	demoMode := store.Ephemeral()

	if cfg.Storage.Seed {
		if err := persistence.Seed(ctx, store, cfg.Admin, log); err != nil {
			log.Fatal("Failed to seed store", zap.Error(err))
		}
	}

	// Order events are logged after the response is sent
	eventBus := event.NewInMemoryEventBus(log, event.WithAsync())
	eventBus.Subscribe(orderapp.NewActivityLogHandler(log))
	if mp.IsEnabled() {
		orderMetrics, err := orderapp.NewMetricsHandler(mp.Meter("storefront.orders"))
		if err != nil {
			log.Fatal("Failed to create order metrics", zap.Error(err))
		}
		eventBus.Subscribe(orderMetrics)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := eventBus.Stop(stopCtx); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	productService := catalogapp.NewProductService(store.Products(), log)
	orderService := orderapp.NewOrderService(store.Orders(), store.Products(), eventBus, log)
	authService := identityapp.NewAuthService(store.Admins(), log)

	handlers := router.Handlers{
		Products: handler.NewProductHandler(productService, demoMode),
		Orders:   handler.NewOrderHandler(orderService, demoMode),
		Auth:     handler.NewAuthHandler(authService),
		System:   handler.NewSystemHandler(demoMode),
	}

	engine := newEngine(ctx, cfg, log, mp)
	router.RegisterStorefront(router.NewRouter(engine), handlers)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Server starting",
			zap.String("addr", srv.Addr),
			zap.Bool("demo_mode", demoMode),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down server...")
	case err := <-serveErr:
		log.Error("Server failed", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}

	log.Info("Server exited gracefully")
}

// newEngine builds the gin engine with the global middleware chain
func newEngine(ctx context.Context, cfg *config.Config, log *zap.Logger, mp *telemetry.MeterProvider) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log, "/health"))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.SpanEnricher())
	if mp.IsEnabled() {
		engine.Use(middleware.HTTPMetrics(mp.Meter("http.server")))
	}
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORS(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		go limiter.Run(ctx)
		engine.Use(middleware.RateLimit(limiter))
	}

	return engine
}
