package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel_booking_backend/internal/adapters"
	"travel_booking_backend/internal/adapters/storage"
	"travel_booking_backend/internal/auth"
	"travel_booking_backend/internal/bookings"
	"travel_booking_backend/internal/destinations"
	"travel_booking_backend/internal/email"
	"travel_booking_backend/internal/events"
	apphttp "travel_booking_backend/internal/http"
	"travel_booking_backend/internal/http/router"
	"travel_booking_backend/internal/notification"
	"travel_booking_backend/internal/packages"
	"travel_booking_backend/internal/scheduler"
	"travel_booking_backend/internal/users"
	"travel_booking_backend/migrations"
	"travel_booking_backend/platform/config"
	"travel_booking_backend/platform/db"
	"travel_booking_backend/platform/logger"
	"travel_booking_backend/platform/phone"
	"travel_booking_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, migrations.FS)
	}); err != nil {
		log.Error("failed to apply migrations", "error", err)
		panic("failed to apply migrations: " + err.Error())
	}

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	assets, err := storage.NewAssetHost(ctx, cfg, func(ctx context.Context, svc *storage.MinIOService) error {
		return withRetry(ctx, log, "asset bucket", 5, time.Second, func() error {
			return svc.EnsureBucketExists(ctx)
		})
	})
	if err != nil {
		log.Error("failed to initialize asset host", "error", err)
		panic("failed to initialize asset host: " + err.Error())
	}

	eventBus := events.NewInMemoryBus(log)
	health := []apphttp.HealthChecker{pool}

	queue, closeQueue := initEmailScheduler(cfg, log)
	if closeQueue != nil {
		defer closeQueue()
	}
	if cfg.GetRedisURL() != "" {
		if redisClient, err := scheduler.NewRedisClient(cfg); err != nil {
			log.Warn("redis health check disabled", "error", err)
		} else {
			defer func() { _ = redisClient.Close() }()
			health = append(health, scheduler.RedisPinger{Client: redisClient})
		}
	}

	sender := email.NewSender(cfg)
	notificationModule := notification.New(queue, sender, log.Component("notification"))
	notificationModule.RegisterHandlers(eventBus)

	val := validator.New()
	phones := phone.NewNormalizer(cfg.PhoneDefaultRegion)

	// ========================================================================
	// Domain Modules
	// ========================================================================

	authModule := auth.NewModule(pool, cfg, eventBus, val, log)

	usersModule, err := users.NewModule(pool, phones, val, log)
	if err != nil {
		log.Error("failed to initialize users module", "error", err)
		panic("failed to initialize users module: " + err.Error())
	}

	destinationsModule := destinations.NewModule(pool, assets, cfg.GetMaxImageSize(), val, log)
	packagesModule := packages.NewModule(pool, assets, adapters.NewDestinationChecker(destinationsModule.Service()), cfg.GetMaxImageSize(), val, log)

	// Destinations list counts and min prices come from packages.
	destinationsModule.SetPackageStatsReader(adapters.NewPackageStatsReader(packagesModule.Service()))

	bookingsModule, err := bookings.NewModule(pool, adapters.NewBookingPackageReader(packagesModule.Service()), phones, eventBus, val, log)
	if err != nil {
		log.Error("failed to initialize bookings module", "error", err)
		panic("failed to initialize bookings module: " + err.Error())
	}

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:        cfg,
		Logger:        log,
		Health:        health,
		Authenticator: authModule.Service(),
		Modules: []apphttp.Module{
			authModule,
			usersModule,
			destinationsModule,
			packagesModule,
			bookingsModule,
		},
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
		eventBus.Wait()
		log.Info("server stopped")
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initEmailScheduler(cfg config.SchedulerConfig, log *logger.Logger) (scheduler.EmailScheduler, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; emails are sent inline")
		return nil, nil
	}

	client, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize email queue client; emails are sent inline", "error", err)
		return nil, nil
	}

	return client, func() {
		_ = client.Close()
	}
}
