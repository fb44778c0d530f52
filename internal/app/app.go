package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/Jairobuifranco/A2-Group17/internal/cache"
	"github.com/Jairobuifranco/A2-Group17/internal/clock"
	"github.com/Jairobuifranco/A2-Group17/internal/config"
	"github.com/Jairobuifranco/A2-Group17/internal/handler"
	"github.com/Jairobuifranco/A2-Group17/internal/middleware"
	"github.com/Jairobuifranco/A2-Group17/internal/notification"
	"github.com/Jairobuifranco/A2-Group17/internal/repository"
	"github.com/Jairobuifranco/A2-Group17/internal/router"
	"github.com/Jairobuifranco/A2-Group17/internal/scheduler"
	"github.com/Jairobuifranco/A2-Group17/internal/service"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const (
	appName       = "ticketing"
	migrationsDir = "migrations"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	publisher  *notification.Publisher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initBrokers(); err != nil {
		app.closeResources()
		return nil, err
	}

	if err = app.initServices(); err != nil {
		app.closeResources()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns:    a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    a.cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: a.cfg.Postgres.ConnMaxLifetime,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// initBrokers connects the optional Redis cache and RabbitMQ publisher.
func (a *App) initBrokers() error {
	ctx := context.Background()

	if a.cfg.Redis.Enabled() {
		client, err := cache.NewClient(ctx, a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
		if err != nil {
			return fmt.Errorf("init redis: %w", err)
		}
		a.redis = client
		a.log.LogAttrs(ctx, logger.InfoLevel, "availability cache enabled",
			logger.String("addr", a.cfg.Redis.Addr),
			logger.Duration("ttl", a.cfg.Redis.TTL),
		)
	}

	if a.cfg.RabbitMQ.Enabled() {
		pub, err := notification.NewPublisher(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Exchange)
		if err != nil {
			return fmt.Errorf("init rabbitmq: %w", err)
		}
		a.publisher = pub
		a.log.LogAttrs(ctx, logger.InfoLevel, "order events publishing enabled",
			logger.String("exchange", a.cfg.RabbitMQ.Exchange),
		)
	}

	return nil
}

func (a *App) initServices() error {
	txManager := repository.NewTxManager(a.db)
	eventRepo := repository.NewEventRepo(a.db)
	orderRepo := repository.NewOrderRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	commentRepo := repository.NewCommentRepo(a.db)

	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}
	notifiers := notification.Fanout{tg}
	if a.publisher != nil {
		notifiers = append(notifiers, notification.NewOrderEvents(a.publisher, a.log))
	}

	eventOpts := []service.EventOption{service.WithMaxEventCapacity(a.cfg.Booking.MaxEventCapacity)}
	bookingOpts := []service.BookingOption{service.WithMaxTicketsPerOrder(a.cfg.Booking.MaxTicketsPerOrder)}
	if a.redis != nil {
		availability := cache.NewAvailability(a.redis, a.cfg.Redis.TTL)
		eventOpts = append(eventOpts, service.WithEventCache(availability))
		bookingOpts = append(bookingOpts, service.WithAvailabilityCache(availability))
	}

	eventService := service.NewEventService(txManager, eventRepo, orderRepo, commentRepo, a.log, eventOpts...)
	bookingService := service.NewBookingService(txManager, eventRepo, orderRepo, userRepo, notifiers, a.log, bookingOpts...)
	userService := service.NewUserService(userRepo, clock.NewSystem())
	commentService := service.NewCommentService(commentRepo, eventRepo, userRepo, clock.NewSystem())

	a.scheduler = scheduler.New(
		eventService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(eventService, bookingService, userService, commentService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		a.closeResources()
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.closeResources()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

// closeResources releases every connection opened so far.
func (a *App) closeResources() {
	ctx := context.Background()

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.LogAttrs(ctx, logger.WarnLevel, "close rabbitmq", logger.Any("error", err))
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.LogAttrs(ctx, logger.WarnLevel, "close redis", logger.Any("error", err))
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			a.log.LogAttrs(ctx, logger.WarnLevel, "close db", logger.Any("error", err))
			return
		}
		a.log.LogAttrs(ctx, logger.InfoLevel, "database connection closed")
	}
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
