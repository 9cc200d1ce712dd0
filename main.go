package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"inventory/internal/config"
	"inventory/internal/database"
	"inventory/internal/logger"
	"inventory/internal/repositories"
	"inventory/internal/router"
	"inventory/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Dev: cfg.LogDev})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if cfg.JWTSecret == config.DefaultJWTSecret {
		log.Warn("JWT_SECRET is not set, using the built-in development secret")
	}

	app, cleanup, err := NewApp(cfg, log)
	if err != nil {
		log.Fatal("failed to build app", zap.Error(err))
	}
	defer cleanup()

	// --- Start HTTP Server ---
	log.Info("starting server", zap.String("addr", cfg.AppPort), zap.String("db_driver", cfg.DBDriver))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Info("shutting down server")

	if err := app.Shutdown(); err != nil {
		log.Error("error during fiber shutdown", zap.Error(err))
	}
	log.Info("server gracefully stopped")
}

// NewApp wires storage, the optional event bus and the HTTP layer from cfg.
// The returned cleanup releases the database and broker connections.
func NewApp(cfg *config.Config, log *zap.Logger) (*fiber.App, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	deps := router.Dependencies{
		Config: cfg,
		Logger: log,
	}

	// --- Storage ---
	if cfg.DBDriver == "memory" {
		deps.Users = repositories.NewInMemoryUserRepository()
		deps.Products = repositories.NewInMemoryProductRepository()
	} else {
		db, err := database.Open(cfg.DBDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, cleanup, err
		}
		closers = append(closers, func() {
			if err := database.Close(db); err != nil {
				log.Warn("failed to close database", zap.Error(err))
			}
		})
		if err := database.Migrate(db); err != nil {
			cleanup()
			return nil, func() {}, err
		}
		deps.Users = repositories.NewGORMUserRepository(db)
		deps.Products = repositories.NewGORMProductRepository(db)
		deps.Ping = func() error { return database.Ping(db) }
	}

	// --- Events ---
	// A broker outage never blocks startup; events are simply not published.
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, log)
		if err != nil {
			log.Warn("event publishing disabled", zap.Error(err))
		} else {
			closers = append(closers, func() {
				if err := mqClient.Close(); err != nil {
					log.Warn("failed to close RabbitMQ client", zap.Error(err))
				}
			})
			deps.Publisher = mqClient
			if cfg.EventsAudit {
				if err := mqClient.ConsumeEvents(rabbitmq.AuditHandler(log)); err != nil {
					log.Warn("event audit consumer not started", zap.Error(err))
				}
			}
		}
	}

	return router.New(deps), cleanup, nil
}
