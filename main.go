// main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"moviebooking/cmd"
	"moviebooking/internal/data/cache"
	"moviebooking/internal/data/catalog"
	"moviebooking/internal/data/repository"
	"moviebooking/internal/data/seed"
	"moviebooking/internal/event"
	"moviebooking/internal/job"
	"moviebooking/internal/lock"
	"moviebooking/internal/notify"
	"moviebooking/internal/usecase"
	"moviebooking/internal/wire"
	"moviebooking/pkg/database"
	"moviebooking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		logger.Fatal("Failed to migrate schema", zap.Error(err))
	}
	logger.Info("Database connected successfully")

	// Redis optional: tanpa REDIS_ADDR pakai lock lokal + tanpa cache
	redisClient, err := database.InitRedis(config.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}

	var (
		locker      lock.Locker
		redisCaches redis.UniversalClient
	)
	if redisClient != nil {
		defer redisClient.Close()
		locker = lock.NewRedisLocker(redisClient, logger)
		redisCaches = redisClient
		logger.Info("Redis connected", zap.String("addr", config.Redis.Addr))
	} else {
		locker = lock.NewLocalLocker()
		logger.Info("Redis disabled, using in-process locks")
	}
	movieCache := cache.NewMovieCache(redisCaches, config.Redis.CacheTTL, logger)

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	if err := seed.SeedRoles(ctx, repos.Role, logger); err != nil {
		logger.Fatal("Failed to seed roles", zap.Error(err))
	}
	if config.App.SeedData {
		if err := seed.SeedMovies(ctx, repos.Movie, logger); err != nil {
			logger.Fatal("Failed to seed movies", zap.Error(err))
		}
	}

	publisher := newPublisher(ctx, config, logger)
	defer publisher.Close()

	var movieCatalog catalog.MovieCatalog = catalog.NewStoreCatalog(repos.Movie, movieCache)
	if config.Catalog.Fallback {
		movieCatalog = catalog.NewFallbackCatalog(movieCatalog, catalog.NewSeedCatalog(), logger)
	}

	// Wire all dependencies
	app := wire.Wiring(repos, usecase.Dependencies{
		Locker:    locker,
		Cache:     movieCache,
		Catalog:   movieCatalog,
		Publisher: publisher,
	}, db, config, logger)

	if config.Scheduler.StatusSyncInterval > 0 {
		scheduler, err := job.NewScheduler(config.Scheduler.StatusSyncInterval, app.Service.Movie, logger)
		if err != nil {
			logger.Fatal("Failed to create scheduler", zap.Error(err))
		}
		scheduler.Start()
		defer func() {
			if err := scheduler.Shutdown(); err != nil {
				logger.Warn("Scheduler shutdown failed", zap.Error(err))
			}
		}()
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}

// newPublisher memakai RabbitMQ kalau URL diset; consumer kirim email konfirmasi.
func newPublisher(ctx context.Context, config *utils.Config, logger *zap.Logger) event.Publisher {
	if config.RabbitMQ.URL == "" {
		logger.Info("RabbitMQ disabled, booking events are only logged")
		return event.NewLogPublisher(logger)
	}

	publisher, err := event.NewAMQPPublisher(config.RabbitMQ.URL, config.RabbitMQ.Queue, logger)
	if err != nil {
		logger.Fatal("Failed to connect to rabbitmq", zap.Error(err))
	}

	mailer := notify.NewMailer(config.Email, logger)
	consumer := event.NewConsumer(config.RabbitMQ.URL, config.RabbitMQ.Queue, func(ctx context.Context, ev event.TicketBookedEvent) error {
		return mailer.SendTicketConfirmation(ctx, ev)
	}, logger)
	go consumer.Run(ctx)

	return publisher
}
