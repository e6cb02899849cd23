// main.go
package main

import (
	"context"
	"log"

	"hotel-management/cmd"
	"hotel-management/internal/data/repository"
	"hotel-management/internal/wire"
	"hotel-management/pkg/cache"
	"hotel-management/pkg/database"
	"hotel-management/pkg/events"
	"hotel-management/pkg/utils"

	"go.uber.org/zap"
)

// demo logins created by DB_SEED
var seedLogins = []struct {
	username string
	password string
}{
	{"admin", "admin123"},
	{"staff", "staff123"},
}

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

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

	ctx := context.Background()

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Info("Database schema up to date")
	}

	if config.Database.Seed {
		if err := seed(ctx, db); err != nil {
			logger.Fatal("Failed to seed database", zap.Error(err))
		}
	}

	repos := repository.NewRepository(db, logger)

	if removed, err := repos.Session.CleanExpiredSessions(ctx); err != nil {
		logger.Warn("Failed to clean expired sessions", zap.Error(err))
	} else if removed > 0 {
		logger.Info("Expired sessions removed", zap.Int64("count", removed))
	}

	var statsCache cache.Cache = cache.NopCache{}
	if config.Redis.Addr != "" {
		client, err := cache.NewRedisClient(ctx, config.Redis.Addr, config.Redis.Password, config.Redis.DB)
		if err != nil {
			logger.Warn("Redis unavailable, dashboard cache disabled", zap.Error(err))
		} else {
			defer client.Close()
			statsCache = cache.NewRedisCache(client, config.App.Name)
			logger.Info("Redis connected", zap.String("addr", config.Redis.Addr))
		}
	}

	var publisher events.Publisher = events.NopPublisher{}
	if config.Events.URL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(config.Events.URL, config.Events.Queue)
		if err != nil {
			logger.Warn("RabbitMQ unavailable, booking events disabled", zap.Error(err))
		} else {
			publisher = amqpPublisher
			logger.Info("RabbitMQ connected", zap.String("queue", config.Events.Queue))
		}
	}
	defer publisher.Close()

	app := wire.Wiring(repos, config, statsCache, publisher, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}

func seed(ctx context.Context, db database.PgxIface) error {
	users := make([]database.SeedUser, 0, len(seedLogins))
	for _, l := range seedLogins {
		hash, err := utils.HashPassword(l.password)
		if err != nil {
			return err
		}
		users = append(users, database.SeedUser{Username: l.username, PasswordHash: hash})
	}
	return database.Seed(ctx, db, users)
}
