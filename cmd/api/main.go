package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"moonwise/internal/config"
	"moonwise/internal/handler"
	"moonwise/internal/middleware"
	"moonwise/internal/repository"
	"moonwise/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	var repos *repository.Repositories
	if cfg.DatabaseURL != "" {
		db, err := config.NewPostgresDB(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		repos = repository.NewRepositories(db)
	} else {
		log.Println("No DATABASE_URL set, using in-memory store")
		repos = repository.NewMemoryRepositories()
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := config.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v (calendar caching disabled)", err)
		} else {
			redisClient = client
			defer client.Close()
		}
	}

	services := service.NewServices(repos, redisClient, cfg)
	handlers := handler.NewHandlers(services, cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-User-ID",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	setupRoutes(app, handlers)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go runSweep(ctx, services.Notification, cfg.SweepInterval)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	moon := api.Group("/moon")
	moon.Get("/current", h.Moon.Current)
	moon.Get("/date/:date", h.Moon.ByDate)

	api.Get("/calendar/:year/:month", h.Moon.Calendar)
	api.Post("/location/validate", h.Moon.ValidateLocation)

	notifications := api.Group("/notifications")
	notifications.Get("/settings", h.Notification.GetSettings)
	notifications.Post("/settings", h.Notification.UpdateSettings)
	notifications.Get("/upcoming", h.Notification.Upcoming)
	notifications.Post("/schedule", h.Notification.Schedule)
}

// runSweep periodically delivers due notifications until ctx is cancelled.
func runSweep(ctx context.Context, notifService service.NotificationService, interval time.Duration) {
	log.Printf("Notification sweep started, interval %s", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := notifService.ProcessPending(ctx); err != nil {
				log.Printf("Notification sweep error: %v", err)
			}
		case <-ctx.Done():
			log.Println("Notification sweep stopped")
			return
		}
	}
}
