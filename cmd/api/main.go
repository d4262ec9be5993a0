package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/mrtroute/mrtroute_core/internal/api"
	"github.com/mrtroute/mrtroute_core/internal/cache"
	"github.com/mrtroute/mrtroute_core/internal/config"
	"github.com/mrtroute/mrtroute_core/internal/dataset"
	"github.com/mrtroute/mrtroute_core/internal/db"
	"github.com/mrtroute/mrtroute_core/internal/graph"
	"github.com/mrtroute/mrtroute_core/internal/middleware"
	"github.com/mrtroute/mrtroute_core/internal/store"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	log.Println("Starting MRT route API server...")

	loader, stages := snapshotLoader()

	// Redis is optional: route queries degrade to uncached computation.
	if _, err := cache.GetClient(); err != nil {
		log.Printf("Redis unavailable, running without cache: %v", err)
	} else {
		log.Println("✓ Redis connection established")
	}
	defer cache.Close()

	defaultStage := getEnv("NETWORK_STAGE", stages[len(stages)-1])
	server := api.NewServer(defaultStage, stages, loader)

	var pool *pgxpool.Pool
	if getEnv("SNAPSHOT_SOURCE", "dataset") == "store" {
		server.CheckDatabase(true)
		if p, err := db.GetDB(); err == nil {
			pool = p
		}
	}
	if keyHash := getEnv("ADMIN_API_KEY_HASH", ""); keyHash != "" {
		server.EnableAdmin(pool, keyHash)
		log.Println("✓ Admin endpoints enabled")
	}
	if err := server.Preload(); err != nil {
		log.Fatalf("Failed to load network graph for stage %s: %v", defaultStage, err)
	}
	log.Printf("✓ Network graph for stage %s loaded into memory", defaultStage)

	app := fiber.New(fiber.Config{
		AppName:      "MRT Route API",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	if rdb, err := cache.GetClient(); err == nil {
		app.Use(middleware.RateLimit(rdb, middleware.LoadLimitsFromEnv()))
	}
	if pool != nil {
		if err := middleware.EnsureQueryLogSchema(context.Background(), pool); err != nil {
			log.Printf("Query log schema unavailable, skipping query logging: %v", err)
		} else {
			app.Use(middleware.QueryLog(pool))
		}
	}

	server.Register(app)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "endpoint not found",
		})
	})

	port := getEnv("API_PORT", "8080")
	addr := fmt.Sprintf(":%s", port)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down gracefully...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Printf("Server listening on http://localhost%s", addr)
	log.Printf("Route search: http://localhost%s/v1/route?start=NS1&end=EW24", addr)
	log.Printf("Health check: http://localhost%s/health", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// snapshotLoader picks the snapshot source from SNAPSHOT_SOURCE: the
// built-in preset dataset (default), the Postgres store, or a YAML file.
// Coordinates from COORDINATES_FILE are merged in when the source does not
// carry its own.
func snapshotLoader() (api.SnapshotLoader, []string) {
	coordinatesPath := getEnv("COORDINATES_FILE", "")

	withCoordinates := func(cfg graph.Config) (graph.Config, error) {
		if coordinatesPath == "" || cfg.Coordinates != nil {
			return cfg, nil
		}
		coordinates, err := config.LoadCoordinates(coordinatesPath, dataset.CodeEquivalences())
		if err != nil {
			return graph.Config{}, err
		}
		cfg.Coordinates = coordinates
		return cfg, nil
	}

	switch source := getEnv("SNAPSHOT_SOURCE", "dataset"); source {
	case "store":
		pool, err := db.GetDB()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		log.Println("✓ Database connection established")
		st := store.New(pool)
		return func(stage string) (graph.Config, error) {
			cfg, err := st.LoadSnapshot(context.Background(), stage)
			if err != nil {
				return graph.Config{}, err
			}
			return withCoordinates(cfg)
		}, dataset.Stages()

	case "file":
		path := getEnv("SNAPSHOT_FILE", "network.yaml")
		stage := getEnv("NETWORK_STAGE", "file")
		return func(requested string) (graph.Config, error) {
			cfg, err := config.LoadSnapshot(path)
			if err != nil {
				return graph.Config{}, err
			}
			return withCoordinates(cfg)
		}, []string{stage}

	case "dataset":
		return func(stage string) (graph.Config, error) {
			cfg, err := dataset.Snapshot(stage)
			if err != nil {
				return graph.Config{}, err
			}
			return withCoordinates(cfg)
		}, dataset.Stages()

	default:
		log.Fatalf("Unknown SNAPSHOT_SOURCE: %s", source)
		return nil, nil
	}
}

// customErrorHandler handles errors returned from handlers
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	log.Printf("Error: %v", err)

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
