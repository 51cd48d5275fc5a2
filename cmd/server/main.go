// Package main is the entry point for the payment gateway.
// It loads configuration, selects the store backend, builds the
// acquiring bank client, and starts the HTTP server.
package main

import (
	"context"
	"log"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"paygate/internal/config"
	"paygate/internal/repositories"
	"paygate/internal/routes"
	"paygate/internal/services/bank"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	bankURL := config.MustGetEnv("ACQUIRING_BANK_URL")
	bankTimeout := config.GetDurationEnv("BANK_TIMEOUT", 5*time.Second)
	bankClient := bank.NewClient(bankURL, bankTimeout)

	// Select the store backend (in-memory by default)
	storeBackend := config.GetEnv("STORE_BACKEND", "memory")
	var store repositories.PaymentRepository
	switch storeBackend {
	case "memory":
		store = repositories.NewMemoryPaymentRepository()
	case "redis":
		redisCfg := &repositories.RedisConfig{
			Host:     config.GetEnv("REDIS_HOST", "localhost"),
			Port:     config.GetEnv("REDIS_PORT", "6379"),
			Password: config.GetEnv("REDIS_PASSWORD", ""),
			DB:       config.GetIntEnv("REDIS_DB", 0),
		}
		redisClient := repositories.NewRedisClient(redisCfg)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Failed to ping Redis: %v", err)
		}
		redisStore := repositories.NewRedisPaymentRepository(redisClient)
		defer func() {
			if err := redisStore.Close(); err != nil {
				log.Printf("Failed to close Redis connection: %v", err)
			}
		}()
		store = redisStore
	default:
		log.Fatalf("Unknown STORE_BACKEND %q (want memory or redis)", storeBackend)
	}
	log.Printf("Using %s payment store", storeBackend)

	// Create fiber app
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	if limit := config.GetIntEnv("PAYMENT_RATE_LIMIT", 0); limit > 0 {
		app.Use("/payment", limiter.New(limiter.Config{
			Max:        limit,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Too many requests. Please try again later.",
				})
			},
		}))
	}

	// Routes
	routes.SetupRoutes(app, store, bankClient, storeBackend)

	// Start server
	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "8080")))
}
