package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/railway-ticket-booking/internal/booking"    // Booking core (inventory, ledger, pricing)
	"github.com/iliyamo/railway-ticket-booking/internal/catalog"    // Fixed coach and station configuration
	"github.com/iliyamo/railway-ticket-booking/internal/config"     // Internal config loader
	"github.com/iliyamo/railway-ticket-booking/internal/handler"    // HTTP handlers
	"github.com/iliyamo/railway-ticket-booking/internal/middleware" // Rate limiting and catalog caching
	"github.com/iliyamo/railway-ticket-booking/internal/queue"      // Ticket event consumer
	"github.com/iliyamo/railway-ticket-booking/internal/router"     // Internal router setup
)

func main() {
	// Load a .env file when present; a missing file is fine in containers
	// where the environment is injected directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load() // Load environment config

	// The booking core owns all mutable state: one instance per process,
	// seeded from the fixed catalog with every seat free.
	svc, err := booking.NewService(catalog.Default())
	if err != nil {
		log.Fatalf("booking service init: %v", err)
	}

	e := echo.New() // Create Echo instance

	// Redis backs rate limiting and catalog response caching.  Both degrade
	// to pass-throughs when Redis is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and catalog cache disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	catalogCache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e) // Register health check
	router.RegisterBooking(e, handler.NewBookingHandler(svc), catalogCache)

	// Background consumer appending ticket lifecycle events to
	// logs/ticket.log.  It reconnects forever and never takes the server
	// down with it.
	go func() {
		if err := queue.StartTicketConsumer(); err != nil {
			log.Printf("ticket consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
