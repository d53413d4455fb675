package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-table-reservation/internal/booking"
	"github.com/iliyamo/restaurant-table-reservation/internal/config"
	"github.com/iliyamo/restaurant-table-reservation/internal/database"
	"github.com/iliyamo/restaurant-table-reservation/internal/handler"
	"github.com/iliyamo/restaurant-table-reservation/internal/queue"
	"github.com/iliyamo/restaurant-table-reservation/internal/repository"
	"github.com/iliyamo/restaurant-table-reservation/internal/router"
	queue_publisher "github.com/iliyamo/restaurant-table-reservation/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	// Staff accounts come from MySQL when configured, otherwise the
	// seeded in-memory roster keeps local development working.
	var staff repository.StaffStore
	if cfg.DBHost != "" {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("mysql: %v", err)
		}
		staff = repository.NewStaffRepo(db, cfg.BcryptCost)
	} else {
		log.Println("no DB configured; using seeded staff roster")
		staff = repository.NewMemoryStaffRepo(cfg.BcryptCost)
	}

	// The booking engine owns all table and ledger state.  Expired
	// bookings are announced on the same event queue as the rest of
	// the lifecycle.
	engine := booking.NewEngine(
		booking.WithWindows(cfg.AdvanceMin, cfg.GraceMin),
		booking.WithExpiryObserver(func(ev booking.ExpiredBooking) {
			_ = queue_publisher.PublishBookingEvent(context.Background(), queue.BookingEvent{
				Type:            queue.EventBookingExpired,
				BookingID:       ev.BookingID,
				CustomerName:    ev.CustomerName,
				TableAmount:     ev.FreedTables,
				TablesRemaining: ev.RemainingTables,
				OccurredAt:      time.Now().UTC().Format(time.RFC3339),
			})
		}),
	)
	defer engine.Close()

	// Redis backs rate limiting and the status cache; nil disables both.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and caching disabled")
	}

	// Background consumer turns booking events into logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(queue_publisher.BrokerURL()); err != nil {
			log.Printf("booking-consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, staff), rdb)
	router.RegisterBooking(e, handler.NewBookingHandler(engine), cfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
