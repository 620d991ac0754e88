package main // Entry point package

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/booking"
	"github.com/iliyamo/movie-ticket-booking/internal/catalog"
	"github.com/iliyamo/movie-ticket-booking/internal/config"
	"github.com/iliyamo/movie-ticket-booking/internal/handler"
	"github.com/iliyamo/movie-ticket-booking/internal/lock"
	"github.com/iliyamo/movie-ticket-booking/internal/middleware"
	"github.com/iliyamo/movie-ticket-booking/internal/observer"
	"github.com/iliyamo/movie-ticket-booking/internal/payment"
	"github.com/iliyamo/movie-ticket-booking/internal/queue"
	"github.com/iliyamo/movie-ticket-booking/internal/router"
	"github.com/iliyamo/movie-ticket-booking/internal/user"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	// In-memory stores and catalog registries.
	users := user.NewStore()
	movies := catalog.NewMovieService()
	theatres := catalog.NewTheatreService()
	shows := catalog.NewShowService()

	// Seat lock table with TTL holds and a background sweeper that
	// reclaims abandoned holds.
	locks := lock.NewSeatLockProvider(cfg.LockTTL, cfg.SweepInterval)
	locks.StartSweeper()
	defer locks.StopSweeper()

	bookings := booking.NewService(locks)
	bookings.AddObserver(observer.NewEmailNotificationObserver(users))
	bookings.AddObserver(observer.NewAnalyticsUpdateObserver())
	bookings.AddObserver(observer.NewQueueObserver(users, movies, theatres, shows))

	payments := payment.NewService(bookings)
	availability := booking.NewAvailabilityService(bookings, locks, theatres)

	if cfg.SeedDemoData {
		seedDemoData(users, movies, theatres, shows, cfg.BcryptCost)
	}

	// The consumer tails booking.confirmed events into the booking log.
	// It keeps retrying in the background, so a missing broker only
	// disables the log, never the API.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	// Redis-backed middleware degrades to pass-through when Redis is
	// unreachable.
	rdb := config.NewRedisClient()
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	authHandler := handler.NewAuthHandler(cfg, users)
	catalogHandler := handler.NewCatalogHandler(movies, theatres, shows, availability)
	bookingHandler := handler.NewBookingHandler(bookings, shows, theatres, cfg.LockTTL)
	paymentHandler := handler.NewPaymentHandler(payments)

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterPublic(e, catalogHandler, cache)
	router.RegisterCustomer(e, bookingHandler, paymentHandler, cfg.JWTSecret, limiter)
	router.RegisterOwner(e, catalogHandler, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, lock_ttl=%s, sweep=%s)", addr, cfg.Env, cfg.LockTTL, cfg.SweepInterval)

	go func() {
		if err := e.Start(addr); err != nil {
			log.Printf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
