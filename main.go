// File: seatwise/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"seatwise/config"
	"seatwise/handlers"
	"seatwise/middleware"
	"seatwise/routes"
	"seatwise/services/booking"
	"seatwise/services/cart"
	"seatwise/services/upstream"
	"seatwise/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.StartHealthMonitor(utils.CacheClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// upstream collaborators.
	upstreamClient := upstream.NewClient()
	confirmationStrategy := upstream.NewConfirmationStrategy(upstreamClient)

	// services.
	cartService := cart.NewDefaultCartService(config.AppConfig.MaxBookingMinutes)
	optimizerEngine := booking.NewDefaultOptimizerEngine(
		config.AppConfig.MaxBookingMinutes,
		config.AppConfig.MaxGapMinutes,
		config.AppConfig.CoverageMinPercent,
	)
	executor := booking.NewPacedBookingExecutor(
		upstreamClient,
		time.Duration(config.AppConfig.BookingPacingMs)*time.Millisecond,
	)

	// handlers.
	bookingHandler := handlers.NewBookingHandler(
		optimizerEngine,
		executor,
		cartService,
		upstreamClient,
		confirmationStrategy,
		config.AppConfig.MaxOptions,
	)
	cartHandler := handlers.NewCartHandler(cartService)
	seatsHandler := handlers.NewSeatsHandler(upstreamClient)

	routes.RegisterRoutes(router, bookingHandler, cartHandler, seatsHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
