// File: roomly/main.go
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

	"roomly/config"
	"roomly/cron"
	"roomly/database"
	placeRepo "roomly/database/repository/place"
	reservationRepo "roomly/database/repository/reservation"
	"roomly/handlers"
	"roomly/middleware"
	"roomly/routes"
	"roomly/services/availability"
	"roomly/services/booking"
	"roomly/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	places := placeRepo.NewMongoPlaceRepo()
	reservations := reservationRepo.NewMongoReservationRepo()

	// The business clock: one fixed timezone for every "is this hour in the
	// past" decision, regardless of where clients sit.
	clock := availability.NewFixedOffsetClock(config.AppConfig.BusinessTzOffsetMin)

	availabilitySvc := &booking.DefaultAvailabilityService{
		PlaceRepo:       places,
		ReservationRepo: reservations,
		Clock:           clock,
		Cache:           utils.GetCacheClient(),
		CacheTTL:        time.Duration(config.AppConfig.SummaryCacheTTLSec) * time.Second,
	}

	workerCtx, stopWorker := context.WithCancel(context.Background())
	cron.InitSnapshotWorker(availabilitySvc, clock)
	cron.StartSnapshotScheduler(workerCtx, places)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	availabilityHandler := handlers.NewAvailabilityHandler(availabilitySvc, logger)
	routes.RegisterRoutes(router, availabilityHandler)

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
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
