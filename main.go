// File: availcal/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"availcal/config"
	"availcal/cron"
	"availcal/handlers"
	"availcal/middleware"
	"availcal/routes"
	"availcal/services/availability"
	"availcal/services/scheduling"
	"availcal/services/view"
	"availcal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()
	loc := config.CalendarLocation()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	router.Use(cors.Default())

	// Slot fetcher for the upstream scheduling API.
	fetcher := scheduling.NewClient(
		config.AppConfig.SchedulingAPIURL,
		config.AppConfig.SchedulingAPIKey,
		config.AppConfig.ServiceID,
		config.AppConfig.StaffID,
		logger,
	)

	// services.
	availabilityService := &availability.DefaultService{
		Fetcher:  fetcher,
		Cache:    utils.GetCacheClient(),
		Loc:      loc,
		Duration: time.Duration(config.AppConfig.SlotDurationMin) * time.Minute,
		Logger:   logger,
	}

	sessionService := &view.DefaultSessionService{
		Availability: availabilityService,
		Sessions:     view.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Loc:          loc,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, logger)
	viewSessionHandler := handlers.NewViewSessionHandler(sessionService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetMonthHandler: availabilityHandler.GetMonthHandler,
		GetDayHandler:   availabilityHandler.GetDayHandler,

		CreateSessionHandler:  viewSessionHandler.CreateSessionHandler,
		GetSessionHandler:     viewSessionHandler.GetSessionHandler,
		NavigateMonthHandler:  viewSessionHandler.NavigateMonthHandler,
		ToggleThemeHandler:    viewSessionHandler.ToggleThemeHandler,
		RequestRefreshHandler: viewSessionHandler.RequestRefreshHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background pre-warm worker and health monitor.
	cron.InitRefreshWorker(availabilityService, loc)
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCacheClient(),
		utils.GetSessionCacheClient(),
	})

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
