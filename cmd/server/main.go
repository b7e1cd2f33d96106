package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"ridehail/internal/api"
	"ridehail/internal/api/handlers"
	"ridehail/internal/config"
	"ridehail/internal/logging"
	"ridehail/internal/repository/memory"
	"ridehail/internal/services"
	"ridehail/pkg/apierror"
)

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(cfg.LogLevel)

	// Production deployments inject a monitoring-backed reporter here so
	// failure records leave the box; everywhere else they go to the local
	// structured log.
	var reporter apierror.Reporter
	errs := apierror.NewHandler(logger, reporter)

	// Session-scoped stores: empty at startup, gone at exit.
	rideRepo := memory.NewRideRepository()
	driverRepo := memory.NewDriverRepository()
	userRepo := memory.NewUserRepository()

	rideService := services.NewRideService(rideRepo, cfg.Latency, services.Sleep)
	driverService := services.NewDriverService(userRepo, driverRepo, cfg.Latency, services.Sleep)
	searchService := services.NewLocationSearchService(cfg.Latency, services.Sleep)
	authService := services.NewAuthService(userRepo, cfg.Latency, services.Sleep)

	router := api.NewRouter(
		handlers.NewRideHandler(rideService, errs),
		handlers.NewDriverHandler(driverService, errs),
		handlers.NewLocationHandler(searchService),
		handlers.NewAuthHandler(authService, errs),
		userRepo,
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	router.Setup(engine)

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("starting ride-hail demo backend",
			"addr", cfg.Server.Port,
			"environment", cfg.Environment,
			"demo_mode", cfg.DemoMode,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("server stopped cleanly")
}
