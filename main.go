// File: fundihub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"fundihub/config"
	"fundihub/cron"
	"fundihub/database"
	agentRepoPkg "fundihub/database/repository/agent"
	bookingRepoPkg "fundihub/database/repository/booking"
	workerRepoPkg "fundihub/database/repository/worker"
	"fundihub/handlers"
	"fundihub/middleware"
	"fundihub/routes"
	"fundihub/services/agent"
	"fundihub/services/booking"
	"fundihub/services/notification"
	"fundihub/services/tasks"
	"fundihub/services/worker"
	"fundihub/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	workerRepo := workerRepoPkg.NewMongoWorkerRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	agentRepo := agentRepoPkg.NewMongoAgentRepo()

	for _, ensure := range []func() error{
		workerRepo.EnsureIndexes,
		bookingRepo.EnsureIndexes,
		agentRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
		}
	}

	// services.
	notificationService := &notification.DefaultNotificationService{}
	reminderScheduler := tasks.NewAsynqReminderScheduler()

	workerService := &worker.DefaultWorkerService{Repo: workerRepo}
	agentService := &agent.DefaultAgentService{Repo: agentRepo, WorkerRepo: workerRepo}
	bookingService := &booking.DefaultBookingService{
		WorkerRepo:   workerRepo,
		BookingRepo:  bookingRepo,
		Guard:        &booking.AvailabilityGuard{Bookings: bookingRepo},
		Cache:        utils.GetCacheClient(),
		Reminders:    reminderScheduler,
		Notification: notificationService,
	}

	cron.InitReminderWorker(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Worker:  handlers.NewWorkerHandler(workerService),
		Agent:   handlers.NewAgentHandler(agentService),
		Admin:   handlers.NewAdminHandler(agentService, workerRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, agentRepo)

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
