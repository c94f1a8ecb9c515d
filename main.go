package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hrms-lite/internal/config"
	"hrms-lite/internal/db"
	"hrms-lite/internal/handlers"
	"hrms-lite/internal/repository"
	"hrms-lite/internal/router"
	"hrms-lite/internal/services"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	client, database := db.Connect(ctx, cfg.MongoURI, cfg.DatabaseName)
	defer db.Close(client)

	if err := repository.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	employeeRepo := repository.NewMongoEmployeeRepository(database)
	attendanceRepo := repository.NewMongoAttendanceRepository(database)
	notificationRepo := repository.NewMongoNotificationRepository(database)

	notificationSvc := services.NewNotificationService(notificationRepo)
	employeeSvc := services.NewEmployeeService(employeeRepo, attendanceRepo, notificationSvc)
	attendanceSvc := services.NewAttendanceService(employeeRepo, attendanceRepo, notificationSvc)

	r := gin.Default()

	// Wide-open CORS; the API carries no credentials.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
	}))

	router.Setup(r,
		handlers.NewEmployeeHandler(employeeSvc),
		handlers.NewAttendanceHandler(attendanceSvc),
		handlers.NewNotificationHandler(notificationSvc),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on :%s ...", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}
