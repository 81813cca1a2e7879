package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baigashl/blog/internal/config"
	"github.com/baigashl/blog/internal/db"
	"github.com/baigashl/blog/internal/repo"
	"github.com/baigashl/blog/internal/scheduler"
)

func main() {

	// Load configuration
	cfg := config.Load()

	if cfg.Env == "prod" && cfg.SessionSecret == "dev-session-secret" {
		log.Fatal("SESSION_SECRET must be set in prod")
	}

	if cfg.LogFormat == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}

	// Connect to database FIRST
	database, err := db.Connect(
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBUser,
		cfg.DBPass,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	database.SetMaxOpenConns(cfg.DBMaxOpenConns)
	database.SetMaxIdleConns(cfg.DBMaxIdleConns)

	log.Println("Successfully connected to the database")

	// Apply pending migrations
	databaseURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err := db.Run(databaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Audit retention pruning in the background
	auditRepo := repo.NewAuditRepo(database)
	cronJobs, err := scheduler.Run(auditRepo, cfg.AuditPruneCron, cfg.AuditRetentionDays)
	if err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer cronJobs.Stop()

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: newRouter(database, cfg),
	}

	go func() {
		log.Println("Starting server on :" + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}
