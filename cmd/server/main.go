package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trogers1052/portfolio-valuation/internal/api"
	"github.com/trogers1052/portfolio-valuation/internal/cache"
	"github.com/trogers1052/portfolio-valuation/internal/config"
	"github.com/trogers1052/portfolio-valuation/internal/database"
	"github.com/trogers1052/portfolio-valuation/internal/kafka"
	"github.com/trogers1052/portfolio-valuation/internal/snapshot"
)

func main() {
	cfg := config.Load()

	db, err := database.New(cfg.Database.ConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations("file://migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	valueCache := cache.NewValueCache(cfg.Redis.Addr, cfg.Redis.CacheTTL)
	defer valueCache.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.SnapshotTopic)
	defer producer.Close()

	runner := snapshot.NewRunner(db, db, producer, valueCache)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Portfolio snapshots arrive over Kafka and replace stored portfolios.
	consumer := kafka.NewPortfolioConsumer(cfg.Kafka.Brokers, cfg.Kafka.PortfolioTopic, cfg.Kafka.GroupID, db)
	go func() {
		if err := consumer.Start(ctx); err != nil {
			log.Printf("Portfolio consumer stopped: %v", err)
		}
	}()

	// Scheduled valuation runs.
	go func() {
		ticker := time.NewTicker(cfg.Snapshot.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := runner.Run(ctx); err != nil {
					log.Printf("Scheduled valuation run failed: %v", err)
				}
			}
		}
	}()

	handler := api.NewHandler(db, runner, valueCache)
	server := &http.Server{
		Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
		Handler: api.SetupRoutes(handler),
	}

	go func() {
		log.Printf("API listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
