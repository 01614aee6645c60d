package main

import (
	"context"
	"flag"
	"log"

	"github.com/trogers1052/portfolio-valuation/internal/cache"
	"github.com/trogers1052/portfolio-valuation/internal/config"
	"github.com/trogers1052/portfolio-valuation/internal/database"
	"github.com/trogers1052/portfolio-valuation/internal/kafka"
	"github.com/trogers1052/portfolio-valuation/internal/snapshot"
)

// Performs exactly one valuation run and exits. Intended for cron or manual
// invocation.
func main() {
	publish := flag.Bool("publish", false, "publish snapshot events to kafka")
	refreshCache := flag.Bool("refresh-cache", false, "refresh the redis value cache")
	flag.Parse()

	cfg := config.Load()

	db, err := database.New(cfg.Database.ConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	var publisher snapshot.EventPublisher
	if *publish {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.SnapshotTopic)
		defer producer.Close()
		publisher = producer
	}

	var valueCache snapshot.ValueCache
	if *refreshCache {
		vc := cache.NewValueCache(cfg.Redis.Addr, cfg.Redis.CacheTTL)
		defer vc.Close()
		valueCache = vc
	}

	runner := snapshot.NewRunner(db, db, publisher, valueCache)

	summary, err := runner.Run(context.Background())
	if err != nil {
		log.Fatalf("Valuation run failed: %v", err)
	}

	log.Printf("Recorded %d valuations at %s (%d row errors, %d emit errors)",
		len(summary.Valuations), summary.RunTimestamp.Format("2006-01-02 15:04:05"),
		len(summary.RowErrors), len(summary.EmitErrors))
}
