package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/trogers1052/portfolio-valuation/internal/models"
)

// PortfolioRepository defines the interface for portfolio database operations
type PortfolioRepository interface {
	ReplacePortfolio(uid string, leagueID int, positions []*models.PortfolioPosition) error
}

// messageReader abstracts the kafka reader so tests can inject messages
type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
	Config() kafka.ReaderConfig
}

// PortfolioConsumer consumes portfolio snapshot events and replaces the
// stored portfolio for the (user, league) each event names. Valuation runs
// read whatever the store holds at run time; there is no coordination with
// in-flight snapshots.
type PortfolioConsumer struct {
	reader messageReader
	repo   PortfolioRepository
}

// NewPortfolioConsumer creates a new Kafka consumer for portfolio snapshots
func NewPortfolioConsumer(brokers []string, topic, groupID string, repo PortfolioRepository) *PortfolioConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		MaxWait:        1 * time.Second,
		StartOffset:    kafka.FirstOffset,
		CommitInterval: time.Second,
	})

	return &PortfolioConsumer{
		reader: reader,
		repo:   repo,
	}
}

// Start begins consuming messages from Kafka
func (c *PortfolioConsumer) Start(ctx context.Context) error {
	log.Printf("Starting portfolio consumer for topic: %s", c.reader.Config().Topic)

	for {
		select {
		case <-ctx.Done():
			log.Println("Portfolio consumer shutting down...")
			return c.reader.Close()
		default:
			msg, err := c.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return c.reader.Close()
				}
				log.Printf("Error reading message: %v", err)
				continue
			}

			if err := c.processMessage(msg); err != nil {
				log.Printf("Error processing message: %v", err)
				// Continue processing other messages
			}
		}
	}
}

// processMessage handles a single Kafka message
func (c *PortfolioConsumer) processMessage(msg kafka.Message) error {
	var event models.PortfolioEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal portfolio event: %w", err)
	}

	if event.EventType != models.EventPortfolioSnapshot {
		log.Printf("Ignoring event type: %s", event.EventType)
		return nil
	}

	positions, err := convertEventPositions(event.Data)
	if err != nil {
		return fmt.Errorf("failed to convert portfolio snapshot: %w", err)
	}

	if err := c.repo.ReplacePortfolio(event.Data.UID, event.Data.LeagueID, positions); err != nil {
		return fmt.Errorf("failed to replace portfolio: %w", err)
	}

	log.Printf("Replaced portfolio for %s in league %d (%d positions)",
		event.Data.UID, event.Data.LeagueID, len(positions))
	return nil
}

func convertEventPositions(data models.PortfolioEventData) ([]*models.PortfolioPosition, error) {
	positions := make([]*models.PortfolioPosition, 0, len(data.Positions))
	for _, p := range data.Positions {
		quantity, err := decimal.NewFromString(p.Quantity)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity %q for stock %d: %w", p.Quantity, p.StockID, err)
		}
		positions = append(positions, &models.PortfolioPosition{
			UID:      data.UID,
			LeagueID: data.LeagueID,
			StockID:  p.StockID,
			Quantity: quantity,
		})
	}
	return positions, nil
}
