package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/trogers1052/portfolio-valuation/internal/models"
)

// Producer handles publishing snapshot events to Kafka
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer creates a new Kafka producer
func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}

	return &Producer{
		writer: writer,
		topic:  topic,
	}
}

// PublishSnapshotRecorded publishes an event for one recorded portfolio
// valuation. The message key is the uid so a user's snapshots stay ordered
// within a partition.
func (p *Producer) PublishSnapshotRecorded(ctx context.Context, uid string, leagueID int, value float64, timestamp time.Time) error {
	event := models.SnapshotEvent{
		EventType: models.EventSnapshotRecorded,
		UID:       uid,
		LeagueID:  leagueID,
		Value:     value,
		Timestamp: timestamp,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(uid),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}
