package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/podcast-network/internal/logger"
	"github.com/sbilibin2017/podcast-network/internal/models"
)

//go:generate mockgen -source=events.go -destination=mock_events.go -package=services

// EventPublisher publishes domain events. Publishing never fails the caller.
type EventPublisher interface {
	Publish(ctx context.Context, event models.Event)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// KafkaPublisher publishes events as JSON messages keyed by user id.
type KafkaPublisher struct {
	writer KafkaWriter
}

// NewKafkaPublisher creates a KafkaPublisher. A nil writer disables publishing.
func NewKafkaPublisher(writer KafkaWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// Publish writes event to Kafka. Failures are logged and dropped.
func (p *KafkaPublisher) Publish(ctx context.Context, event models.Event) {
	if p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
		return
	}
	logger.Log.Infow("Event published to Kafka",
		"event_id", event.EventID, "entity", event.Entity, "operation", event.Operation)
}

func newEvent(userID uuid.UUID, entity string, entityID uuid.UUID, operation string) models.Event {
	ev := models.Event{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		Entity:    entity,
		Operation: operation,
	}
	if entityID != uuid.Nil {
		ev.EntityID = entityID.String()
	}
	return ev
}
