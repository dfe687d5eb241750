package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/quizforge/config"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const publishTimeout = 5 * time.Second

// Publisher emits game lifecycle events.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type amqpPublisher struct {
	conn     *amqp.Connection
	channel  channel
	exchange string
	enabled  bool
}

// NewPublisher connects to AMQP.URL and declares the topic exchange. An empty
// URL yields a disabled publisher that drops every event.
func NewPublisher(cfg *config.Config) (Publisher, error) {
	if cfg.AMQP.URL == "" {
		log.Warn().Msg("AMQP_URL is not set. Event publishing is disabled.")
		return &amqpPublisher{}, nil
	}

	conn, err := amqp.Dial(cfg.AMQP.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	if err := ch.ExchangeDeclare(cfg.AMQP.Exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}
	log.Info().Str("exchange", cfg.AMQP.Exchange).Msg("Event publisher connected")
	return &amqpPublisher{conn: conn, channel: ch, exchange: cfg.AMQP.Exchange, enabled: true}, nil
}

func (p *amqpPublisher) Publish(ctx context.Context, event Event) error {
	if !p.enabled {
		log.Debug().Str("type", event.Type).Msg("Event publishing disabled, skipping event")
		return nil
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(pubCtx, p.exchange, event.Type, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Timestamp:    event.OccurredAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.Type, err)
	}
	log.Debug().Str("type", event.Type).Str("id", event.ID).Msg("Published event")
	return nil
}

func (p *amqpPublisher) Close() error {
	if !p.enabled {
		return nil
	}
	if err := p.channel.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close AMQP channel")
	}
	return p.conn.Close()
}
