package events

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"legalease/internal/domain"
)

// RabbitMQ publishes events to a durable topic exchange using the event type
// as the routing key, and waits for the broker confirm.
type RabbitMQ struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   *zap.Logger
	mu       sync.Mutex
}

func NewRabbitMQ(url, exchange string, logger *zap.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // autoDelete
		false,    // internal
		false,    // noWait
		nil,      // args
	)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	if err := ch.Confirm(false); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}

	logger.Info("connected to rabbitmq", zap.String("exchange", exchange))

	return &RabbitMQ{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		logger:   logger,
	}, nil
}

func (p *RabbitMQ) Publish(ctx context.Context, event domain.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  "application/json",
		MessageId:    event.ID,
		Timestamp:    event.OccurredAt,
		Type:         event.EventType,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	confirmation, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, p.exchange, event.EventType, false, false, msg)
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.EventType, err)
	}

	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.EventType, err)
	}
	if !acked {
		return fmt.Errorf("publish %s: %w", event.EventType, errors.New("broker nacked message"))
	}

	p.logger.Debug("event published", zap.String("type", event.EventType), zap.String("id", event.ID))
	return nil
}

func (p *RabbitMQ) Close() error {
	if err := p.ch.Close(); err != nil {
		p.logger.Warn("close rabbitmq channel", zap.Error(err))
	}
	return p.conn.Close()
}
