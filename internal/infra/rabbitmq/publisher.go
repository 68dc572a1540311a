package rabbitmq

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const extractionRoutingKey = "extraction.status"

type Publisher struct {
	channel  *amqp.Channel
	exchange string
}

func NewPublisher(conn *amqp.Connection, exchange string) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open publisher channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Publisher{channel: ch, exchange: exchange}, nil
}

func (p *Publisher) Close() error {
	return p.channel.Close()
}

// ExtractionPublisher emits one event per finished extraction, success or
// failure. Delivery is fire-and-forget from the request's point of view.
type ExtractionPublisher struct {
	pub        *Publisher
	routingKey string
}

func NewExtractionPublisher(pub *Publisher) *ExtractionPublisher {
	return &ExtractionPublisher{pub: pub, routingKey: extractionRoutingKey}
}

func (ep *ExtractionPublisher) PublishExtraction(ctx context.Context, msg []byte) error {
	return ep.pub.channel.PublishWithContext(ctx,
		ep.pub.exchange,
		ep.routingKey,
		false, false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         msg,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
		},
	)
}

// NoopPublisher is wired when no broker URL is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishExtraction(context.Context, []byte) error { return nil }
