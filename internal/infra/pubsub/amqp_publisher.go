package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"academia/internal/domain/service"
	"academia/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpPublisher implements EventPublisher over a durable RabbitMQ queue.
type amqpPublisher struct {
	queue  string
	logger *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewAMQPPublisher dials the broker and declares the durable target queue.
func NewAMQPPublisher(url, queue string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial amqp broker")
	}

	p := &amqpPublisher{queue: queue, logger: logger, conn: conn}
	if err := p.openChannel(); err != nil {
		_ = conn.Close()

		return nil, err
	}

	return p, nil
}

// openChannel must be called with mu held or before the publisher is shared.
func (p *amqpPublisher) openChannel() error {
	ch, err := p.conn.Channel()
	if err != nil {
		return errors.Wrap(err, "failed to open amqp channel")
	}

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()

		return errors.Wrapf(err, "failed to declare queue %s", p.queue)
	}
	p.ch = ch

	return nil
}

// Publish sends the event as a persistent JSON message to the queue.
func (p *amqpPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		if err := p.openChannel(); err != nil {
			return err
		}
	}

	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		Timestamp:     time.Now().UTC(),
		Type:          string(event.Type),
		CorrelationId: event.RequestID,
		Headers:       headers,
		Body:          body,
	})
	if err != nil {
		return errors.Wrap(err, "failed to publish amqp message")
	}

	p.logger.DebugContext(ctx, "[AMQP] Event published",
		slog.String("queue", p.queue),
		slog.String("type", string(event.Type)),
	)

	return nil
}

// Close closes the channel and the connection.
func (p *amqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil && !p.ch.IsClosed() {
		_ = p.ch.Close()
	}

	return errors.WithStack(p.conn.Close())
}
