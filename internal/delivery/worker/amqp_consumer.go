package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"academia/config"
	"academia/internal/delivery"
	deliverycontext "academia/internal/delivery/context"
	"academia/internal/domain/service"
	"academia/internal/errors"
	"academia/internal/infra/pubsub"
	"academia/internal/usecase"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const (
	consumerTag      = "academia-worker"
	consumerPrefetch = 16
)

// amqpConsumer reads domain events from the durable queue the amqp publisher writes to.
type amqpConsumer struct {
	cfg     *config.EventsConfig
	logger  *slog.Logger
	eventUC usecase.EventUsecase

	mu   sync.Mutex
	conn *amqp.Connection
}

// ConsumerParams holds dependencies for the AMQP consumer
type ConsumerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	EventUC usecase.EventUsecase
}

// NewAMQPConsumer creates the queue consumer. It idles unless events.provider is amqp.
func NewAMQPConsumer(params ConsumerParams) delivery.Delivery {
	consumer := &amqpConsumer{
		cfg:     params.Cfg.Events,
		logger:  params.Logger,
		eventUC: params.EventUC,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return consumer.stop()
		},
	})

	return consumer
}

func (s *amqpConsumer) enabled() bool {
	return s.cfg != nil && s.cfg.Provider == pubsub.ProviderAMQP
}

// Serve consumes until the connection is closed.
func (s *amqpConsumer) Serve(ctx context.Context) error {
	if !s.enabled() {
		s.logger.Info("AMQP consumer disabled", slog.String("provider", providerName(s.cfg)))

		return nil
	}

	conn, err := amqp.Dial(s.cfg.AMQPURL)
	if err != nil {
		return errors.Wrap(err, "failed to dial amqp broker")
	}
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	ch, err := conn.Channel()
	if err != nil {
		return errors.Wrap(err, "failed to open amqp channel")
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(s.cfg.AMQPQueue, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "failed to declare queue %s", s.cfg.AMQPQueue)
	}
	if err := ch.Qos(consumerPrefetch, 0, false); err != nil {
		return errors.Wrap(err, "failed to set amqp prefetch")
	}

	deliveries, err := ch.ConsumeWithContext(ctx, s.cfg.AMQPQueue, consumerTag, false, false, false, false, nil)
	if err != nil {
		return errors.Wrap(err, "failed to start amqp consumer")
	}

	s.logger.Info("Starting AMQP consumer", slog.String("queue", s.cfg.AMQPQueue))

	for msg := range deliveries {
		s.handle(ctx, msg)
	}

	return nil
}

// handle acks processed messages, drops malformed ones and requeues the rest.
func (s *amqpConsumer) handle(ctx context.Context, msg amqp.Delivery) {
	var event service.DomainEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		s.logger.Error("[Worker] Failed to parse domain event", slog.Any("error", err))
		s.settle(msg.Nack(false, false))

		return
	}

	ctx, reqLogger := deliverycontext.WithRequestScope(ctx, s.logger,
		deliverycontext.ResolveRequestID(msg.CorrelationId, event.RequestID))

	if err := s.eventUC.HandleEvent(ctx, &event); err != nil {
		requeue := !errors.Is(err, usecase.ErrMalformedEvent)
		reqLogger.Error("[Worker] Failed to process domain event",
			slog.String("event_type", string(event.Type)),
			slog.Any("error", err),
			slog.Bool("requeue", requeue),
		)
		s.settle(msg.Nack(false, requeue))

		return
	}

	s.settle(msg.Ack(false))
}

func (s *amqpConsumer) settle(err error) {
	if err != nil {
		s.logger.Warn("[Worker] Failed to settle amqp delivery", slog.Any("error", err))
	}
}

func (s *amqpConsumer) stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil || s.conn.IsClosed() {
		return nil
	}
	s.logger.Info("Closing AMQP consumer")

	return errors.WithStack(s.conn.Close())
}

func providerName(cfg *config.EventsConfig) string {
	if cfg == nil {
		return pubsub.ProviderNone
	}

	return cfg.Provider
}
