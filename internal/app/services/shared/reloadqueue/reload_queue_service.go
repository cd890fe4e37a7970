package reloadqueue

import (
	"context"
	"errors"
	"openhours-service/internal/app/contracts"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/dto/requests"
	"openhours-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Service owns one channel on which the reload queue is declared, published
// to and consumed from.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
}

// NewService declares the durable queue, sets QoS and enables publisher
// confirms on a fresh channel of conn.
func NewService(conn *amqp.Connection, log *zap.Logger, queueName string, prefetch int) (contracts.ReloadQueue, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		ch.Close()
		return nil, err
	}

	// a reload is heavy, never hand a consumer more than it asked for
	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		ch.Close()
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		ch.Close()
		return nil, err
	}

	return &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
	}, nil
}

func (s *Service) Name() string {
	return s.queueName
}

// Publish sends a persistent message and waits for the broker to confirm it.
func (s *Service) Publish(ctx context.Context, message *requests.ReloadMessage) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("ReloadQueue.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.queueName),
	)

	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		CorrelationId: message.ID,
		Timestamp:     message.RequestedAt,
		Body:          body,
		DeliveryMode:  amqp.Persistent,
	}

	confirmation, err := s.ch.PublishWithDeferredConfirmWithContext(ctx, "", s.queueName, false, false, msg)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}
	if !acked {
		return exceptions.ErrRabbitMQPublishMessage(errors.New("broker did not confirm the message"), s.queueName)
	}

	s.log.Info("ReloadQueue.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.queueName),
	)
	return nil
}

// Consume starts a manual-ack consumer. The returned channel closes when the
// consumer is cancelled or the channel dies.
func (s *Service) Consume(ctx context.Context, consumerTag string) (<-chan amqp.Delivery, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("ReloadQueue.Consume called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.queueName),
	)

	deliveries, err := s.ch.Consume(
		s.queueName,
		consumerTag,
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, exceptions.ErrRabbitMQConsume(err, s.queueName)
	}
	return deliveries, nil
}

func (s *Service) Cancel(consumerTag string) error {
	return s.ch.Cancel(consumerTag, false)
}

func (s *Service) Close() error {
	return s.ch.Close()
}
