package contracts

import (
	"context"
	"openhours-service/internal/pkg/dto/requests"

	amqp "github.com/rabbitmq/amqp091-go"
)

type ReloadQueue interface {
	Name() string
	Publish(ctx context.Context, message *requests.ReloadMessage) error
	Consume(ctx context.Context, consumerTag string) (<-chan amqp.Delivery, error)
	Cancel(consumerTag string) error
	Close() error
}
