package config

import (
	"context"
	"errors"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Bootstrap carries the process wide dependencies. Optional drivers are nil
// when disabled.
type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	MongoDB        *mongo.Client
	Minio          *minio.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// WorkerStop if set will be called during Shutdown to gracefully stop background workers
	WorkerStop   func()
	ConsumerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	var errs []error

	if b.ConsumerStop != nil {
		b.ConsumerStop()
		b.Logger.Info("Successfully stopped reload consumer")
	}

	if b.WorkerStop != nil {
		b.WorkerStop()
		b.Logger.Info("Successfully stopped reload worker")
	}

	if b.RabbitMQ != nil {
		if err := b.RabbitMQ.Close(); err != nil {
			errs = append(errs, err)
		} else {
			b.Logger.Info("Successfully closing RabbitMQ")
		}
	}

	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			errs = append(errs, err)
		} else {
			b.Logger.Info("Successfully closing Redis")
		}
	}

	if b.MongoDB != nil {
		if err := b.MongoDB.Disconnect(ctx); err != nil {
			errs = append(errs, err)
		} else {
			b.Logger.Info("Successfully closing MongoDB")
		}
	}

	// Sync fails on stdout/stderr for some platforms; nothing to recover there.
	_ = b.Logger.Sync()

	return errors.Join(errs...)
}
