package messaging

import (
	"fmt"
	"net/url"
	"openhours-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQ(driverConfig *config.DriverConfig) (*amqp091.Connection, error) {
	conn, err := amqp091.Dial(amqpURI(driverConfig.RabbitMQ))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitMQ: %w", err)
	}
	return conn, nil
}

func amqpURI(cfg config.RabbitMQ) string {
	uri := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(cfg.Username, cfg.Password),
		Host:   fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Path:   "/",
	}
	return uri.String()
}
