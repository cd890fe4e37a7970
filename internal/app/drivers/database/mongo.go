package database

import (
	"context"
	"fmt"
	"net/url"
	"openhours-service/internal/app/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func NewMongoDB(ctx context.Context, driverConfig *config.DriverConfig) (*mongo.Client, error) {
	dbOptions := options.Client().ApplyURI(mongoURI(driverConfig.MongoDB))
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo database: %w", err)
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping or test the connection to mongo database: %w", err)
	}
	return client, nil
}

func mongoURI(cfg config.MongoDB) string {
	host := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	if cfg.Username == "" {
		return fmt.Sprintf("mongodb://%s", host)
	}
	credentials := url.UserPassword(cfg.Username, cfg.Password)
	return fmt.Sprintf("mongodb://%s@%s", credentials.String(), host)
}
