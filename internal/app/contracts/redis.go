package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	SetRaw(ctx context.Context, key string, value []byte, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Expire(ctx context.Context, key string, exp time.Duration) error
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
}
