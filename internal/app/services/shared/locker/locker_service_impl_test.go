package locker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryRedis struct {
	mu      sync.Mutex
	values  map[string]string
	expires map[string]time.Duration
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{values: map[string]string{}, expires: map[string]time.Duration{}}
}

func (m *memoryRedis) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *memoryRedis) SetRaw(ctx context.Context, key string, value []byte, exp time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = string(value)
	m.expires[key] = exp
	return nil
}

func (m *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

func (m *memoryRedis) Expire(ctx context.Context, key string, exp time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expires[key] = exp
	return nil
}

func (m *memoryRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.values[key]; ok {
		return false, nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	m.values[key] = string(data)
	m.expires[key] = exp
	return true, nil
}

func TestLockService(t *testing.T) {
	ctx := context.Background()

	t.Run("Acquire And Release", func(t *testing.T) {
		repo := newMemoryRedis()
		locker := NewLockService(repo, zap.NewNop())

		acquired, value, err := locker.TryLock(ctx, "leader", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, value)

		require.NoError(t, locker.Unlock(ctx, "leader", value))
		assert.Empty(t, repo.values)
	})

	t.Run("Second Caller Is Refused", func(t *testing.T) {
		locker := NewLockService(newMemoryRedis(), zap.NewNop())

		acquired, _, err := locker.TryLock(ctx, "leader", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		acquired, value, err := locker.TryLock(ctx, "leader", time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, value)
	})

	t.Run("Unlock With Foreign Value", func(t *testing.T) {
		repo := newMemoryRedis()
		locker := NewLockService(repo, zap.NewNop())

		_, _, err := locker.TryLock(ctx, "leader", time.Minute)
		require.NoError(t, err)

		assert.Error(t, locker.Unlock(ctx, "leader", "someone-else"))
		assert.Contains(t, repo.values, "leader")
	})

	t.Run("Unlock Expired Lock", func(t *testing.T) {
		locker := NewLockService(newMemoryRedis(), zap.NewNop())
		assert.NoError(t, locker.Unlock(ctx, "leader", "gone"))
	})

	t.Run("Refresh Extends Expiration", func(t *testing.T) {
		repo := newMemoryRedis()
		locker := NewLockService(repo, zap.NewNop())

		_, value, err := locker.TryLock(ctx, "leader", time.Minute)
		require.NoError(t, err)

		require.NoError(t, locker.Refresh(ctx, "leader", value, 2*time.Minute))
		assert.Equal(t, 2*time.Minute, repo.expires["leader"])
	})

	t.Run("Refresh Lost Lock", func(t *testing.T) {
		repo := newMemoryRedis()
		locker := NewLockService(repo, zap.NewNop())

		assert.Error(t, locker.Refresh(ctx, "leader", "gone", time.Minute))

		_, _, err := locker.TryLock(ctx, "leader", time.Minute)
		require.NoError(t, err)
		assert.Error(t, locker.Refresh(ctx, "leader", "someone-else", time.Minute))
		assert.Equal(t, time.Minute, repo.expires["leader"])
	})
}
