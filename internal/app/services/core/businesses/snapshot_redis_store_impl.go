package businesses

import (
	"context"
	"openhours-service/internal/app/contracts"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/exceptions"
	"openhours-service/internal/pkg/lookup"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// snapshotRedisStore keeps the latest snapshot under one key, so a fresh
// replica can answer queries before it has parsed the source itself.
type snapshotRedisStore struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
	Log             *zap.Logger
}

func NewSnapshotRedisStore(redisRepository contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) contracts.SnapshotStore {
	return &snapshotRedisStore{
		RedisRepository: redisRepository,
		TTL:             ttl,
		Log:             logger,
	}
}

func (s *snapshotRedisStore) Save(ctx context.Context, snapshot *lookup.Snapshot) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("snapshotRedisStore.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, constvars.RedisKeyIndexSnapshot),
	)

	data, err := json.Marshal(snapshot)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.RedisRepository.SetRaw(ctx, constvars.RedisKeyIndexSnapshot, data, s.TTL)
	if err != nil {
		s.Log.Error("snapshotRedisStore.Save error calling RedisRepository.SetRaw",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// Load returns nil and no error when nothing is cached.
func (s *snapshotRedisStore) Load(ctx context.Context) (*lookup.Snapshot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("snapshotRedisStore.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, constvars.RedisKeyIndexSnapshot),
	)

	data, err := s.RedisRepository.Get(ctx, constvars.RedisKeyIndexSnapshot)
	if err != nil {
		s.Log.Error("snapshotRedisStore.Load error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	snapshot := &lookup.Snapshot{}
	if err := json.Unmarshal([]byte(data), snapshot); err != nil {
		s.Log.Error("snapshotRedisStore.Load error parsing JSON from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return snapshot, nil
}
