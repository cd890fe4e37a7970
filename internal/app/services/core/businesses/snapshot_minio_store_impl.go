package businesses

import (
	"context"
	"io"
	"openhours-service/internal/app/contracts"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/exceptions"
	"openhours-service/internal/pkg/lookup"
	"openhours-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// snapshotMinioStore archives every snapshot under its build time and
// overwrites a fixed latest object that Load reads back.
type snapshotMinioStore struct {
	Storage    contracts.Storage
	BucketName string
	Log        *zap.Logger
}

func NewSnapshotMinioStore(storage contracts.Storage, bucketName string, logger *zap.Logger) contracts.SnapshotStore {
	return &snapshotMinioStore{
		Storage:    storage,
		BucketName: bucketName,
		Log:        logger,
	}
}

func (s *snapshotMinioStore) Save(ctx context.Context, snapshot *lookup.Snapshot) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	objectName := utils.GenerateSnapshotObjectName(snapshot.BuiltAt)
	s.Log.Info("snapshotMinioStore.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, s.BucketName),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	data, err := json.Marshal(snapshot)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	for _, name := range []string{objectName, constvars.MinioSnapshotLatestObject} {
		err = s.Storage.PutObject(ctx, s.BucketName, name, data, constvars.MIMEApplicationJSON)
		if err != nil {
			s.Log.Error("snapshotMinioStore.Save error calling Storage.PutObject",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingObjectNameKey, name),
				zap.Error(err),
			)
			return err
		}
	}
	return nil
}

func (s *snapshotMinioStore) Load(ctx context.Context) (*lookup.Snapshot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("snapshotMinioStore.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, s.BucketName),
	)

	object, err := s.Storage.GetObject(ctx, s.BucketName, constvars.MinioSnapshotLatestObject)
	if err != nil {
		return nil, err
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, s.BucketName)
	}

	snapshot := &lookup.Snapshot{}
	if err := json.Unmarshal(data, snapshot); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return snapshot, nil
}
