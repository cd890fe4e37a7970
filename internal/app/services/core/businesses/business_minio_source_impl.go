package businesses

import (
	"context"
	"openhours-service/internal/app/contracts"
	"openhours-service/internal/app/models"
	"openhours-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// businessMinioSource reads the same CSV layout as the file source, from an
// object in a bucket.
type businessMinioSource struct {
	Storage    contracts.Storage
	BucketName string
	ObjectName string
	Log        *zap.Logger
}

func NewBusinessMinioSource(storage contracts.Storage, bucketName, objectName string, logger *zap.Logger) contracts.BusinessSource {
	return &businessMinioSource{
		Storage:    storage,
		BucketName: bucketName,
		ObjectName: objectName,
		Log:        logger,
	}
}

func (src *businessMinioSource) Name() string {
	return constvars.IndexSourceMinio
}

func (src *businessMinioSource) FindAll(ctx context.Context) ([]models.Business, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	src.Log.Info("businessMinioSource.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, src.BucketName),
		zap.String(constvars.LoggingObjectNameKey, src.ObjectName),
	)

	object, err := src.Storage.GetObject(ctx, src.BucketName, src.ObjectName)
	if err != nil {
		src.Log.Error("businessMinioSource.FindAll error calling Storage.GetObject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	defer object.Close()

	result, err := decodeBusinessesCSV(object, src.BucketName+"/"+src.ObjectName)
	if err != nil {
		src.Log.Error("businessMinioSource.FindAll error decoding csv",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	src.Log.Info("businessMinioSource.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBusinessCountKey, len(result)),
	)
	return result, nil
}
