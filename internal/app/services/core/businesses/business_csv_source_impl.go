package businesses

import (
	"context"
	"openhours-service/internal/app/contracts"
	"openhours-service/internal/app/models"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/exceptions"
	"os"

	"go.uber.org/zap"
)

type businessCSVSource struct {
	Path string
	Log  *zap.Logger
}

func NewBusinessCSVSource(path string, logger *zap.Logger) contracts.BusinessSource {
	return &businessCSVSource{
		Path: path,
		Log:  logger,
	}
}

func (src *businessCSVSource) Name() string {
	return constvars.IndexSourceCSV
}

func (src *businessCSVSource) FindAll(ctx context.Context) ([]models.Business, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	src.Log.Info("businessCSVSource.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFilePathKey, src.Path),
	)

	file, err := os.Open(src.Path)
	if err != nil {
		return nil, exceptions.ErrCSVReadRecords(err, src.Path)
	}
	defer file.Close()

	result, err := decodeBusinessesCSV(file, src.Path)
	if err != nil {
		src.Log.Error("businessCSVSource.FindAll error decoding csv",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	src.Log.Info("businessCSVSource.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBusinessCountKey, len(result)),
	)
	return result, nil
}
