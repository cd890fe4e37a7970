package utils

import (
	"fmt"
	"openhours-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSnapshotObjectName(builtAt time.Time) string {
	return fmt.Sprintf(constvars.MinioSnapshotObjectFormat, builtAt.Unix())
}
