package contracts

import (
	"context"
	"io"
)

type Storage interface {
	PutObject(ctx context.Context, bucketName, objectName string, data []byte, contentType string) error
	GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error)
}
