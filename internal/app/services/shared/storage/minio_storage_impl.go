package storage

import (
	"bytes"
	"context"
	"io"
	"openhours-service/internal/app/contracts"
	"openhours-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) PutObject(ctx context.Context, bucketName, objectName string, data []byte, contentType string) error {
	_, err := m.MinioClient.PutObject(
		ctx,
		bucketName,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return nil
}

// GetObject stats the object first so a missing key fails here rather than
// on the caller's first Read.
func (m *minioStorage) GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error) {
	object, err := m.MinioClient.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, bucketName)
	}

	if _, err := object.Stat(); err != nil {
		object.Close()
		return nil, exceptions.ErrMinioGetObject(err, bucketName)
	}

	return object, nil
}
