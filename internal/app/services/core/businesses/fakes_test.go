package businesses

import (
	"bytes"
	"context"
	"errors"
	"io"
	"openhours-service/internal/app/models"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/dto/requests"
	"openhours-service/internal/pkg/lookup"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

func requestContext() context.Context {
	return context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "test-request-id")
}

type fakeSource struct {
	records []models.Business
	err     error
	// release, when set, blocks FindAll until it is closed
	release chan struct{}
	entered chan struct{}
	calls   int
}

func (f *fakeSource) Name() string {
	return "fake"
}

func (f *fakeSource) FindAll(ctx context.Context) ([]models.Business, error) {
	f.calls++
	if f.entered != nil {
		close(f.entered)
	}
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	// callers sanitize in place, hand out a copy
	records := make([]models.Business, len(f.records))
	copy(records, f.records)
	return records, nil
}

type fakeStore struct {
	mu       sync.Mutex
	saved    []*lookup.Snapshot
	snapshot *lookup.Snapshot
	saveErr  error
	loadErr  error
}

func (f *fakeStore) Save(ctx context.Context, snapshot *lookup.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, snapshot)
	return nil
}

func (f *fakeStore) Load(ctx context.Context) (*lookup.Snapshot, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.snapshot, nil
}

type fakeStorage struct {
	objects map[string][]byte
	putErr  error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (f *fakeStorage) PutObject(ctx context.Context, bucketName, objectName string, data []byte, contentType string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.objects[bucketName+"/"+objectName] = data
	return nil
}

func (f *fakeStorage) GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error) {
	data, ok := f.objects[bucketName+"/"+objectName]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

type fakeRedis struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeRedis) SetRaw(ctx context.Context, key string, value []byte, exp time.Duration) error {
	f.values[key] = string(value)
	f.ttls[key] = exp
	return nil
}

func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeRedis) Expire(ctx context.Context, key string, exp time.Duration) error {
	f.ttls[key] = exp
	return nil
}

func (f *fakeRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return false, errors.New("not used")
}

type fakeReloadQueue struct {
	published  []*requests.ReloadMessage
	publishErr error
}

func (f *fakeReloadQueue) Name() string {
	return "reload-test"
}

func (f *fakeReloadQueue) Publish(ctx context.Context, message *requests.ReloadMessage) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, message)
	return nil
}

func (f *fakeReloadQueue) Consume(ctx context.Context, consumerTag string) (<-chan amqp.Delivery, error) {
	return nil, errors.New("not used")
}

func (f *fakeReloadQueue) Cancel(consumerTag string) error {
	return nil
}

func (f *fakeReloadQueue) Close() error {
	return nil
}
