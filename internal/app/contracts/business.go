package contracts

import (
	"context"
	"openhours-service/internal/app/models"
	"openhours-service/internal/pkg/dto/responses"
	"openhours-service/internal/pkg/lookup"
	"time"
)

// BusinessSource yields every business record an index is built from.
type BusinessSource interface {
	Name() string
	FindAll(ctx context.Context) ([]models.Business, error)
}

type BusinessUsecase interface {
	FindOpenAt(ctx context.Context, at time.Time) ([]string, error)
}

type IndexUsecase interface {
	Reload(ctx context.Context, trigger string) (*responses.ReloadReport, error)
	WarmStart(ctx context.Context) (bool, error)
	Snapshot(ctx context.Context) (*lookup.Snapshot, error)
	Status(ctx context.Context) responses.IndexStatus
}

// SnapshotStore persists built indexes so other instances, or this one after
// a restart, can serve queries before parsing the source again.
type SnapshotStore interface {
	Save(ctx context.Context, snapshot *lookup.Snapshot) error
	Load(ctx context.Context) (*lookup.Snapshot, error)
}
