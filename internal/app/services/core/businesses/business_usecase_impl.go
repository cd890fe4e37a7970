package businesses

import (
	"context"
	"errors"
	"openhours-service/internal/app/contracts"
	"openhours-service/internal/app/models"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/dto/responses"
	"openhours-service/internal/pkg/exceptions"
	"openhours-service/internal/pkg/hours"
	"openhours-service/internal/pkg/lookup"
	"openhours-service/internal/pkg/metrics"
	"openhours-service/internal/pkg/utils"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

type UsecaseConfig struct {
	// Location is the zone every query time is converted to before lookup.
	Location *time.Location
	// Strict fails a reload on the first bad record instead of skipping it.
	Strict       bool
	StoreTimeout time.Duration
}

// BusinessUsecase serves queries from the current index and replaces that
// index on Reload. Readers never block: a reload builds a new index and
// swaps the pointer once it is complete.
type BusinessUsecase struct {
	Source         contracts.BusinessSource
	SnapshotStores []contracts.SnapshotStore
	Metrics        *metrics.Metrics
	Log            *zap.Logger
	Config         UsecaseConfig

	current  atomic.Pointer[lookup.Snapshot]
	reloadMu sync.Mutex
	now      func() time.Time
}

func NewBusinessUsecase(
	source contracts.BusinessSource,
	snapshotStores []contracts.SnapshotStore,
	appMetrics *metrics.Metrics,
	logger *zap.Logger,
	config UsecaseConfig,
) *BusinessUsecase {
	if config.Location == nil {
		config.Location = time.UTC
	}
	if config.StoreTimeout <= 0 {
		config.StoreTimeout = 10 * time.Second
	}
	return &BusinessUsecase{
		Source:         source,
		SnapshotStores: snapshotStores,
		Metrics:        appMetrics,
		Log:            logger,
		Config:         config,
		now:            time.Now,
	}
}

func (uc *BusinessUsecase) FindOpenAt(ctx context.Context, at time.Time) ([]string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("BusinessUsecase.FindOpenAt called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Time(constvars.LoggingQueryTimeKey, at),
	)

	snapshot := uc.current.Load()
	if snapshot == nil {
		uc.Log.Warn("BusinessUsecase.FindOpenAt index not loaded yet",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrIndexNotReady(nil)
	}

	result := snapshot.Index.OpenAt(at.In(uc.Config.Location))
	uc.Metrics.OpenAtQueries.Inc()

	uc.Log.Info("BusinessUsecase.FindOpenAt succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingOpenBusinessCountKey, len(result)),
	)
	return result, nil
}

// Reload reads every record from the source, parses them and swaps in the
// resulting index. Only one reload runs at a time; a concurrent call fails
// with ErrReloadInProgress instead of waiting.
func (uc *BusinessUsecase) Reload(ctx context.Context, trigger string) (*responses.ReloadReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("BusinessUsecase.Reload called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSourceKey, uc.Source.Name()),
	)

	if !uc.reloadMu.TryLock() {
		uc.Metrics.ObserveReload(trigger, metrics.ReloadOutcomeSkipped, 0)
		return nil, exceptions.ErrReloadInProgress(nil)
	}
	defer uc.reloadMu.Unlock()

	start := uc.now()
	report, snapshot, err := uc.build(ctx, requestID)
	if err != nil {
		uc.Metrics.ObserveReload(trigger, metrics.ReloadOutcomeFailure, uc.now().Sub(start))
		uc.Log.Error("BusinessUsecase.Reload failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.current.Store(snapshot)
	uc.Metrics.SetIndex(snapshot.Businesses, snapshot.Index.Entries(), snapshot.BuiltAt)
	uc.Metrics.RecordFailures.Add(float64(len(report.Failures)))

	report.Trigger = trigger
	report.DurationMs = uc.now().Sub(start).Milliseconds()
	uc.Metrics.ObserveReload(trigger, metrics.ReloadOutcomeSuccess, uc.now().Sub(start))

	uc.saveSnapshot(ctx, requestID, snapshot)

	uc.Log.Info("BusinessUsecase.Reload succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBusinessCountKey, report.Indexed),
		zap.Int(constvars.LoggingFailureCountKey, len(report.Failures)),
		zap.Int(constvars.LoggingIndexEntriesKey, report.Entries),
	)
	return report, nil
}

func (uc *BusinessUsecase) build(ctx context.Context, requestID string) (*responses.ReloadReport, *lookup.Snapshot, error) {
	records, err := uc.Source.FindAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	report := &responses.ReloadReport{
		Source:   uc.Source.Name(),
		Records:  len(records),
		Failures: []responses.RecordFailure{},
	}

	parsed := make([]lookup.Business, 0, len(records))
	for i := range records {
		business, err := parseBusiness(&records[i])
		if err != nil {
			if uc.Config.Strict {
				return nil, nil, err
			}
			uc.Log.Warn("BusinessUsecase.Reload skipping record",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBusinessNameKey, records[i].Name),
				zap.String(constvars.LoggingBusinessHoursKey, records[i].Hours),
				zap.Error(err),
			)
			report.Failures = append(report.Failures, responses.RecordFailure{
				Name:  records[i].Name,
				Hours: records[i].Hours,
				Error: failureMessage(err),
			})
			continue
		}
		parsed = append(parsed, business)
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	snapshot := lookup.NewSnapshot(lookup.Build(parsed), len(parsed), uc.now().UTC())
	report.Indexed = len(parsed)
	report.Entries = snapshot.Index.Entries()
	report.BuiltAt = snapshot.BuiltAt
	return report, snapshot, nil
}

func parseBusiness(record *models.Business) (lookup.Business, error) {
	utils.SanitizeBusiness(record)
	if err := utils.ValidateStruct(record); err != nil {
		return lookup.Business{}, exceptions.ErrInvalidBusinessRecord(err, record.Name)
	}

	parsed, err := hours.Parse(record.Hours)
	if err != nil {
		return lookup.Business{}, exceptions.ErrCannotParseBusinessHours(err, record.Name)
	}
	return lookup.Business{ID: record.Name, Hours: parsed}, nil
}

// failureMessage keeps the parser's own message, which points at the
// offending text, rather than the wrapper's.
func failureMessage(err error) string {
	var parseErr *hours.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Error()
	}
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.DevMessage
	}
	return err.Error()
}

// saveSnapshot writes to every store. A store that fails is logged and
// skipped; the new index is already serving.
func (uc *BusinessUsecase) saveSnapshot(ctx context.Context, requestID string, snapshot *lookup.Snapshot) {
	storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.Config.StoreTimeout)
	defer cancel()

	for _, store := range uc.SnapshotStores {
		if err := store.Save(storeCtx, snapshot); err != nil {
			uc.Log.Warn("BusinessUsecase.Reload could not save snapshot",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}
}

// WarmStart installs the first snapshot any store returns, unless an index
// is already loaded. It reports whether one was installed.
func (uc *BusinessUsecase) WarmStart(ctx context.Context) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("BusinessUsecase.WarmStart called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var errs []error
	for _, store := range uc.SnapshotStores {
		snapshot, err := store.Load(ctx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if snapshot == nil || snapshot.Index == nil {
			continue
		}
		if snapshot.Version != lookup.SnapshotVersion {
			uc.Log.Warn("BusinessUsecase.WarmStart ignoring snapshot of another version",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int("snapshot_version", snapshot.Version),
			)
			continue
		}

		if !uc.current.CompareAndSwap(nil, snapshot) {
			return false, nil
		}
		uc.Metrics.SetIndex(snapshot.Businesses, snapshot.Index.Entries(), snapshot.BuiltAt)
		uc.Log.Info("BusinessUsecase.WarmStart succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingBusinessCountKey, snapshot.Businesses),
			zap.Time(constvars.LoggingIndexBuiltAtKey, snapshot.BuiltAt),
		)
		return true, nil
	}
	return false, errors.Join(errs...)
}

func (uc *BusinessUsecase) Snapshot(ctx context.Context) (*lookup.Snapshot, error) {
	snapshot := uc.current.Load()
	if snapshot == nil {
		return nil, exceptions.ErrIndexNotReady(nil)
	}
	return snapshot, nil
}

func (uc *BusinessUsecase) Status(ctx context.Context) responses.IndexStatus {
	snapshot := uc.current.Load()
	if snapshot == nil {
		return responses.IndexStatus{}
	}
	return responses.IndexStatus{
		Ready:      true,
		Businesses: snapshot.Businesses,
		Entries:    snapshot.Index.Entries(),
		BuiltAt:    snapshot.BuiltAt,
	}
}
