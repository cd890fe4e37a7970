package reload

import (
	"context"
	"errors"
	"openhours-service/internal/app/contracts"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/exceptions"
	"openhours-service/internal/pkg/utils"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const fallbackCronSpec = "@hourly"

// Worker reloads the index on a cron schedule. With a locker only the
// replica holding the leader lock reloads on a given tick.
type Worker struct {
	log           *zap.Logger
	indexUsecase  contracts.IndexUsecase
	locker        contracts.LockerService
	spec          string
	reloadTimeout time.Duration
	lockTTL       time.Duration
	stop          chan struct{}
	cron          *cron.Cron
	runCtx        context.Context
	cancel        context.CancelFunc
}

// NewWorker builds a worker; locker may be nil when Redis is disabled.
func NewWorker(log *zap.Logger, indexUsecase contracts.IndexUsecase, locker contracts.LockerService, spec string, reloadTimeout, lockTTL time.Duration) *Worker {
	return &Worker{
		log:           log,
		indexUsecase:  indexUsecase,
		locker:        locker,
		spec:          spec,
		reloadTimeout: reloadTimeout,
		lockTTL:       lockTTL,
		stop:          make(chan struct{}),
	}
}

// Start schedules the reload job. An invalid spec falls back to hourly.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(w.spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("reload.worker: failed to schedule with provided cron spec; falling back",
			zap.String(constvars.LoggingCronSpecKey, w.spec),
			zap.String("fallback_cron_spec", fallbackCronSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(fallbackCronSpec, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
	w.log.Info("reload.worker: started", zap.String(constvars.LoggingCronSpecKey, w.spec))
}

// Stop cancels any in-flight reload and waits for it to return.
func (w *Worker) Stop() {
	select {
	case <-w.stop:
	default:
		close(w.stop)
	}
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ctx = utils.WithRequestID(ctx)
	requestID := utils.GetRequestID(ctx)
	ctx, cancel := context.WithTimeout(ctx, w.reloadTimeout)
	defer cancel()

	if w.locker != nil {
		acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyIndexLeaderLock, w.lockTTL)
		if err != nil {
			w.log.Warn("reload.worker: leader lock attempt failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return
		}
		if !acquired {
			w.log.Info("reload.worker: leader lock not acquired; another instance is reloading",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return
		}
		defer w.locker.Unlock(context.WithoutCancel(ctx), constvars.RedisKeyIndexLeaderLock, token)

		refreshCtx, cancelRefresh := context.WithCancel(ctx)
		defer cancelRefresh()
		go w.refreshLock(refreshCtx, token)
	}

	_, err := w.indexUsecase.Reload(ctx, constvars.ReloadTriggerCron)
	if err != nil {
		if isReloadInProgress(err) {
			w.log.Info("reload.worker: reload already running, skipping tick",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return
		}
		w.log.Warn("reload.worker: reload failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

// refreshLock extends the leader lock at half its TTL until ctx ends.
func (w *Worker) refreshLock(ctx context.Context, token string) {
	tick := time.NewTicker(w.lockTTL / 2)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if err := w.locker.Refresh(ctx, constvars.RedisKeyIndexLeaderLock, token, w.lockTTL); err != nil {
				w.log.Warn("reload.worker: failed to refresh leader lock TTL", zap.Error(err))
			}
		}
	}
}

func isReloadInProgress(err error) bool {
	var customErr *exceptions.CustomError
	return errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusConflict
}
