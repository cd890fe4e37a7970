package businesses

import (
	"context"
	"errors"
	"net/http"
	"openhours-service/internal/app/contracts"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/dto/requests"
	"openhours-service/internal/pkg/exceptions"
	"openhours-service/internal/pkg/utils"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type IndexController struct {
	Log          *zap.Logger
	IndexUsecase contracts.IndexUsecase
	// ReloadQueue is nil when RabbitMQ is disabled.
	ReloadQueue   contracts.ReloadQueue
	Timeout       time.Duration
	ReloadTimeout time.Duration
}

func NewIndexController(
	logger *zap.Logger,
	indexUsecase contracts.IndexUsecase,
	reloadQueue contracts.ReloadQueue,
	timeout time.Duration,
	reloadTimeout time.Duration,
) *IndexController {
	return &IndexController{
		Log:           logger,
		IndexUsecase:  indexUsecase,
		ReloadQueue:   reloadQueue,
		Timeout:       timeout,
		ReloadTimeout: reloadTimeout,
	}
}

func (ctrl *IndexController) Snapshot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	result, err := ctrl.IndexUsecase.Snapshot(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetIndexSnapshotSuccessMessage, result)
}

// Reload rebuilds the index inline, or with async=true hands the work to
// whichever replica consumes the reload queue first.
func (ctrl *IndexController) Reload(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("IndexController.Reload called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.ReloadIndex{
		Async: r.URL.Query().Get(constvars.QueryParamAsync),
	}
	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	async, _ := strconv.ParseBool(request.Async)

	if async {
		ctrl.enqueueReload(w, r, requestID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.ReloadTimeout)
	defer cancel()

	result, err := ctrl.IndexUsecase.Reload(ctx, constvars.ReloadTriggerHTTP)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReloadIndexSuccessMessage, result)
}

func (ctrl *IndexController) enqueueReload(w http.ResponseWriter, r *http.Request, requestID string) {
	if ctrl.ReloadQueue == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReloadQueueDisabled(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	message := &requests.ReloadMessage{
		ID:          requestID,
		Trigger:     constvars.ReloadTriggerHTTP,
		RequestedAt: time.Now().UTC(),
	}
	err := ctrl.ReloadQueue.Publish(ctx, message)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.ReloadIndexQueuedMessage, message)
}

// Health reports ready once an index is being served.
func (ctrl *IndexController) Health(w http.ResponseWriter, r *http.Request) {
	status := ctrl.IndexUsecase.Status(r.Context())
	if !status.Ready {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrIndexNotReady(nil))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthyMessage, status)
}
