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
	"time"

	"go.uber.org/zap"
)

type BusinessController struct {
	Log             *zap.Logger
	BusinessUsecase contracts.BusinessUsecase
	Timeout         time.Duration
}

func NewBusinessController(logger *zap.Logger, businessUsecase contracts.BusinessUsecase, timeout time.Duration) *BusinessController {
	return &BusinessController{
		Log:             logger,
		BusinessUsecase: businessUsecase,
		Timeout:         timeout,
	}
}

// FindOpen answers with the names of the businesses open at the RFC 3339
// instant given in the time query parameter.
func (ctrl *BusinessController) FindOpen(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("BusinessController.FindOpen called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.FindOpenBusinesses{
		Time: r.URL.Query().Get(constvars.QueryParamTime),
	}
	utils.SanitizeFindOpenBusinessesRequest(request)

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	at, err := time.Parse(time.RFC3339Nano, request.Time)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseTime(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	result, err := ctrl.BusinessUsecase.FindOpenAt(ctx, at)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BusinessController.FindOpen succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingOpenBusinessCountKey, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetOpenBusinessesSuccessMessage, result)
}
