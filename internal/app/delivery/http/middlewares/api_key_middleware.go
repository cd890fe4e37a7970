package middlewares

import (
	"context"
	"crypto/subtle"
	"net/http"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/exceptions"
	"openhours-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// RequireSuperadminAPIKey lets a request through only when its x-api-key
// header equals the configured key exactly. With no key configured every
// request is refused.
func (m *Middlewares) RequireSuperadminAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderXAPIKey)
		if apiKey == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyRequired(nil))
			return
		}

		expected := m.InternalConfig.App.SuperadminAPIKey
		if expected == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_API_KEY_AUTH_KEY, true)

		m.Log.Info("API Key authentication successful",
			zap.Any(constvars.LoggingRequestIDKey, r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY)),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
		)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
