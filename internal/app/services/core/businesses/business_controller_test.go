package businesses

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"openhours-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func loadedUsecase(t *testing.T) *BusinessUsecase {
	t.Helper()
	uc, _ := newTestUsecase(&fakeSource{records: fixtureRecords})
	_, err := uc.Reload(requestContext(), constvars.ReloadTriggerStartup)
	require.NoError(t, err)
	return uc
}

func TestBusinessControllerFindOpen(t *testing.T) {
	controller := NewBusinessController(zap.NewNop(), loadedUsecase(t), 10*time.Second)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantNames  []string
	}{
		{"Open Businesses", "?time=2025-05-14T12:00:00Z", http.StatusOK, []string{"Figulina", "Standard"}},
		{"Offset Timestamp", "?time=2025-05-14T14:00:00%2B02:00", http.StatusOK, []string{"Figulina", "Standard"}},
		{"Sub Second Precision", "?time=2025-05-12T22:00:00.5Z", http.StatusOK, []string{"Brodeto"}},
		{"Nobody Open", "?time=2025-05-16T03:00:00Z", http.StatusOK, []string{}},
		{"Missing Time", "", http.StatusBadRequest, nil},
		{"Not A Timestamp", "?time=tomorrow", http.StatusBadRequest, nil},
		{"Date Only", "?time=2025-05-14", http.StatusBadRequest, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/open"+tt.query, nil)
			req = req.WithContext(requestContext())
			rr := httptest.NewRecorder()

			controller.FindOpen(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			body := decodeEnvelope(t, rr)
			if tt.wantStatus != http.StatusOK {
				assert.False(t, body.Success)
				return
			}
			assert.True(t, body.Success)
			var names []string
			require.NoError(t, json.Unmarshal(body.Data, &names))
			assert.Equal(t, tt.wantNames, names)
		})
	}

	t.Run("Missing Request ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/open?time=2025-05-14T12:00:00Z", nil)
		rr := httptest.NewRecorder()

		controller.FindOpen(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("Index Not Ready", func(t *testing.T) {
		uc, _ := newTestUsecase(&fakeSource{})
		controller := NewBusinessController(zap.NewNop(), uc, 10*time.Second)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/open?time=2025-05-14T12:00:00Z", nil)
		req = req.WithContext(requestContext())
		rr := httptest.NewRecorder()

		controller.FindOpen(rr, req)
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}
