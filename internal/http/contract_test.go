//go:build contract

package http

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/export"
	"github.com/guttosm/move-labels/internal/mocks"
	"github.com/guttosm/move-labels/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupContractRouter renders through the real label service; only storage
// is mocked.
func setupContractRouter(t *testing.T) *gin.Engine {
	t.Helper()

	boxes := &mocks.MockBoxService{}
	sizes := &mocks.MockLabelSizeService{}

	box := sampleBox()
	box.Items = []model.Item{{ID: "i1", Name: "Plates", Qty: 6}}
	boxes.On("List", mock.Anything, mock.Anything).Return([]*model.Box{box}, nil)
	boxes.On("GetMany", mock.Anything, []string{box.ID.Hex()}).Return([]*model.Box{box}, nil)
	boxes.On("GetMany", mock.Anything, mock.Anything).Return([]*model.Box{}, nil)
	sizes.On("Get", mock.Anything, "supvan-50x30").Return(&model.LabelSize{
		ID:            "supvan-50x30",
		Name:          "Supvan 50x30",
		WidthMm:       50,
		HeightMm:      30,
		Orientation:   "landscape",
		SafePaddingMm: 2,
		IsPreset:      true,
	}, nil)

	labels := service.NewLabelService(boxes, sizes, export.NewRegistry(), nil, 0)
	handler := NewHandler(boxes, sizes, labels, &mocks.MockBundleService{},
		WithBaseURL(BaseURLResolver{BaseURL: "https://move.example.com"}))

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	return NewRouter(handler, NewHealthHandler(), cfg)
}

// TestAPI_ContractCompliance validates that API responses match the documented contract.
func TestAPI_ContractCompliance(t *testing.T) {
	router := setupContractRouter(t)
	boxID := sampleBoxIDFrom(t, router)

	tests := []struct {
		name                string
		method              string
		path                string
		body                string
		expectedStatus      int
		expectedContentType string
		validateResponse    func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:                "GET /api/v1/boxes - Success 200",
			method:              http.MethodGet,
			path:                "/api/v1/boxes",
			expectedStatus:      http.StatusOK,
			expectedContentType: "application/json; charset=utf-8",
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

				assert.NotEmpty(t, resp.RequestID, "Response must include request_id")
				assert.NotZero(t, resp.Timestamp, "Response must include timestamp")

				boxes, ok := resp.Data.([]interface{})
				require.True(t, ok, "Data must be a list of boxes")
				require.Len(t, boxes, 1)

				box, ok := boxes[0].(map[string]interface{})
				require.True(t, ok)
				for _, field := range []string{"id", "shortCode", "roomCode", "room", "priority", "status", "items"} {
					assert.Contains(t, box, field)
				}
			},
		},
		{
			name:                "POST /api/v1/boxes - Error 400 Invalid JSON",
			method:              http.MethodPost,
			path:                "/api/v1/boxes",
			body:                `invalid json`,
			expectedStatus:      http.StatusBadRequest,
			expectedContentType: "application/json; charset=utf-8",
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.NotEmpty(t, resp.Message)
				assert.NotEmpty(t, resp.RequestID)
				assert.NotZero(t, resp.Timestamp)
			},
		},
		{
			name:                "POST /api/v1/boxes - Error 400 names the field",
			method:              http.MethodPost,
			path:                "/api/v1/boxes",
			body:                `{"room": "Kitchen", "priority": "asap"}`,
			expectedStatus:      http.StatusBadRequest,
			expectedContentType: "application/json; charset=utf-8",
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

				assert.Contains(t, resp.Details, "priority")
			},
		},
		{
			name:                "POST /api/v1/exports/csv - Success 200",
			method:              http.MethodPost,
			path:                "/api/v1/exports/csv",
			body:                `{"boxIds": ["` + boxID + `"]}`,
			expectedStatus:      http.StatusOK,
			expectedContentType: "text/csv; charset=utf-8",
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Regexp(t, `^attachment; filename=boxes-\d+\.csv$`, w.Header().Get("Content-Disposition"))

				records, err := csv.NewReader(bytes.NewReader(w.Body.Bytes())).ReadAll()
				require.NoError(t, err)
				require.Len(t, records, 2)
				assert.Equal(t, "short_code", records[0][1])
				assert.Equal(t, "BX-000042", records[1][1])
				assert.Equal(t, "https://move.example.com/box/BX-000042", records[1][4])
			},
		},
		{
			name:                "POST /api/v1/exports/pdf - Success 200",
			method:              http.MethodPost,
			path:                "/api/v1/exports/pdf",
			body:                `{"boxIds": ["` + boxID + `"], "labelSizeId": "supvan-50x30"}`,
			expectedStatus:      http.StatusOK,
			expectedContentType: "application/pdf",
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Regexp(t, `^attachment; filename=labels-\d+\.pdf$`, w.Header().Get("Content-Disposition"))
				assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
			},
		},
		{
			name:                "POST /api/v1/exports/pdf - Error 404 unknown boxes",
			method:              http.MethodPost,
			path:                "/api/v1/exports/pdf",
			body:                `{"boxIds": ["000000000000000000000000"], "labelSizeId": "supvan-50x30"}`,
			expectedStatus:      http.StatusNotFound,
			expectedContentType: "application/json; charset=utf-8",
		},
		{
			name:                "GET /healthz - Success 200",
			method:              http.MethodGet,
			path:                "/healthz",
			expectedStatus:      http.StatusOK,
			expectedContentType: "application/json; charset=utf-8",
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "ok", resp["status"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, bytes.NewReader([]byte(tt.body)))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, "Status code mismatch")
			assert.Equal(t, tt.expectedContentType, w.Header().Get("Content-Type"))
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "Response must include X-Request-ID header")

			if tt.validateResponse != nil {
				tt.validateResponse(t, w)
			}
		})
	}
}

// sampleBoxIDFrom reads the id of the listed box so export bodies reference it.
func sampleBoxIDFrom(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/boxes", nil))
	require.Equal(t, http.StatusOK, w.Code)

	boxes := decodeData[[]model.Box](t, w)
	require.NotEmpty(t, boxes)
	return boxes[0].ID.Hex()
}
