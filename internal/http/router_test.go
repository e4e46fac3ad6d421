package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	languagemocks "langshare/internal/languages/mocks"
	"langshare/internal/models"
	"langshare/internal/shared/loggers"
	"langshare/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRouter_UserLanguages(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLanguageService := languagemocks.NewMockLanguageService(ctrl)
	logger, _ := loggers.New("error")
	router := NewRouter(mockLanguageService, logger)

	mockLanguageService.EXPECT().
		UserLanguages(gomock.Any(), "octocat").
		Return(&models.LanguageReport{
			Languages: []*models.LanguageShare{{Name: "Go", Count: 42, Share: 1}},
			Total:     42,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/languages/octocat/all", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, rr.Header().Get(headerRequestID), 26, "generated request id should be a ULID")

	var report models.LanguageReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, int64(42), report.Total)
	require.Len(t, report.Languages, 1)
	assert.Equal(t, "Go", report.Languages[0].Name)
	assert.Equal(t, 1.0, report.Languages[0].Share)
}

func TestRouter_UserLanguages_ServiceError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLanguageService := languagemocks.NewMockLanguageService(ctrl)
	logger, _ := loggers.New("error")
	router := NewRouter(mockLanguageService, logger)

	mockLanguageService.EXPECT().
		UserLanguages(gomock.Any(), "octocat").
		Return(nil, svcerrors.NewUnavailableError("LANG_9000", "github api unavailable", assert.AnError))

	req := httptest.NewRequest(http.MethodGet, "/languages/octocat/all", nil)
	req.Header.Set(headerRequestID, "req-1")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)

	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, "req-1", errorResponse.RequestID)
	assert.Equal(t, "unavailable", errorResponse.ErrorCategory)
	assert.Equal(t, "LANG_9000", errorResponse.ErrorCode)
}

func TestRouter_UnknownRouteAndMethod(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger, _ := loggers.New("error")
	router := NewRouter(languagemocks.NewMockLanguageService(ctrl), logger)

	tests := []struct {
		name         string
		method       string
		path         string
		expectedCode string
		expectedHTTP int
	}{
		{name: "unknown route", method: http.MethodGet, path: "/languages/octocat", expectedCode: "SYS_4040", expectedHTTP: http.StatusNotFound},
		{name: "wrong method", method: http.MethodPost, path: "/languages/octocat/all", expectedCode: "SYS_4050", expectedHTTP: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedHTTP, rr.Code)
			var errorResponse ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
			assert.Equal(t, tt.expectedCode, errorResponse.ErrorCode)
		})
	}
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger, _ := loggers.New("error")
	router := NewRouter(languagemocks.NewMockLanguageService(ctrl), logger)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "langshare_http_requests_total")
}
