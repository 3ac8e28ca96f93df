package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/arc-portal/internal/config"
	"github.com/MKhiriev/arc-portal/internal/logger"
	"github.com/MKhiriev/arc-portal/internal/mock"
	"github.com/MKhiriev/arc-portal/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testID      = "64b7f0c2a1b2c3d4e5f60718"
	otherTestID = "64b7f0c2a1b2c3d4e5f60719"
)

// testMocks groups the service mocks behind a test handler.
type testMocks struct {
	clients     *mock.MockCollectionService
	sites       *mock.MockCollectionService
	attachments *mock.MockAttachmentService
	auth        *mock.MockAuthService
	appInfo     *mock.MockAppInfoService
}

func testConfig() config.StructuredConfig {
	cfg := config.StructuredConfig{}
	cfg.App.TokenDuration = time.Hour
	cfg.Storage.Files.MaxUploadBytes = 1024
	cfg.Server.HTTPAddress = ":0"
	return cfg
}

func newTestHandler(t *testing.T, cfg config.StructuredConfig) (*Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		clients:     mock.NewMockCollectionService(ctrl),
		sites:       mock.NewMockCollectionService(ctrl),
		attachments: mock.NewMockAttachmentService(ctrl),
		auth:        mock.NewMockAuthService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		Collections: map[string]service.CollectionService{
			service.ResourceClients: m.clients,
			service.ResourceSites:   m.sites,
		},
		AttachmentService: m.attachments,
		AuthService:       m.auth,
		AppInfoService:    m.appInfo,
	}

	return NewHandler(services, cfg, logger.Nop()), m
}

// serve sends one request through the full router.
func serve(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// requireMessage asserts the uniform error response.
func requireMessage(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, map[string]any{"message": message}, got)
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
