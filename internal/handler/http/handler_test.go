package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Helpers ----

type testDeps struct {
	auth    *mock.MockAuthService
	tokens  *mock.MockTokenService
	notes   *mock.MockNoteService
	appInfo *mock.MockAppInfoService
	pinger  *mock.MockPinger
}

func testServerConfig() config.Server {
	return config.Server{
		HTTPAddress:    ":0",
		APIPrefix:      "/api",
		RequestTimeout: 5 * time.Second,
		AllowedOrigins: []string{"*"},
	}
}

func newTestHandler(t *testing.T) (*Handler, testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		auth:    mock.NewMockAuthService(ctrl),
		tokens:  mock.NewMockTokenService(ctrl),
		notes:   mock.NewMockNoteService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
		pinger:  mock.NewMockPinger(ctrl),
	}

	services := &service.Services{
		AuthService:    deps.auth,
		TokenService:   deps.tokens,
		NoteService:    deps.notes,
		AppInfoService: deps.appInfo,
	}

	return NewHandler(services, deps.pinger, testServerConfig(), logger.Nop()), deps
}

// expectToken makes the token service accept "good-token" for userID.
func (d testDeps) expectToken(userID string) {
	d.tokens.EXPECT().VerifyToken(gomock.Any(), "good-token").
		Return(models.Token{SignedString: "good-token", UserID: userID}, nil).AnyTimes()
}

func serve(h *Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func authHeader() map[string]string {
	return map[string]string{"auth-token": "good-token"}
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), "body: %s", rr.Body.String())
	return body
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}
