package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── auth ─────────────────────────────────────────────────────────────────────

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		verify     bool
		verifyErr  error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no token",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Access Denied"}`,
		},
		{
			name:       "blank auth-token",
			headers:    map[string]string{"auth-token": "   "},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Access Denied"}`,
		},
		{
			name:       "token rejected",
			headers:    map[string]string{"auth-token": "forged"},
			verify:     true,
			verifyErr:  errors.New("signature is invalid"),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Invalid Token"}`,
		},
		{
			name:       "malformed authorization",
			headers:    map[string]string{"Authorization": "Basic abc"},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Invalid Token"}`,
		},
		{
			name:       "auth-token accepted",
			headers:    map[string]string{"auth-token": "good"},
			verify:     true,
			wantStatus: http.StatusOK,
			wantBody:   `{"user":"u1"}`,
		},
		{
			name:       "bearer fallback accepted",
			headers:    map[string]string{"Authorization": "Bearer good"},
			verify:     true,
			wantStatus: http.StatusOK,
			wantBody:   `{"user":"u1"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t)
			if tt.verify {
				token := strings.TrimPrefix(firstValue(tt.headers), "Bearer ")
				deps.tokens.EXPECT().VerifyToken(gomock.Any(), token).
					Return(models.Token{SignedString: token, UserID: "u1"}, tt.verifyErr)
			}

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				id, ok := utils.IdentityFromContext(r.Context())
				require.True(t, ok)
				utils.WriteJSON(w, map[string]string{"user": id.UserID}, http.StatusOK)
			})

			req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			assert.Equal(t, tt.wantStatus == http.StatusOK, called)
		})
	}
}

func firstValue(m map[string]string) string {
	for _, v := range m {
		return v
	}
	return ""
}

func TestTokenFromRequest_PrefersAuthTokenHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("auth-token", "primary")
	req.Header.Set("Authorization", "Bearer secondary")

	token, err := tokenFromRequest(req)

	require.NoError(t, err)
	assert.Equal(t, "primary", token)
}

func TestIdentity_MissingIsAccessDenied(t *testing.T) {
	_, err := identity(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, service.ErrAccessDenied)
}

// ── recovery ─────────────────────────────────────────────────────────────────

func TestWithRecovery(t *testing.T) {
	h, _ := newTestHandler(t)

	t.Run("panic becomes 500", func(t *testing.T) {
		panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		})

		rr := httptest.NewRecorder()
		assert.NotPanics(t, func() {
			h.withRecovery(panicking).ServeHTTP(rr, injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil)))
		})

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Internal Server Error"}`, rr.Body.String())
	})

	t.Run("abort handler is re-raised", func(t *testing.T) {
		aborting := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(http.ErrAbortHandler)
		})

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			h.withRecovery(aborting).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}

// ── trace id ─────────────────────────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	h, _ := newTestHandler(t)
	noop := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "x-trace-id reused", headers: map[string]string{"X-Trace-ID": "abc"}, want: "abc"},
		{name: "x-request-id reused", headers: map[string]string{"X-Request-ID": "req-1"}, want: "req-1"},
		{name: "too long is replaced", headers: map[string]string{"X-Trace-ID": strings.Repeat("a", 129)}},
		{name: "generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()

			h.withTraceID(noop).ServeHTTP(rr, req)

			got := rr.Header().Get("X-Trace-ID")
			if tt.want != "" {
				assert.Equal(t, tt.want, got)
				return
			}
			assert.Len(t, got, 36)
		})
	}
}

// ── logging ──────────────────────────────────────────────────────────────────

func TestWithLogging_WritesAccessEntry(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	teapot := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodPost, "/brew?x=1", nil)
	req.Header.Set("X-Trace-ID", "t-1")
	h.withTraceID(h.withLogging(teapot)).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "/brew?x=1", entry["uri"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "t-1", entry["trace_id"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
	assert.EqualValues(t, len("short and stout"), entry["size"])
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	n, err := w.Write([]byte("ok"))

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, http.StatusCreated, w.Status())
	assert.Equal(t, 2, w.size)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Same(t, rr, w.Unwrap())
}

// ── health & version ─────────────────────────────────────────────────────────

func TestHealthz(t *testing.T) {
	t.Run("store reachable", func(t *testing.T) {
		h, deps := newTestHandler(t)
		deps.pinger.EXPECT().Ping(gomock.Any()).Return(nil)

		rr := serve(h, http.MethodGet, "/healthz", nil, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	})

	t.Run("store down", func(t *testing.T) {
		h, deps := newTestHandler(t)
		deps.pinger.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

		rr := serve(h, http.MethodGet, "/healthz", nil, nil)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.JSONEq(t, `{"status":"unavailable"}`, rr.Body.String())
	})
}

func TestGetServerVersion(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")
	deps.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"))

	rr := serve(h, http.MethodGet, "/api/version", nil, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3", rr.Body.String())
	assert.Equal(t, "2026-10-01", rr.Header().Get("X-Build-Date"))
	assert.Equal(t, "abc123", rr.Header().Get("X-Build-Commit"))
}

// ── cors ─────────────────────────────────────────────────────────────────────

func TestCORS_Preflight(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/notes/addnote", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "auth-token")
	rr := httptest.NewRecorder()

	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
