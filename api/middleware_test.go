package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(restore)
	return logs
}

func TestAccessLogMiddleware_LogsRouteTemplate(t *testing.T) {
	logs := observeLogs(t)

	router := mux.NewRouter()
	router.Use(requestIDMiddleware, accessLogMiddleware)
	router.HandleFunc("/api/v1/history/{symbol}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/history/BTC", nil))

	entries := logs.FilterMessage("Request served").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/api/v1/history/{symbol}", fields["route"])
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
	assert.Equal(t, rec.Header().Get(requestIDHeader), fields["request_id"])
}

func TestRecoveryMiddleware_LogsPanic(t *testing.T) {
	logs := observeLogs(t)

	handler := accessLogMiddleware(recoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/explode", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1, logs.FilterMessage("Handler panic").Len())

	served := logs.FilterMessage("Request served").All()
	require.Len(t, served, 1)
	assert.Equal(t, "/explode", served[0].ContextMap()["route"])
	assert.Equal(t, int64(http.StatusInternalServerError), served[0].ContextMap()["status"])
}

func TestRequestIDMiddleware_KeepsCallerID(t *testing.T) {
	var seen string
	handler := requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(requestIDHeader)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "caller-id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "caller-id", seen)
	assert.Equal(t, "caller-id", rec.Header().Get(requestIDHeader))
}
