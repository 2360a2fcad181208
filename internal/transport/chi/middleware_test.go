package chi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kailas-cloud/reasoner/internal/domain/corpus"
	logpkg "github.com/kailas-cloud/reasoner/internal/logger"
)

func TestRecoverer_JSON500(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	h := Recoverer(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("POST", "/reason", http.NoBody))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if got := decodeError(t, rr).Code; got != ErrorCodeInternalError {
		t.Errorf("code = %q", got)
	}
	if logs.FilterMessage("panic recovered").Len() != 1 {
		t.Error("expected panic to be logged")
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	var ctxLoggerSet bool
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(zap.New(core)))
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		ctxLoggerSet = logpkg.FromContext(r.Context()).Core().Enabled(zapcore.InfoLevel)
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest("GET", "/ping", http.NoBody)
	req.Header.Set(chiMiddleware.RequestIDHeader, "req-123")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if got := rr.Header().Get(requestIDHeader); got != "req-123" {
		t.Errorf("X-Request-ID = %q, want req-123", got)
	}
	if !ctxLoggerSet {
		t.Error("handler should see the request logger in its context")
	}

	entries := logs.FilterMessage("http_request").All()
	if len(entries) != 1 {
		t.Fatalf("got %d http_request lines, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["request_id"] != "req-123" {
		t.Errorf("request_id = %v", fields["request_id"])
	}
	if fields["status"] != int64(http.StatusTeapot) {
		t.Errorf("status = %v", fields["status"])
	}
}

func TestHandler_FullStack(t *testing.T) {
	srv := newTestServer(t, corpus.Default(), 10)
	h := srv.Handler([]string{"secret"})

	rr := doRequest(t, h, "POST", "/reason", `{"query":"machine learning"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status without token = %d, want 401", rr.Code)
	}

	req := httptest.NewRequest("POST", "/reason", strings.NewReader(`{"query":"machine learning"}`))
	req.Header.Set("Authorization", "Bearer secret")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status with token = %d, want 200", rr.Code)
	}
	if rr.Header().Get(requestIDHeader) == "" {
		t.Error("expected generated request id header")
	}

	if rr := doRequest(t, h, "GET", "/health", ""); rr.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rr.Code)
	}
}
