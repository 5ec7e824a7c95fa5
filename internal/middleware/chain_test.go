package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

// newChainRouter は本番と同じ順序でミドルウェアを組み立てたルーターを返す。
func newChainRouter(logger *slog.Logger, rec HTTPRecorder) *chi.Mux {
	r := chi.NewRouter()
	r.Use(NewRequestIDMiddleware())
	r.Use(NewMetricsMiddleware(rec))
	r.Use(NewLoggingMiddleware(logger))
	r.Use(NewRecoveryMiddleware())
	r.Use(NewSecurityHeadersMiddleware())
	r.Use(NewCORSMiddleware("http://localhost:3000"))
	return r
}

// TestMiddlewareChain_PanicIsLoggedAndCounted はpanicがリカバリされ、
// ログとメトリクスに500として記録されることを検証する。
func TestMiddlewareChain_PanicIsLoggedAndCounted(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	rec := &mockHTTPRecorder{}

	r := newChainRouter(logger, rec)
	r.Get("/vehicles", func(w http.ResponseWriter, r *http.Request) {
		panic("unexpected")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/vehicles", nil))

	if w.Result().StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Result().StatusCode)
	}
	if len(rec.records) != 1 || rec.records[0].status != http.StatusInternalServerError {
		t.Errorf("metrics records = %+v", rec.records)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON log: %v\nraw: %s", err, buf.String())
	}
	if entry["level"] != "ERROR" {
		t.Errorf("level = %v, want ERROR", entry["level"])
	}
	if entry["request_id"] == "" || entry["request_id"] == nil {
		t.Error("expected request_id in log entry")
	}
}

// TestMiddlewareChain_SetsResponseHeaders はチェーン全体で必要なヘッダーが付与されることを検証する。
func TestMiddlewareChain_SetsResponseHeaders(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	r := newChainRouter(logger, &mockHTTPRecorder{})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	h := w.Result().Header
	for _, name := range []string{RequestIDHeader, "X-Content-Type-Options", "Cache-Control", "Access-Control-Allow-Origin"} {
		if h.Get(name) == "" {
			t.Errorf("missing header %s", name)
		}
	}
}
