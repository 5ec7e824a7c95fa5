package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

// TestRequestIDMiddleware_GeneratesID はヘッダーがない場合にUUIDが生成されることを検証する。
func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	var ctxID string
	handler := NewRequestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = RequestIDFromContext(r.Context())
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	headerID := w.Result().Header.Get(RequestIDHeader)
	if _, err := uuid.Parse(headerID); err != nil {
		t.Errorf("generated id %q is not a UUID: %v", headerID, err)
	}
	if ctxID != headerID {
		t.Errorf("context id = %q, header id = %q", ctxID, headerID)
	}
}

// TestRequestIDMiddleware_PropagatesIncomingID は受信したIDがそのまま引き継がれることを検証する。
func TestRequestIDMiddleware_PropagatesIncomingID(t *testing.T) {
	var ctxID string
	handler := NewRequestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if ctxID != "abc-123" {
		t.Errorf("context id = %q, want abc-123", ctxID)
	}
	if got := w.Result().Header.Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("header id = %q, want abc-123", got)
	}
}

// TestRequestIDMiddleware_RejectsOversizedID は長すぎるIDが再生成されることを検証する。
func TestRequestIDMiddleware_RejectsOversizedID(t *testing.T) {
	handler := NewRequestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLength+1))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if _, err := uuid.Parse(w.Result().Header.Get(RequestIDHeader)); err != nil {
		t.Errorf("expected regenerated UUID: %v", err)
	}
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := RequestIDFromContext(req.Context()); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
