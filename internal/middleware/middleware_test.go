package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestAccessLog(t *testing.T) {
	buf := captureLogs(t)

	h := chimw.RequestID(AccessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Customer not found"))
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/users/3", nil))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("Expected one JSON log line, got %q", buf.String())
	}
	if line["level"] != "warn" {
		t.Errorf("Expected warn level for 404, got %v", line["level"])
	}
	if line["method"] != "DELETE" || line["path"] != "/api/users/3" {
		t.Errorf("Unexpected request fields %v", line)
	}
	if line["status"] != 404.0 || line["bytes"] != float64(len("Customer not found")) {
		t.Errorf("Unexpected response fields %v", line)
	}
	if id, _ := line["request_id"].(string); id == "" {
		t.Error("Expected request id to be logged")
	}
}

func TestAccessLog_ImplicitOK(t *testing.T) {
	buf := captureLogs(t)

	h := AccessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("Expected one JSON log line, got %q", buf.String())
	}
	if line["status"] != 200.0 || line["level"] != "info" {
		t.Errorf("Expected info line with status 200, got %v", line)
	}
}

func TestSecureHeaders(t *testing.T) {
	h := SecureHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	for k, v := range securityHeaders {
		if got := rec.Header().Get(k); got != v {
			t.Errorf("Expected %s=%q, got %q", k, v, got)
		}
	}
}
