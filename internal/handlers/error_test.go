package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandle_NoError(t *testing.T) {
	h := Handle(func(w http.ResponseWriter, r *http.Request) error {
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return nil
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %s", ct)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"status":"ok"}` {
		t.Errorf("Unexpected body %q", got)
	}
}

func TestHandle_TypedError(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	h := Handle(func(w http.ResponseWriter, r *http.Request) error {
		return fmt.Errorf("wrapped: %w", NewError(http.StatusNotFound, "Customer not found", cause))
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodDelete, "/api/users/9", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
	if rec.Body.String() != "Customer not found" {
		t.Errorf("Unexpected body %q", rec.Body.String())
	}
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain") {
		t.Errorf("Expected text/plain, got %s", rec.Header().Get("Content-Type"))
	}
}

func TestHandle_UntypedErrorHidesDetail(t *testing.T) {
	h := Handle(func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("password authentication failed for user app")
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Errorf("Internal error detail leaked to client: %q", rec.Body.String())
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewError(http.StatusInternalServerError, "Error adding customer", cause)

	if !errors.Is(err, cause) {
		t.Error("Expected error to unwrap to its cause")
	}
	if err.Error() != "Error adding customer: boom" {
		t.Errorf("Unexpected message %q", err.Error())
	}
	if NewError(http.StatusBadRequest, "bad", nil).Error() != "bad" {
		t.Error("Expected bare message without cause")
	}
}
