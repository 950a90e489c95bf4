package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	commonhttp "github.com/idyllic-labs/idyllic-api/internal/common/http"
	"github.com/idyllic-labs/idyllic-api/internal/common/logger"
	greetinghttp "github.com/idyllic-labs/idyllic-api/internal/greeting/http"
	"github.com/idyllic-labs/idyllic-api/internal/greeting/service"
)

type messageBody struct {
	Message string `json:"message"`
}

func setupHandler(t *testing.T) http.Handler {
	t.Helper()
	log, _ := logger.New("", "test", "info")
	errs := commonhttp.NewErrorHandler(log, false)
	return greetinghttp.NewHandler(service.NewGreetingService(), errs, log)
}

func TestGreetingHTTP_Welcome(t *testing.T) {
	h := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	var body messageBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "Welcome to Idyllic Python API!" {
		t.Errorf("unexpected message: %q", body.Message)
	}
}

func TestGreetingHTTP_HelloName(t *testing.T) {
	h := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/hello/World", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	var body messageBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "Hello, World!" {
		t.Errorf("unexpected message: %q", body.Message)
	}
}

func TestGreetingHTTP_HelloRawSegment(t *testing.T) {
	h := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/hello/jo123", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body messageBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "Hello, jo123!" {
		t.Errorf("unexpected message: %q", body.Message)
	}
}

func TestGreetingHTTP_HelloMissingName(t *testing.T) {
	h := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/hello/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestGreetingHTTP_UnmatchedPath(t *testing.T) {
	h := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestGreetingHTTP_UnmatchedPathWrongMethod(t *testing.T) {
	h := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/nope", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected unmatched path to win over method check with 404, got %d", rec.Code)
	}
}

func TestGreetingHTTP_RootMethodNotAllowed(t *testing.T) {
	h := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", rec.Code)
	}
}
