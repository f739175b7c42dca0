package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubChecker struct{ err error }

func (s stubChecker) Ping(ctx context.Context) error { return s.err }

func doHealth(t *testing.T, checks HealthChecks) (*httptest.ResponseRecorder, healthResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	HealthHandler(checks)(w, r)

	var resp healthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	return w, resp
}

func TestHealthHandler_AllHealthy(t *testing.T) {
	w, resp := doHealth(t, HealthChecks{
		Redis:    stubChecker{},
		EventBus: stubChecker{},
		Uploader: stubChecker{},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp.Status != "ok" {
		t.Fatalf("expected status ok, got %q", resp.Status)
	}
}

func TestHealthHandler_RedisDown(t *testing.T) {
	w, resp := doHealth(t, HealthChecks{
		Redis:    stubChecker{err: errors.New("connection refused")},
		EventBus: stubChecker{},
		Uploader: stubChecker{},
	})

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	if resp.Status != "degraded" {
		t.Fatalf("expected degraded, got %q", resp.Status)
	}
	if resp.Redis != "unreachable" {
		t.Fatalf("expected redis unreachable, got %q", resp.Redis)
	}
	if resp.EventBus != "ok" {
		t.Fatalf("expected event bus ok, got %q", resp.EventBus)
	}
}

func TestHealthHandler_NilUploaderIsDisabledNotDegraded(t *testing.T) {
	w, resp := doHealth(t, HealthChecks{
		Redis:    stubChecker{},
		EventBus: stubChecker{},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp.Uploader != "disabled" {
		t.Fatalf("expected uploader disabled, got %q", resp.Uploader)
	}
}

func TestHealthHandler_EventBusDown(t *testing.T) {
	w, resp := doHealth(t, HealthChecks{
		Redis:    stubChecker{},
		EventBus: stubChecker{err: errors.New("bus closed")},
		Uploader: stubChecker{},
	})

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	if resp.EventBus != "unreachable" {
		t.Fatalf("expected event bus unreachable, got %q", resp.EventBus)
	}
}
