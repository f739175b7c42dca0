package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	wardrobedomain "github.com/ghuser/recount/services/wardrobe/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrItemNotFound", wardrobedomain.ErrItemNotFound, http.StatusNotFound},
		{"ErrNameRequired", wardrobedomain.ErrNameRequired, http.StatusBadRequest},
		{"ErrInvalidCategory", wardrobedomain.ErrInvalidCategory, http.StatusBadRequest},
		{"ErrUploadFailed", wardrobedomain.ErrUploadFailed, http.StatusBadGateway},
		{"ErrStoreUnavailable", wardrobedomain.ErrStoreUnavailable, http.StatusInternalServerError},
		{"wrapped ErrItemNotFound", fmt.Errorf("get item: %w", wardrobedomain.ErrItemNotFound), http.StatusNotFound},
		{"wrapped ErrInvalidCategory", fmt.Errorf("%w: %q", wardrobedomain.ErrInvalidCategory, "hat"), http.StatusBadRequest},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("redis down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_HideInternalErrors(t *testing.T) {
	HideInternalErrors(true)
	t.Cleanup(func() { HideInternalErrors(false) })

	t.Run("5xx masked", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, fmt.Errorf("%w: dial tcp 10.0.0.5:6379: refused", wardrobedomain.ErrStoreUnavailable))

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if body["error"] != http.StatusText(http.StatusInternalServerError) {
			t.Fatalf("internal detail leaked: %q", body["error"])
		}
	})

	t.Run("4xx passes through", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, wardrobedomain.ErrItemNotFound)

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if body["error"] != wardrobedomain.ErrItemNotFound.Error() {
			t.Fatalf("client error message lost: %q", body["error"])
		}
	})
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, wardrobedomain.ErrItemNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("response body missing 'error' key")
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, wardrobedomain.ErrItemNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
