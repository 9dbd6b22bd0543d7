package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/sims-navigation/backend/internal/api/handler"
)

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response %q: %v", w.Body.String(), err)
	}
	return body
}

func TestHealthHandler_Health(t *testing.T) {
	h := handler.NewHealthHandler()

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}
	want := map[string]any{"status": "api working"}
	if got := decodeBody(t, w); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// TestHealthHandler_IgnoresRequestInput verifies query strings, headers and
// bodies have no effect on the payload.
func TestHealthHandler_IgnoresRequestInput(t *testing.T) {
	h := handler.NewHealthHandler()

	plain := httptest.NewRecorder()
	h.Health(plain, httptest.NewRequest(http.MethodGet, "/", nil))

	req := httptest.NewRequest(http.MethodGet, "/?verbose=1&status=down", strings.NewReader(`{"status":"down"}`))
	req.Header.Set("Authorization", "Bearer nope")
	req.Header.Set("Content-Type", "application/json")
	noisy := httptest.NewRecorder()
	h.Health(noisy, req)

	if plain.Code != noisy.Code || plain.Body.String() != noisy.Body.String() {
		t.Fatalf("responses differ: %d %q vs %d %q",
			plain.Code, plain.Body.String(), noisy.Code, noisy.Body.String())
	}
}

func TestHealthHandler_Deterministic(t *testing.T) {
	h := handler.NewHealthHandler()

	var first string
	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		h.Health(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if i == 0 {
			first = w.Body.String()
			continue
		}
		if w.Body.String() != first {
			t.Fatalf("call %d: body %q differs from %q", i, w.Body.String(), first)
		}
	}
}

func TestHealthHandler_Routes(t *testing.T) {
	r := chi.NewRouter()
	r.Mount("/probe", handler.NewHealthHandler().Routes())

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   map[string]any
	}{
		{"get at mount point", http.MethodGet, "/probe", http.StatusOK, map[string]any{"status": "api working"}},
		{"get with trailing slash", http.MethodGet, "/probe/", http.StatusOK, map[string]any{"status": "api working"}},
		{"post not allowed", http.MethodPost, "/probe/", http.StatusMethodNotAllowed, map[string]any{"detail": "Method Not Allowed"}},
		{"unknown child", http.MethodGet, "/probe/deep", http.StatusNotFound, map[string]any{"detail": "Not Found"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, w.Code)
			}
			if got := decodeBody(t, w); !reflect.DeepEqual(got, tc.wantBody) {
				t.Fatalf("expected %v, got %v", tc.wantBody, got)
			}
		})
	}
}
