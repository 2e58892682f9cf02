package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"carhire/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

func serve(h *HealthHandler, path string) *httptest.ResponseRecorder {
	router := httprouter.New()
	h.RegisterRoutes(router)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealth(t *testing.T) {
	h := NewHealthHandler(logger.Discard()).
		AddCheck("mongo", func(context.Context) error { return errors.New("down") })

	w := serve(h, "/health")
	if w.Code != http.StatusOK {
		t.Errorf("liveness must not depend on dependencies, got %d", w.Code)
	}
}

func TestReady(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		checks     map[string]CheckFunc
		wantStatus int
		wantChecks map[string]string
	}{
		{"all up", map[string]CheckFunc{"mongo": ok, "redis": ok}, http.StatusOK, map[string]string{"mongo": "ok", "redis": "ok"}},
		{"redis down", map[string]CheckFunc{"mongo": ok, "redis": down}, http.StatusServiceUnavailable, map[string]string{"mongo": "ok", "redis": "error"}},
		{"no checks", nil, http.StatusOK, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(logger.Discard())
			for name, check := range tt.checks {
				h.AddCheck(name, check)
			}

			w := serve(h, "/ready")
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var resp HealthResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			for name, want := range tt.wantChecks {
				if resp.Checks[name] != want {
					t.Errorf("check %s = %q, want %q", name, resp.Checks[name], want)
				}
			}
		})
	}
}
