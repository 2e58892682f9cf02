package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "carhire/pkg/errors"
	"carhire/pkg/logger"
	"carhire/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockCarService struct {
	createFunc     func(ctx context.Context, in *model.CarCreate) (*model.Car, error)
	getByIDFunc    func(ctx context.Context, id string) (*model.Car, error)
	getBySlugFunc  func(ctx context.Context, slug string) (*model.Car, error)
	getAllFunc     func(ctx context.Context, filter model.CarFilter) ([]*model.Car, error)
	relatedFunc    func(ctx context.Context, id string) ([]*model.Car, error)
	categoriesFunc func(ctx context.Context) ([]string, error)
	updateFunc     func(ctx context.Context, id string, updates *model.CarUpdate) (*model.Car, error)
	duplicateFunc  func(ctx context.Context, id string) (*model.Car, error)
	deleteFunc     func(ctx context.Context, id string) error
}

func (m *mockCarService) Create(ctx context.Context, in *model.CarCreate) (*model.Car, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return &model.Car{ID: "new"}, nil
}

func (m *mockCarService) GetByID(ctx context.Context, id string) (*model.Car, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &model.Car{ID: id}, nil
}

func (m *mockCarService) GetBySlug(ctx context.Context, slug string) (*model.Car, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return &model.Car{Slug: slug}, nil
}

func (m *mockCarService) GetAll(ctx context.Context, filter model.CarFilter) ([]*model.Car, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx, filter)
	}
	return []*model.Car{}, nil
}

func (m *mockCarService) Related(ctx context.Context, id string) ([]*model.Car, error) {
	if m.relatedFunc != nil {
		return m.relatedFunc(ctx, id)
	}
	return []*model.Car{}, nil
}

func (m *mockCarService) Categories(ctx context.Context) ([]string, error) {
	if m.categoriesFunc != nil {
		return m.categoriesFunc(ctx)
	}
	return []string{}, nil
}

func (m *mockCarService) Update(ctx context.Context, id string, updates *model.CarUpdate) (*model.Car, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, updates)
	}
	return &model.Car{ID: id}, nil
}

func (m *mockCarService) Duplicate(ctx context.Context, id string) (*model.Car, error) {
	if m.duplicateFunc != nil {
		return m.duplicateFunc(ctx, id)
	}
	return &model.Car{ID: "copy"}, nil
}

func (m *mockCarService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func passThrough(next httprouter.Handle) httprouter.Handle {
	return next
}

func newTestRouter(svc *mockCarService) *httprouter.Router {
	h := &CarHandler{service: svc, log: logger.Discard()}
	router := httprouter.New()
	h.RegisterRoutes(router, passThrough)
	return router
}

func TestCarHandler_Routing(t *testing.T) {
	var called string
	svc := &mockCarService{
		getByIDFunc: func(_ context.Context, id string) (*model.Car, error) {
			called = "id:" + id
			return &model.Car{ID: id}, nil
		},
		getBySlugFunc: func(_ context.Context, slug string) (*model.Car, error) {
			called = "slug:" + slug
			return &model.Car{Slug: slug}, nil
		},
		relatedFunc: func(_ context.Context, id string) ([]*model.Car, error) {
			called = "related:" + id
			return []*model.Car{}, nil
		},
	}
	router := newTestRouter(svc)

	tests := []struct {
		path       string
		wantCalled string
		wantStatus int
	}{
		{"/api/cars/abc", "id:abc", http.StatusOK},
		{"/api/cars/by-slug/toyota-supra", "slug:toyota-supra", http.StatusOK},
		{"/api/cars/abc/related", "related:abc", http.StatusOK},
		{"/api/cars/abc/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			called = ""
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if called != tt.wantCalled {
				t.Errorf("called = %q, want %q", called, tt.wantCalled)
			}
		})
	}
}

func TestCarHandler_GetAll_ParsesFilter(t *testing.T) {
	var got model.CarFilter
	router := newTestRouter(&mockCarService{
		getAllFunc: func(_ context.Context, filter model.CarFilter) ([]*model.Car, error) {
			got = filter
			return []*model.Car{{ID: "1"}}, nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/api/cars?search=supra&category=Sports&seats=4&available=true&sort=newest", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if got.Search != "supra" || got.Category != "Sports" || got.Seats != 4 || got.Sort != "newest" {
		t.Errorf("unexpected filter %+v", got)
	}
	if got.Available == nil || !*got.Available {
		t.Error("expected available=true")
	}

	var body struct {
		Data []model.Car `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 1 {
		t.Errorf("expected 1 car, got %d", len(body.Data))
	}
}

func TestCarHandler_GetAll_BadSeats(t *testing.T) {
	router := newTestRouter(&mockCarService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cars?seats=many", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCarHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
	}{
		{"created", `{"name":"Toyota Supra","pricePerDay":180}`, nil, http.StatusCreated},
		{"invalid json", `{"name":`, nil, http.StatusBadRequest},
		{"validation error", `{"name":""}`, apperrors.Validation("Invalid car data", nil), http.StatusBadRequest},
		{"slug conflict", `{"name":"Toyota Supra"}`, apperrors.Conflict("exists"), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&mockCarService{
				createFunc: func(_ context.Context, in *model.CarCreate) (*model.Car, error) {
					if tt.svcErr != nil {
						return nil, tt.svcErr
					}
					return &model.Car{ID: "new", Name: in.Name}, nil
				},
			})

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/cars", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestCarHandler_DuplicateAndDelete(t *testing.T) {
	var duplicated, deleted string
	router := newTestRouter(&mockCarService{
		duplicateFunc: func(_ context.Context, id string) (*model.Car, error) {
			duplicated = id
			return &model.Car{ID: "copy"}, nil
		},
		deleteFunc: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/cars/car-1/duplicate", nil))
	if w.Code != http.StatusCreated || duplicated != "car-1" {
		t.Errorf("duplicate: status %d, id %q", w.Code, duplicated)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/cars/car-1", nil))
	if w.Code != http.StatusNoContent || deleted != "car-1" {
		t.Errorf("delete: status %d, id %q", w.Code, deleted)
	}
}

func TestCarHandler_Delete_NotFound(t *testing.T) {
	router := newTestRouter(&mockCarService{
		deleteFunc: func(_ context.Context, id string) error {
			return apperrors.NotFoundWithID("Car", id)
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/cars/abc", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `Car with ID \"abc\" not found`) {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestCarHandler_Categories(t *testing.T) {
	router := newTestRouter(&mockCarService{
		categoriesFunc: func(context.Context) ([]string, error) {
			return []string{"SUV", "Sports"}, nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/car-categories", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Data []string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 2 || body.Data[0] != "SUV" {
		t.Errorf("unexpected categories %v", body.Data)
	}
}
