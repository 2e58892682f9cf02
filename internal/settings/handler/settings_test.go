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

type mockSettingsService struct {
	getPricingFunc  func(ctx context.Context) (*model.PricingSettings, error)
	savePricingFunc func(ctx context.Context, settings *model.PricingSettings) (*model.PricingSettings, error)
	getWebsiteFunc  func(ctx context.Context) (*model.WebsiteSettings, error)
	saveWebsiteFunc func(ctx context.Context, update *model.WebsiteSettingsUpdate) (*model.WebsiteSettings, error)
}

func (m *mockSettingsService) GetPricing(ctx context.Context) (*model.PricingSettings, error) {
	if m.getPricingFunc != nil {
		return m.getPricingFunc(ctx)
	}
	return &model.PricingSettings{}, nil
}

func (m *mockSettingsService) SavePricing(ctx context.Context, settings *model.PricingSettings) (*model.PricingSettings, error) {
	if m.savePricingFunc != nil {
		return m.savePricingFunc(ctx, settings)
	}
	return settings, nil
}

func (m *mockSettingsService) GetWebsite(ctx context.Context) (*model.WebsiteSettings, error) {
	if m.getWebsiteFunc != nil {
		return m.getWebsiteFunc(ctx)
	}
	return &model.WebsiteSettings{}, nil
}

func (m *mockSettingsService) SaveWebsite(ctx context.Context, update *model.WebsiteSettingsUpdate) (*model.WebsiteSettings, error) {
	if m.saveWebsiteFunc != nil {
		return m.saveWebsiteFunc(ctx, update)
	}
	return &model.WebsiteSettings{WebsiteName: update.WebsiteName}, nil
}

func requireToken(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next(w, r, ps)
	}
}

func newTestRouter(svc *mockSettingsService) *httprouter.Router {
	router := httprouter.New()
	NewSettingsHandler(svc, logger.Discard()).RegisterRoutes(router, requireToken)
	return router
}

func TestSettingsHandler_GetIsPublic(t *testing.T) {
	router := newTestRouter(&mockSettingsService{
		getPricingFunc: func(context.Context) (*model.PricingSettings, error) {
			return &model.PricingSettings{TaxRate: 10, MaximumRentalDays: 30}, nil
		},
		getWebsiteFunc: func(context.Context) (*model.WebsiteSettings, error) {
			return &model.WebsiteSettings{WebsiteName: "Outback Wheels"}, nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/settings/pricing", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("pricing status = %d", w.Code)
	}
	var pricing struct {
		Data model.PricingSettings `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &pricing); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if pricing.Data.MaximumRentalDays != 30 {
		t.Errorf("maximumRentalDays = %d", pricing.Data.MaximumRentalDays)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/settings/website", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Outback Wheels") {
		t.Errorf("website status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestSettingsHandler_SaveRequiresAdmin(t *testing.T) {
	router := newTestRouter(&mockSettingsService{})

	for _, path := range []string{"/api/settings/pricing", "/api/settings/website"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, path, strings.NewReader(`{}`)))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", path, w.Code)
		}
	}
}

func TestSettingsHandler_SavePricing(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantError  string
	}{
		{"saved", `{"minimumRentalDays":2,"maximumRentalDays":14}`, nil, http.StatusOK, ""},
		{"malformed", `{"minimumRentalDays":`, nil, http.StatusBadRequest, "Invalid request body"},
		{
			"inverted range",
			`{"minimumRentalDays":20,"maximumRentalDays":14}`,
			apperrors.Validation("Minimum rental days cannot be greater than maximum rental days", nil),
			http.StatusBadRequest,
			"Minimum rental days cannot be greater than maximum rental days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&mockSettingsService{
				savePricingFunc: func(_ context.Context, settings *model.PricingSettings) (*model.PricingSettings, error) {
					if tt.svcErr != nil {
						return nil, tt.svcErr
					}
					return settings, nil
				},
			})

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPut, "/api/settings/pricing", strings.NewReader(tt.body))
			r.Header.Set("Authorization", "Bearer token")
			router.ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantError != "" && !strings.Contains(w.Body.String(), tt.wantError) {
				t.Errorf("body %s does not contain %q", w.Body.String(), tt.wantError)
			}
		})
	}
}

func TestSettingsHandler_SaveWebsite_PassesPresentFields(t *testing.T) {
	var got *model.WebsiteSettingsUpdate
	router := newTestRouter(&mockSettingsService{
		saveWebsiteFunc: func(_ context.Context, update *model.WebsiteSettingsUpdate) (*model.WebsiteSettings, error) {
			got = update
			return &model.WebsiteSettings{WebsiteName: update.WebsiteName}, nil
		},
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/api/settings/website",
		strings.NewReader(`{"websiteName":"Outback Wheels","heroTitle":""}`))
	r.Header.Set("Authorization", "Bearer token")
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got.HeroTitle == nil || *got.HeroTitle != "" {
		t.Errorf("heroTitle should be present and empty, got %v", got.HeroTitle)
	}
	if got.HeroSubtitle != nil {
		t.Errorf("heroSubtitle should be absent, got %q", *got.HeroSubtitle)
	}
}
