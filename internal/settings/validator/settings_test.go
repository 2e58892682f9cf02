package validator

import (
	"errors"
	"testing"

	"carhire/pkg/logger"
	"carhire/pkg/model"
	"carhire/pkg/validation"
)

func validPricing() *model.PricingSettings {
	return &model.PricingSettings{
		InsuranceRatePerDay: 25,
		DeliveryFlatRate:    75,
		MinimumRentalDays:   1,
		MaximumRentalDays:   30,
		TaxRate:             10,
	}
}

func TestSettingsValidator_ValidatePricing(t *testing.T) {
	v := NewSettingsValidator(logger.Discard())

	tests := []struct {
		name      string
		mutate    func(p *model.PricingSettings)
		wantErr   bool
		wantRange bool
	}{
		{"valid", func(*model.PricingSettings) {}, false, false},
		{"equal bounds", func(p *model.PricingSettings) { p.MinimumRentalDays, p.MaximumRentalDays = 7, 7 }, false, false},
		{"inverted bounds", func(p *model.PricingSettings) { p.MinimumRentalDays, p.MaximumRentalDays = 8, 7 }, true, true},
		{"zero minimum", func(p *model.PricingSettings) { p.MinimumRentalDays = 0 }, true, false},
		{"negative insurance", func(p *model.PricingSettings) { p.InsuranceRatePerDay = -1 }, true, false},
		{"tax over 100", func(p *model.PricingSettings) { p.TaxRate = 101 }, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPricing()
			tt.mutate(p)

			err := v.ValidatePricing(p)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePricing() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := errors.Is(err, ErrRentalDaysRange); got != tt.wantRange {
				t.Errorf("errors.Is(err, ErrRentalDaysRange) = %v, want %v", got, tt.wantRange)
			}
		})
	}
}

func TestSettingsValidator_ValidateWebsite(t *testing.T) {
	v := NewSettingsValidator(logger.Discard())

	hero := "https://cdn.example.com/hero.jpg"
	if err := v.ValidateWebsite(&model.WebsiteSettingsUpdate{
		WebsiteName: "Outback Wheels",
		Logo:        "/uploads/logo.png",
		HeroImage:   &hero,
		Stats:       &[]model.Stat{{Label: "Cars", Value: "50+"}},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := v.ValidateWebsite(&model.WebsiteSettingsUpdate{
		XURL:  "not a url",
		Stats: &[]model.Stat{{Label: "", Value: "1"}},
	})
	var verrs validation.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if len(verrs) != 2 {
		t.Errorf("expected 2 errors, got %d: %v", len(verrs), verrs)
	}
}
