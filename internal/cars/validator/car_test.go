package validator

import (
	"errors"
	"testing"

	"carhire/pkg/logger"
	"carhire/pkg/model"
	"carhire/pkg/validation"
)

func validCar() *model.Car {
	return &model.Car{
		ID:           "3f1c2d9e-8a7b-4c6d-9e0f-1a2b3c4d5e6f",
		Slug:         "toyota-supra",
		Name:         "Toyota Supra",
		Category:     "Sports",
		Description:  "Twin-turbo coupe",
		Image:        "https://cdn.example.com/supra.jpg",
		Images:       []string{"/uploads/cars/supra-1.jpg", "./img/supra-2.jpg"},
		PricePerDay:  180,
		Seats:        2,
		Transmission: "automatic",
		FuelType:     "petrol",
		Luggage:      1,
		Doors:        2,
		Year:         2022,
		HasAC:        true,
		Available:    true,
	}
}

func TestCarValidator_Validate(t *testing.T) {
	v := NewCarValidator(logger.Discard())

	tests := []struct {
		name      string
		mutate    func(*model.Car)
		wantField string
	}{
		{"valid car", func(*model.Car) {}, ""},
		{"missing name", func(c *model.Car) { c.Name = "" }, "name"},
		{"zero price", func(c *model.Car) { c.PricePerDay = 0 }, "pricePerDay"},
		{"too many seats", func(c *model.Car) { c.Seats = 101 }, "seats"},
		{"zero doors", func(c *model.Car) { c.Doors = 0 }, "doors"},
		{"year out of range", func(c *model.Car) { c.Year = 1850 }, "year"},
		{"negative luggage", func(c *model.Car) { c.Luggage = -1 }, "luggage"},
		{"missing category", func(c *model.Car) { c.Category = "" }, "category"},
		{"bad image", func(c *model.Car) { c.Image = "javascript:alert(1)" }, "image"},
		{"bad gallery image", func(c *model.Car) { c.Images = []string{"ftp://x/y.jpg"} }, "images[0]"},
		{"empty slug", func(c *model.Car) { c.Slug = "" }, "slug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			car := validCar()
			tt.mutate(car)

			err := v.Validate(car)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			var verrs validation.ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %v", err)
			}
			found := false
			for _, e := range verrs {
				if e.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error on %q, got %v", tt.wantField, verrs)
			}
		})
	}
}
