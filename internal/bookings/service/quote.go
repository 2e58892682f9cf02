package service

import (
	"context"
	"errors"

	"carhire/internal/pricing"
	"carhire/pkg/cache"
	apperrors "carhire/pkg/errors"
	"carhire/pkg/model"
)

// Quote prices a date range for a car. Quick mode clamps the length into the
// configured bounds for display; booking mode rejects out-of-range lengths the
// same way Create does.
func (s *bookingService) Quote(ctx context.Context, req *model.QuoteRequest) (*model.Quote, error) {
	if req.Mode == "" {
		req.Mode = model.QuoteModeQuick
	}
	if err := s.validator.ValidateQuote(req); err != nil {
		return nil, apperrors.Validation("Invalid quote request", validationDetails(err))
	}

	car, err := s.findCar(ctx, req.CarID)
	if err != nil {
		return nil, err
	}

	settings, err := s.pricing.GetPricing(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to load pricing settings", err)
	}

	var quote model.Quote
	switch req.Mode {
	case model.QuoteModeBooking:
		quote, err = pricing.BookingEstimate(car.PricePerDay, req.StartDate, req.EndDate, *settings, req.IncludeInsurance, req.IncludeDelivery)
		if errors.Is(err, pricing.ErrInvalidRange) {
			quote, err = model.Quote{}, nil
		}
	default:
		quote, err = pricing.QuickEstimate(car.PricePerDay, req.StartDate, req.EndDate, *settings, req.IncludeInsurance, req.IncludeDelivery)
	}
	if err != nil {
		return nil, rentalLengthError(err, settings)
	}

	if s.metrics != nil {
		s.metrics.Quotes.WithLabelValues(req.Mode).Inc()
	}

	return &quote, nil
}

// UnavailableDates lists every date blocked by a non-cancelled booking of the
// car, sorted.
func (s *bookingService) UnavailableDates(ctx context.Context, carID string) ([]string, error) {
	car, err := s.findCar(ctx, carID)
	if err != nil {
		return nil, err
	}

	dates, err := cache.Fetch(ctx, s.cache, cache.Key(cache.PrefixAvailability, car.ID), s.cfg.CacheTTL, s.observe("availability"),
		func(ctx context.Context) ([]string, error) {
			bookings, err := s.repo.FindByCar(ctx, car.ID)
			if err != nil {
				return nil, err
			}
			return pricing.UnavailableDates(bookings), nil
		})
	if err != nil {
		s.cfg.Log.Error("Failed to compute unavailable dates", "car_id", carID, "error", err)
		return nil, apperrors.Internal("Failed to check availability", err)
	}

	return dates, nil
}

// IsAvailable checks the date against every booking span of the car directly,
// so spans longer than the expanded calendar still block their tail dates.
func (s *bookingService) IsAvailable(ctx context.Context, carID string, date string) (bool, error) {
	if _, err := pricing.ParseDate(date); err != nil {
		return false, apperrors.InvalidInput("invalid date parameter: " + date)
	}

	car, err := s.findCar(ctx, carID)
	if err != nil {
		return false, err
	}

	bookings, err := s.repo.FindByCar(ctx, car.ID)
	if err != nil {
		s.cfg.Log.Error("Failed to load bookings for availability", "car_id", carID, "date", date, "error", err)
		return false, apperrors.Internal("Failed to check availability", err)
	}

	return !pricing.IsDateUnavailable(bookings, date), nil
}

func (s *bookingService) observe(name string) cache.ObserveFunc {
	if s.metrics == nil {
		return nil
	}
	return func(hit bool, err error) {
		s.metrics.ObserveCache(name, hit, err)
	}
}

func validationDetails(err error) map[string]any {
	if appErr := apperrors.AsAppError(invalidBookingData(err)); appErr != nil {
		return appErr.Details
	}
	return nil
}
