// Package pricing holds the rental price estimator and the availability
// checker. Every function here is pure: no I/O and no clock reads.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"time"

	"carhire/pkg/model"
)

const dayMillis = 86_400_000

var (
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidRange    = errors.New("end date must be after start date")
	ErrRentalTooShort  = errors.New("rental is shorter than the minimum rental days")
	ErrRentalTooLong   = errors.New("rental is longer than the maximum rental days")
	ErrInvalidDayPrice = errors.New("price per day must be positive")
)

// ParseDate parses a calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// Days returns ceil((end - start) / 1 day), or 0 when end is not after start.
func Days(start, end time.Time) int {
	diff := end.Sub(start).Milliseconds()
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(float64(diff) / dayMillis))
}

// DaysBetween is Days over two YYYY-MM-DD strings.
func DaysBetween(startDate, endDate string) (int, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return 0, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return 0, err
	}
	return Days(start, end), nil
}

// Estimate prices a rental of exactly days days. A non-positive day count
// yields an invalid quote with a zero total.
func Estimate(pricePerDay int, days int, settings model.PricingSettings, includeInsurance, includeDelivery bool) model.Quote {
	q := model.Quote{Days: days, RequestedDays: days}
	if days <= 0 || pricePerDay <= 0 {
		q.Days = 0
		return q
	}

	q.Base = float64(pricePerDay) * float64(days)
	if settings.EnableInsurance && includeInsurance {
		q.Insurance = settings.InsuranceRatePerDay * float64(days)
	}
	if settings.EnableDelivery && includeDelivery {
		q.Delivery = settings.DeliveryFlatRate
	}
	q.Subtotal = q.Base + q.Insurance + q.Delivery
	if settings.EnableTax {
		q.Tax = q.Subtotal * settings.TaxRate / 100
	}
	q.Total = q.Subtotal + q.Tax
	q.Valid = true
	return q
}

// QuickEstimate is the display estimate: the requested length is clamped into
// [MinimumRentalDays, MaximumRentalDays] and Clamped reports whether it moved.
func QuickEstimate(pricePerDay int, startDate, endDate string, settings model.PricingSettings, includeInsurance, includeDelivery bool) (model.Quote, error) {
	requested, err := DaysBetween(startDate, endDate)
	if err != nil {
		return model.Quote{}, err
	}
	if requested <= 0 {
		return model.Quote{}, nil
	}

	days := requested
	if settings.MinimumRentalDays > 0 {
		days = max(days, settings.MinimumRentalDays)
	}
	if settings.MaximumRentalDays > 0 {
		days = min(days, settings.MaximumRentalDays)
	}

	q := Estimate(pricePerDay, days, settings, includeInsurance, includeDelivery)
	q.RequestedDays = requested
	q.Clamped = days != requested
	return q, nil
}

// BookingEstimate prices the exact chosen range and rejects ranges outside the
// configured rental length bounds instead of altering them.
func BookingEstimate(pricePerDay int, startDate, endDate string, settings model.PricingSettings, includeInsurance, includeDelivery bool) (model.Quote, error) {
	days, err := DaysBetween(startDate, endDate)
	if err != nil {
		return model.Quote{}, err
	}
	if days <= 0 {
		return model.Quote{}, ErrInvalidRange
	}
	if pricePerDay <= 0 {
		return model.Quote{}, ErrInvalidDayPrice
	}
	if settings.MinimumRentalDays > 0 && days < settings.MinimumRentalDays {
		return model.Quote{Days: days, RequestedDays: days}, fmt.Errorf("%w: %d < %d", ErrRentalTooShort, days, settings.MinimumRentalDays)
	}
	if settings.MaximumRentalDays > 0 && days > settings.MaximumRentalDays {
		return model.Quote{Days: days, RequestedDays: days}, fmt.Errorf("%w: %d > %d", ErrRentalTooLong, days, settings.MaximumRentalDays)
	}

	return Estimate(pricePerDay, days, settings, includeInsurance, includeDelivery), nil
}
