package validator

import (
	"carhire/internal/pricing"
	"carhire/pkg/logger"
	"carhire/pkg/model"
	"carhire/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validation.New(log)

	log.Info("Booking validator initialized successfully")

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

// Validate checks the booking fields and its date range. today is the current
// calendar date in the business timezone.
func (v *BookingValidator) Validate(booking *model.Booking, today string) error {
	if err := validation.Struct(v.validate, booking); err != nil {
		return err
	}

	var errs validation.ValidationErrors

	days, err := pricing.DaysBetween(booking.StartDate, booking.EndDate)
	if err != nil || days <= 0 {
		errs = append(errs, validation.ValidationError{
			Field:   "endDate",
			Message: "End date must be after start date",
		})
	}
	if booking.StartDate < today {
		errs = append(errs, validation.ValidationError{
			Field:   "startDate",
			Message: "Start date cannot be in the past",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (v *BookingValidator) ValidateStatus(update *model.BookingStatusUpdate) error {
	return validation.Struct(v.validate, update)
}

func (v *BookingValidator) ValidateQuote(req *model.QuoteRequest) error {
	return validation.Struct(v.validate, req)
}
