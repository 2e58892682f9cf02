package validator

import (
	"carhire/pkg/logger"
	"carhire/pkg/model"
	"carhire/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// ErrRentalDaysRange is returned when the minimum rental length exceeds the
// maximum.
var ErrRentalDaysRange = validation.ValidationError{
	Field:   "minimumRentalDays",
	Message: "Minimum rental days cannot be greater than maximum rental days",
}

type SettingsValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewSettingsValidator(log *logger.Logger) *SettingsValidator {
	v := validation.New(log)

	log.Info("Settings validator initialized successfully")

	return &SettingsValidator{
		validate: v,
		logger:   log,
	}
}

func (v *SettingsValidator) ValidatePricing(settings *model.PricingSettings) error {
	if err := validation.Struct(v.validate, settings); err != nil {
		return err
	}
	if settings.MinimumRentalDays > settings.MaximumRentalDays {
		return ErrRentalDaysRange
	}
	return nil
}

func (v *SettingsValidator) ValidateWebsite(update *model.WebsiteSettingsUpdate) error {
	return validation.Struct(v.validate, update)
}
