package validator

import (
	"carhire/pkg/logger"
	"carhire/pkg/model"
	"carhire/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type CarValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewCarValidator(log *logger.Logger) *CarValidator {
	v := validation.New(log)

	log.Info("Car validator initialized successfully")

	return &CarValidator{
		validate: v,
		logger:   log,
	}
}

// Validate checks a fully assembled car, after defaults and slug derivation.
func (v *CarValidator) Validate(car *model.Car) error {
	return validation.Struct(v.validate, car)
}
