// Package validation holds the validator instance and custom tags shared by
// the car, booking and settings validators.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"carhire/pkg/logger"
	"carhire/pkg/model"

	"github.com/go-playground/validator/v10"
)

const (
	TagImageRef      = "image_ref"
	TagCalendarDate  = "calendar_date"
	TagBookingStatus = "booking_status"
	TagSlug          = "slug"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Details renders the errors as the "details" object of an error response.
func (v ValidationErrors) Details() map[string]any {
	fields := make(map[string]any, len(v))
	for _, err := range v {
		fields[err.Field] = err.Message
	}
	return map[string]any{"fields": fields}
}

// New returns a validator with the custom tags registered. Field names in
// errors are taken from the json tag.
func New(log *logger.Logger) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	tags := map[string]validator.Func{
		TagImageRef:      validateImageRef,
		TagCalendarDate:  validateCalendarDate,
		TagBookingStatus: validateBookingStatus,
		TagSlug:          validateSlug,
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatal("Failed to register validator", "tag", tag, "error", err)
		}
	}

	return v
}

// Struct validates s and translates validator errors into ValidationErrors.
func Struct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return Translate(validationErrs)
	}
	return err
}

// validateImageRef accepts an empty value, an absolute http(s) URL, or a
// relative path starting with "/", "./" or "../".
func validateImageRef(fl validator.FieldLevel) bool {
	ref := fl.Field().String()
	if ref == "" {
		return true
	}
	if isRelativeRef(ref) {
		return !strings.ContainsAny(ref, " \t\n")
	}
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func isRelativeRef(ref string) bool {
	if strings.HasPrefix(ref, "//") {
		return false
	}
	return strings.HasPrefix(ref, "/") || strings.HasPrefix(ref, "./") || strings.HasPrefix(ref, "../")
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	return slices.Contains(model.BookingStatuses, fl.Field().String())
}

func validateSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

func Translate(errs validator.ValidationErrors) ValidationErrors {
	validationErrors := make(ValidationErrors, 0, len(errs))

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			if err.Kind() == reflect.String || err.Kind() == reflect.Slice {
				message = fmt.Sprintf("%s must have at least %s characters or items", err.Field(), err.Param())
			} else {
				message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
			}
		case "max":
			if err.Kind() == reflect.String || err.Kind() == reflect.Slice {
				message = fmt.Sprintf("%s must have at most %s characters or items", err.Field(), err.Param())
			} else {
				message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
			}
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", err.Field())
		case "url":
			message = fmt.Sprintf("%s must be a valid URL", err.Field())
		case TagImageRef:
			message = fmt.Sprintf("%s must be an http(s) URL or a relative path", err.Field())
		case TagCalendarDate:
			message = fmt.Sprintf("%s must be a date in YYYY-MM-DD format", err.Field())
		case TagBookingStatus:
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), strings.Join(model.BookingStatuses, ", "))
		case TagSlug:
			message = fmt.Sprintf("%s must contain only lowercase letters, digits and single hyphens", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
