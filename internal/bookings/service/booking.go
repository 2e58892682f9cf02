package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	bookingserrors "carhire/internal/bookings/errors"
	"carhire/internal/bookings/repository"
	"carhire/internal/bookings/validator"
	carserrors "carhire/internal/cars/errors"
	"carhire/internal/pricing"
	"carhire/pkg/cache"
	"carhire/pkg/config"
	apperrors "carhire/pkg/errors"
	"carhire/pkg/events"
	"carhire/pkg/metrics"
	"carhire/pkg/model"
	"carhire/pkg/sanitizer"
	"carhire/pkg/validation"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	lockTTL = 30 * time.Second

	// mongoUnauthorized is the server error code for a permission failure.
	mongoUnauthorized = 13
)

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error)
	ListByCar(ctx context.Context, carID string) ([]*model.Booking, error)
	UpdateStatus(ctx context.Context, id string, update *model.BookingStatusUpdate) (*model.Booking, error)
	Delete(ctx context.Context, id string) error
	History(ctx context.Context, id string) ([]*model.BookingEvent, error)

	Quote(ctx context.Context, req *model.QuoteRequest) (*model.Quote, error)
	UnavailableDates(ctx context.Context, carID string) ([]string, error)
	IsAvailable(ctx context.Context, carID string, date string) (bool, error)
	Export(ctx context.Context) ([]byte, error)
}

// CarFinder is the car lookup bookings need. The cars repository satisfies it.
type CarFinder interface {
	FindByID(ctx context.Context, id string) (*model.Car, error)
}

// PricingProvider returns the current pricing rules, defaults included.
type PricingProvider interface {
	GetPricing(ctx context.Context) (*model.PricingSettings, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	lockRepo  repository.BookingLockRepository
	eventRepo repository.BookingEventRepository
	cars      CarFinder
	pricing   PricingProvider
	validator *validator.BookingValidator
	cache     cache.Cache
	events    events.Publisher
	metrics   *metrics.Metrics
	cfg       *config.Config
	today     func() string
}

type Dependencies struct {
	Repo      repository.BookingRepository
	LockRepo  repository.BookingLockRepository
	EventRepo repository.BookingEventRepository
	Cars      CarFinder
	Pricing   PricingProvider
	Validator *validator.BookingValidator
	Cache     cache.Cache
	Events    events.Publisher
	Metrics   *metrics.Metrics
}

func NewBookingService(deps Dependencies, cfg *config.Config) BookingService {
	if deps.Cache == nil {
		deps.Cache = cache.Noop{}
	}
	if deps.Events == nil {
		deps.Events = events.Noop{}
	}
	return &bookingService{
		repo:      deps.Repo,
		lockRepo:  deps.LockRepo,
		eventRepo: deps.EventRepo,
		cars:      deps.Cars,
		pricing:   deps.Pricing,
		validator: deps.Validator,
		cache:     deps.Cache,
		events:    deps.Events,
		metrics:   deps.Metrics,
		cfg:       cfg,
		today:     cfg.Today,
	}
}

// Create validates and prices a public booking request, then inserts it under
// a per-car lock after checking the dates against the car's other bookings.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	s.applyDefaults(booking)
	s.sanitize(booking)
	if err := s.validate(booking); err != nil {
		return err
	}

	car, err := s.findCar(ctx, booking.CarID)
	if err != nil {
		return err
	}
	if !car.Available {
		return apperrors.Conflict("This car is currently unavailable for booking")
	}

	settings, err := s.pricing.GetPricing(ctx)
	if err != nil {
		return apperrors.Internal("Failed to load pricing settings", err)
	}

	quote, err := pricing.BookingEstimate(car.PricePerDay, booking.StartDate, booking.EndDate, *settings, booking.IncludeInsurance, booking.IncludeDelivery)
	if err != nil {
		return rentalLengthError(err, settings)
	}
	booking.CarName = car.Name
	booking.TotalPrice = quote.Total

	lockID, err := s.acquireCarLock(ctx, car.ID)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := s.releaseCarLock(ctx, lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release booking lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.verifyAvailability(sessCtx, booking); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, booking); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create booking",
			"car_id", booking.CarID,
			"start_date", booking.StartDate,
			"end_date", booking.EndDate,
			"error", err,
		)
		return createError(err)
	}

	s.invalidateAvailability(ctx, booking.CarID)
	s.publish(ctx, model.BookingEvent{
		Type:       model.EventBookingCreated,
		BookingID:  booking.ID,
		CarID:      booking.CarID,
		Status:     booking.Status,
		TotalPrice: booking.TotalPrice,
	})

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"car_id", booking.CarID,
		"start_date", booking.StartDate,
		"end_date", booking.EndDate,
		"total_price", booking.TotalPrice,
	)
	return nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapBookingError(err, "Failed to retrieve booking", id)
	}

	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		var err error
		count, err = s.repo.Count(ctx)
		if err != nil {
			s.cfg.Log.Error("Failed to count bookings", "error", err)
			errCount = apperrors.Internal("Failed to count bookings", err)
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		bookings, err = s.repo.FindAll(ctx, limit, offset)
		if err != nil {
			s.cfg.Log.Error("Failed to list bookings",
				"limit", limit,
				"offset", offset,
				"error", err,
			)
			errFind = apperrors.Internal("Failed to retrieve bookings", err)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

func (s *bookingService) ListByCar(ctx context.Context, carID string) ([]*model.Booking, error) {
	if carID == "" {
		return nil, apperrors.InvalidInput("Car ID cannot be empty")
	}

	bookings, err := s.repo.FindByCar(ctx, carID)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings for car", "car_id", carID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

// UpdateStatus moves a booking to any status. Transitions are not restricted.
func (s *bookingService) UpdateStatus(ctx context.Context, id string, update *model.BookingStatusUpdate) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	update.Status = strings.ToLower(strings.TrimSpace(update.Status))
	if err := s.validator.ValidateStatus(update); err != nil {
		return nil, invalidBookingData(err)
	}

	previous, err := s.repo.UpdateStatus(ctx, id, update.Status)
	if err != nil {
		return nil, s.mapBookingError(err, "Failed to update booking status", id)
	}

	updated := *previous
	updated.Status = update.Status

	s.invalidateAvailability(ctx, updated.CarID)
	s.publish(ctx, model.BookingEvent{
		Type:       model.EventBookingStatusChanged,
		BookingID:  updated.ID,
		CarID:      updated.CarID,
		Status:     updated.Status,
		PrevStatus: previous.Status,
		TotalPrice: updated.TotalPrice,
	})

	s.cfg.Log.Info("Booking status updated successfully",
		"id", id,
		"from", previous.Status,
		"to", updated.Status,
	)

	return &updated, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return s.mapBookingError(err, "Failed to delete booking", id)
	}

	s.invalidateAvailability(ctx, deleted.CarID)
	s.publish(ctx, model.BookingEvent{
		Type:      model.EventBookingDeleted,
		BookingID: deleted.ID,
		CarID:     deleted.CarID,
		Status:    deleted.Status,
	})

	s.cfg.Log.Info("Booking deleted successfully",
		"id", id,
		"car_id", deleted.CarID,
	)
	return nil
}

// History returns the audit trail of a booking, oldest first. The trail of a
// deleted booking is still returned.
func (s *bookingService) History(ctx context.Context, id string) ([]*model.BookingEvent, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	history, err := s.eventRepo.FindByBooking(ctx, id)
	if err != nil {
		s.cfg.Log.Error("Failed to get booking history", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve booking history", err)
	}
	return history, nil
}

func (s *bookingService) applyDefaults(booking *model.Booking) {
	booking.ID = uuid.NewString()
	booking.Status = model.StatusPending
	booking.CarName = ""
	booking.TotalPrice = 0
	booking.CreatedAt = time.Time{}
}

func (s *bookingService) sanitize(booking *model.Booking) {
	booking.CarID = strings.TrimSpace(booking.CarID)
	booking.StartDate = strings.TrimSpace(booking.StartDate)
	booking.EndDate = strings.TrimSpace(booking.EndDate)
	booking.FirstName = sanitizer.NormalizeName(booking.FirstName)
	booking.LastName = sanitizer.NormalizeName(booking.LastName)
	booking.Email = sanitizer.NormalizeEmail(booking.Email)
	booking.Phone = sanitizer.NormalizePhone(booking.Phone, s.cfg.PhoneRegion)
	booking.Address = sanitizer.TrimAndNormalize(booking.Address)
	booking.Notes = sanitizer.NormalizeText(booking.Notes)
}

func (s *bookingService) validate(booking *model.Booking) error {
	if err := s.validator.Validate(booking, s.today()); err != nil {
		s.cfg.Log.Warn("Booking validation failed",
			"car_id", booking.CarID,
			"start_date", booking.StartDate,
			"end_date", booking.EndDate,
			"error", err,
		)
		return invalidBookingData(err)
	}
	return nil
}

func (s *bookingService) findCar(ctx context.Context, carID string) (*model.Car, error) {
	car, err := s.cars.FindByID(ctx, carID)
	if err != nil {
		if errors.Is(err, carserrors.ErrNotFound) || errors.Is(err, carserrors.ErrInvalidID) {
			return nil, apperrors.NotFound("Car")
		}
		s.cfg.Log.Error("Failed to load car", "car_id", carID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve car", err)
	}
	return car, nil
}

// acquireCarLock serializes booking creation per car across instances. The
// lock document's unique _id makes a concurrent acquire fail.
func (s *bookingService) acquireCarLock(ctx context.Context, carID string) (string, error) {
	lockID := "booking_lock_" + carID
	now := time.Now().UTC()

	_, err := s.lockRepo.Create(ctx, &model.BookingLock{
		ID:        lockID,
		CarID:     carID,
		ExpiresAt: now.Add(lockTTL),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.Conflict("This car is currently being booked by another request. Please try again.")
		}
		return "", apperrors.Internal("Failed to acquire booking lock", err)
	}
	return lockID, nil
}

func (s *bookingService) releaseCarLock(ctx context.Context, lockID string) error {
	return s.lockRepo.Delete(context.WithoutCancel(ctx), lockID)
}

func (s *bookingService) verifyAvailability(ctx context.Context, booking *model.Booking) error {
	existing, err := s.repo.FindByCar(ctx, booking.CarID)
	if err != nil {
		return fmt.Errorf("failed to check availability: %w", err)
	}

	if pricing.RangeConflicts(existing, booking.StartDate, booking.EndDate) {
		return apperrors.Conflict("The selected dates are no longer available for this car. Please choose different dates.").
			WithDetails(map[string]any{"reason": bookingserrors.ErrDateConflict.Error()})
	}
	return nil
}

func (s *bookingService) mapBookingError(err error, msg string, id string) error {
	if errors.Is(err, bookingserrors.ErrNotFound) {
		return apperrors.NotFoundWithID("Booking", id)
	}
	if errors.Is(err, bookingserrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid booking ID format")
	}
	s.cfg.Log.Error(msg, "id", id, "error", err)
	return apperrors.Internal(msg, err)
}

func (s *bookingService) invalidateAvailability(ctx context.Context, carID string) {
	if err := s.cache.Delete(ctx, cache.Key(cache.PrefixAvailability, carID)); err != nil {
		s.cfg.Log.Warn("Failed to invalidate availability cache", "car_id", carID, "error", err)
	}
}

func (s *bookingService) publish(ctx context.Context, event model.BookingEvent) {
	event.ID = uuid.NewString()
	event.OccurredAt = time.Now().UTC()

	if err := s.events.PublishBooking(ctx, event); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event",
			"type", event.Type,
			"booking_id", event.BookingID,
			"error", err,
		)
	}
}

// createError turns a failed create into the message shown to the customer.
func createError(err error) error {
	if apperrors.IsAppError(err) {
		return err
	}

	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) && serverErr.HasErrorCode(mongoUnauthorized) {
		return apperrors.Forbidden("Permission denied. Please check your access rights and try again.")
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Wrap(err, apperrors.CodeUnavailable,
			"Network error. Please check your connection and try again.", http.StatusServiceUnavailable)
	}
	return apperrors.Internal("Failed to create booking: an unexpected error occurred. Please try again.", err)
}

func rentalLengthError(err error, settings *model.PricingSettings) error {
	switch {
	case errors.Is(err, pricing.ErrRentalTooShort), errors.Is(err, pricing.ErrRentalTooLong):
		return apperrors.Validation(
			fmt.Sprintf("Rental length must be between %d and %d days", settings.MinimumRentalDays, settings.MaximumRentalDays),
			map[string]any{"fields": map[string]any{"endDate": err.Error()}},
		)
	case errors.Is(err, pricing.ErrInvalidRange), errors.Is(err, pricing.ErrInvalidDate):
		return apperrors.Validation("Invalid booking data", map[string]any{
			"fields": map[string]any{"endDate": err.Error()},
		})
	default:
		return apperrors.Validation("Invalid booking data", map[string]any{"error": err.Error()})
	}
}

func invalidBookingData(err error) error {
	var verrs validation.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.Validation("Invalid booking data", verrs.Details())
	}
	return apperrors.Validation("Invalid booking data", map[string]any{
		"error": err.Error(),
	})
}
