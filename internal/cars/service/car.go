package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"time"

	carserrors "carhire/internal/cars/errors"
	"carhire/internal/cars/repository"
	"carhire/internal/cars/validator"
	"carhire/pkg/cache"
	"carhire/pkg/config"
	apperrors "carhire/pkg/errors"
	"carhire/pkg/events"
	"carhire/pkg/metrics"
	"carhire/pkg/model"
	"carhire/pkg/sanitizer"
	"carhire/pkg/validation"

	"github.com/google/uuid"
)

const (
	relatedLimit     = 3
	maxCopyAttempts  = 20
	copyNameSuffix   = " (Copy)"
	copySlugMaxIndex = 1000
)

type CarService interface {
	Create(ctx context.Context, in *model.CarCreate) (*model.Car, error)
	GetByID(ctx context.Context, id string) (*model.Car, error)
	GetBySlug(ctx context.Context, slug string) (*model.Car, error)
	GetAll(ctx context.Context, filter model.CarFilter) ([]*model.Car, error)
	Related(ctx context.Context, id string) ([]*model.Car, error)
	Categories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id string, updates *model.CarUpdate) (*model.Car, error)
	Duplicate(ctx context.Context, id string) (*model.Car, error)
	Delete(ctx context.Context, id string) error
}

type carService struct {
	repo      repository.CarRepository
	validator *validator.CarValidator
	cache     cache.Cache
	events    events.Publisher
	metrics   *metrics.Metrics
	cfg       *config.Config
	randIntn  func(n int) int
}

func NewCarService(
	repo repository.CarRepository,
	validator *validator.CarValidator,
	c cache.Cache,
	publisher events.Publisher,
	m *metrics.Metrics,
	cfg *config.Config,
) CarService {
	if c == nil {
		c = cache.Noop{}
	}
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &carService{
		repo:      repo,
		validator: validator,
		cache:     c,
		events:    publisher,
		metrics:   m,
		cfg:       cfg,
		randIntn:  rand.IntN,
	}
}

func (s *carService) Create(ctx context.Context, in *model.CarCreate) (*model.Car, error) {
	car := newCar(in)
	s.sanitize(car)

	if err := s.validator.Validate(car); err != nil {
		s.cfg.Log.Warn("Car validation failed",
			"name", car.Name,
			"error", err,
		)
		return nil, invalidCarData(err)
	}

	if err := s.repo.Create(ctx, car); err != nil {
		if errors.Is(err, carserrors.ErrDuplicateSlug) {
			return nil, apperrors.Conflict(fmt.Sprintf("A car with slug %q already exists", car.Slug))
		}
		s.cfg.Log.Error("Failed to create car",
			"name", car.Name,
			"slug", car.Slug,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to create car", err)
	}

	s.invalidate(ctx, car.ID, car.Slug)
	s.publish(ctx, model.EventCarCreated, car, "")

	s.cfg.Log.Info("Car created successfully",
		"id", car.ID,
		"slug", car.Slug,
	)

	return car, nil
}

func (s *carService) GetByID(ctx context.Context, id string) (*model.Car, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Car ID cannot be empty")
	}

	car, err := cache.Fetch(ctx, s.cache, cache.Key(cache.PrefixCarID, id), s.cfg.CacheTTL, s.observe("car"),
		func(ctx context.Context) (*model.Car, error) {
			return s.repo.FindByID(ctx, id)
		})
	if err != nil {
		return nil, s.mapLookupError(err, "Failed to get car by ID", "id", id)
	}

	return car, nil
}

func (s *carService) GetBySlug(ctx context.Context, slug string) (*model.Car, error) {
	if slug == "" {
		return nil, apperrors.InvalidInput("Car slug cannot be empty")
	}

	car, err := cache.Fetch(ctx, s.cache, cache.Key(cache.PrefixCarSlug, slug), s.cfg.CacheTTL, s.observe("car"),
		func(ctx context.Context) (*model.Car, error) {
			return s.repo.FindBySlug(ctx, slug)
		})
	if err != nil {
		return nil, s.mapLookupError(err, "Failed to get car by slug", "slug", slug)
	}

	return car, nil
}

func (s *carService) GetAll(ctx context.Context, filter model.CarFilter) ([]*model.Car, error) {
	switch filter.Sort {
	case "", model.SortRecommended, model.SortSeatsDesc, model.SortNewest:
	default:
		return nil, apperrors.InvalidInput(fmt.Sprintf("invalid sort parameter: %s", filter.Sort))
	}

	key := cache.QueryKey(cache.PrefixCarList, filterParams(filter))
	cars, err := cache.Fetch(ctx, s.cache, key, s.cfg.CacheTTL, s.observe("car_list"),
		func(ctx context.Context) ([]*model.Car, error) {
			return s.repo.FindAll(ctx, filter)
		})
	if err != nil {
		s.cfg.Log.Error("Failed to list cars",
			"search", filter.Search,
			"category", filter.Category,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to retrieve cars", err)
	}

	return cars, nil
}

func (s *carService) Related(ctx context.Context, id string) ([]*model.Car, error) {
	car, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	related, err := cache.Fetch(ctx, s.cache, cache.Key(cache.PrefixCarRelated, car.ID), s.cfg.CacheTTL, s.observe("car_related"),
		func(ctx context.Context) ([]*model.Car, error) {
			return s.repo.FindRelated(ctx, car.Category, car.ID, relatedLimit)
		})
	if err != nil {
		s.cfg.Log.Error("Failed to get related cars",
			"id", car.ID,
			"category", car.Category,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to retrieve related cars", err)
	}

	return related, nil
}

func (s *carService) Categories(ctx context.Context) ([]string, error) {
	categories, err := cache.Fetch(ctx, s.cache, cache.KeyCarCategories, s.cfg.CacheTTL, s.observe("car_categories"), s.repo.Categories)
	if err != nil {
		s.cfg.Log.Error("Failed to list car categories", "error", err)
		return nil, apperrors.Internal("Failed to retrieve car categories", err)
	}
	return categories, nil
}

func (s *carService) Update(ctx context.Context, id string, updates *model.CarUpdate) (*model.Car, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Car ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapLookupError(err, "Failed to check car existence", "id", id)
	}

	oldSlug := existing.Slug
	merged := mergeCarUpdates(existing, updates)
	s.sanitize(merged)

	if err := s.validator.Validate(merged); err != nil {
		s.cfg.Log.Warn("Car update validation failed",
			"id", id,
			"error", err,
		)
		return nil, invalidCarData(err)
	}

	if err := s.repo.Replace(ctx, merged); err != nil {
		if errors.Is(err, carserrors.ErrDuplicateSlug) {
			return nil, apperrors.Conflict(fmt.Sprintf("A car with slug %q already exists", merged.Slug))
		}
		return nil, s.mapLookupError(err, "Failed to update car", "id", id)
	}

	s.invalidate(ctx, merged.ID, oldSlug, merged.Slug)
	s.publish(ctx, model.EventCarUpdated, merged, "")

	s.cfg.Log.Info("Car updated successfully",
		"id", merged.ID,
		"slug", merged.Slug,
	)

	return merged, nil
}

// Duplicate copies a car under a new id. The copy's slug is the source slug
// plus "-copy-<n>", retried with a new n until no car uses it.
func (s *carService) Duplicate(ctx context.Context, id string) (*model.Car, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Car ID cannot be empty")
	}

	source, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapLookupError(err, "Failed to load car to duplicate", "id", id)
	}

	cp := *source
	cp.ID = uuid.NewString()
	cp.Name = source.Name + copyNameSuffix
	cp.Images = slices.Clone(source.Images)
	if cp.Images == nil {
		cp.Images = []string{}
	}

	for attempt := 0; attempt < maxCopyAttempts; attempt++ {
		slug := source.Slug + "-copy-" + strconv.Itoa(s.randIntn(copySlugMaxIndex))

		exists, err := s.repo.SlugExists(ctx, slug)
		if err != nil {
			s.cfg.Log.Error("Failed to check slug for duplicated car", "id", id, "slug", slug, "error", err)
			return nil, apperrors.Internal("Failed to duplicate car", err)
		}
		if exists {
			continue
		}

		cp.Slug = slug
		err = s.repo.Create(ctx, &cp)
		if errors.Is(err, carserrors.ErrDuplicateSlug) {
			continue
		}
		if err != nil {
			s.cfg.Log.Error("Failed to duplicate car", "id", id, "slug", slug, "error", err)
			return nil, apperrors.Internal("Failed to duplicate car", err)
		}

		s.invalidate(ctx, cp.ID, cp.Slug)
		s.publish(ctx, model.EventCarDuplicated, &cp, source.ID)

		s.cfg.Log.Info("Car duplicated successfully",
			"source_id", source.ID,
			"id", cp.ID,
			"slug", cp.Slug,
		)
		return &cp, nil
	}

	s.cfg.Log.Warn("Exhausted slug attempts while duplicating car", "id", id, "attempts", maxCopyAttempts)
	return nil, apperrors.Conflict("Could not generate a unique slug for the copy. Please try again.")
}

func (s *carService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Car ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, carserrors.ErrNotFound) || errors.Is(err, carserrors.ErrInvalidID) {
			return apperrors.NotFoundWithID("Car", id)
		}
		return apperrors.Internal("Failed to check car existence", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, carserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Car", id)
		}
		s.cfg.Log.Error("Failed to delete car",
			"id", id,
			"error", err,
		)
		return apperrors.Internal("Failed to delete car", err)
	}

	s.invalidate(ctx, id, existing.Slug)
	s.publish(ctx, model.EventCarDeleted, existing, "")

	s.cfg.Log.Info("Car deleted successfully",
		"id", id,
		"slug", existing.Slug,
	)

	return nil
}

func (s *carService) mapLookupError(err error, logMsg string, keysAndValues ...any) error {
	if errors.Is(err, carserrors.ErrNotFound) {
		return apperrors.NotFound("Car")
	}
	if errors.Is(err, carserrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid car ID format")
	}
	s.cfg.Log.Error(logMsg, append(keysAndValues, "error", err)...)
	return apperrors.Internal("Failed to retrieve car", err)
}

func (s *carService) sanitize(car *model.Car) {
	car.Name = sanitizer.NormalizeName(car.Name)
	car.Category = sanitizer.TrimAndNormalize(car.Category)
	car.Description = sanitizer.NormalizeText(car.Description)
	car.Transmission = sanitizer.TrimAndNormalize(car.Transmission)
	car.FuelType = sanitizer.TrimAndNormalize(car.FuelType)
	car.Image = sanitizer.TrimAndNormalize(car.Image)
	car.Images = sanitizer.NormalizeImages(car.Images)
	car.Slug = sanitizer.Slugify(car.Name)
}

// invalidate drops every cached view that may contain the car.
func (s *carService) invalidate(ctx context.Context, id string, slugs ...string) {
	keys := []string{cache.KeyCarCategories, cache.Key(cache.PrefixCarID, id)}
	for _, slug := range slugs {
		if slug != "" {
			keys = append(keys, cache.Key(cache.PrefixCarSlug, slug))
		}
	}

	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.cfg.Log.Warn("Failed to invalidate car cache", "id", id, "error", err)
	}
	for _, prefix := range []string{cache.PrefixCarList, cache.PrefixCarRelated} {
		if err := s.cache.DeletePrefix(ctx, prefix); err != nil {
			s.cfg.Log.Warn("Failed to invalidate car cache", "prefix", prefix, "error", err)
		}
	}
}

func (s *carService) publish(ctx context.Context, eventType string, car *model.Car, sourceID string) {
	event := model.CarEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		CarID:      car.ID,
		Slug:       car.Slug,
		SourceID:   sourceID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.events.PublishCar(ctx, event); err != nil {
		s.cfg.Log.Warn("Failed to publish car event",
			"type", eventType,
			"car_id", car.ID,
			"error", err,
		)
	}
}

func (s *carService) observe(name string) cache.ObserveFunc {
	if s.metrics == nil {
		return nil
	}
	return func(hit bool, err error) {
		s.metrics.ObserveCache(name, hit, err)
	}
}

func newCar(in *model.CarCreate) *model.Car {
	car := &model.Car{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Category:     in.Category,
		Description:  in.Description,
		Image:        in.Image,
		Images:       in.Images,
		PricePerDay:  in.PricePerDay,
		Seats:        in.Seats,
		Transmission: in.Transmission,
		FuelType:     in.FuelType,
		Luggage:      in.Luggage,
		Doors:        in.Doors,
		Year:         in.Year,
		HasGPS:       in.HasGPS,
		HasBluetooth: in.HasBluetooth,
		HasAC:        true,
		HasUSB:       in.HasUSB,
		Available:    true,
	}
	if in.HasAC != nil {
		car.HasAC = *in.HasAC
	}
	if in.Available != nil {
		car.Available = *in.Available
	}
	return car
}

func mergeCarUpdates(existing *model.Car, updates *model.CarUpdate) *model.Car {
	merged := *existing

	if updates.Name != nil {
		merged.Name = *updates.Name
	}
	if updates.Category != nil {
		merged.Category = *updates.Category
	}
	if updates.Description != nil {
		merged.Description = *updates.Description
	}
	if updates.Image != nil {
		merged.Image = *updates.Image
	}
	if updates.Images != nil {
		merged.Images = *updates.Images
	}
	if updates.PricePerDay != nil {
		merged.PricePerDay = *updates.PricePerDay
	}
	if updates.Seats != nil {
		merged.Seats = *updates.Seats
	}
	if updates.Transmission != nil {
		merged.Transmission = *updates.Transmission
	}
	if updates.FuelType != nil {
		merged.FuelType = *updates.FuelType
	}
	if updates.Luggage != nil {
		merged.Luggage = *updates.Luggage
	}
	if updates.Doors != nil {
		merged.Doors = *updates.Doors
	}
	if updates.Year != nil {
		merged.Year = *updates.Year
	}
	if updates.HasGPS != nil {
		merged.HasGPS = *updates.HasGPS
	}
	if updates.HasBluetooth != nil {
		merged.HasBluetooth = *updates.HasBluetooth
	}
	if updates.HasAC != nil {
		merged.HasAC = *updates.HasAC
	}
	if updates.HasUSB != nil {
		merged.HasUSB = *updates.HasUSB
	}
	if updates.Available != nil {
		merged.Available = *updates.Available
	}

	return &merged
}

func invalidCarData(err error) error {
	var verrs validation.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.Validation("Invalid car data", verrs.Details())
	}
	return apperrors.Validation("Invalid car data", map[string]any{
		"error": err.Error(),
	})
}

func filterParams(f model.CarFilter) map[string]string {
	params := map[string]string{
		"search":       f.Search,
		"category":     f.Category,
		"transmission": f.Transmission,
		"seats":        strconv.Itoa(f.Seats),
		"sort":         f.Sort,
	}
	if f.Available != nil {
		params["available"] = strconv.FormatBool(*f.Available)
	}
	return params
}
