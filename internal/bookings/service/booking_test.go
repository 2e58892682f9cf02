package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	bookingserrors "carhire/internal/bookings/errors"
	"carhire/internal/bookings/validator"
	carserrors "carhire/internal/cars/errors"
	"carhire/pkg/cache"
	"carhire/pkg/config"
	mongotx "carhire/pkg/db/mongo"
	apperrors "carhire/pkg/errors"
	"carhire/pkg/logger"
	"carhire/pkg/metrics"
	"carhire/pkg/model"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

const testToday = "2024-05-20"

type mockBookingRepository struct {
	createFunc           func(ctx context.Context, booking *model.Booking) error
	findByIDFunc         func(ctx context.Context, id string) (*model.Booking, error)
	findAllFunc          func(ctx context.Context, limit int, offset int64) ([]*model.Booking, error)
	findAllForExportFunc func(ctx context.Context) ([]*model.Booking, error)
	findByCarFunc        func(ctx context.Context, carID string) ([]*model.Booking, error)
	updateStatusFunc     func(ctx context.Context, id string, status string) (*model.Booking, error)
	deleteFunc           func(ctx context.Context, id string) (*model.Booking, error)
	countFunc            func(ctx context.Context) (int64, error)
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	return nil
}

func (m *mockBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *mockBookingRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, limit, offset)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) FindAllForExport(ctx context.Context) ([]*model.Booking, error) {
	if m.findAllForExportFunc != nil {
		return m.findAllForExportFunc(ctx)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) FindByCar(ctx context.Context, carID string) ([]*model.Booking, error) {
	if m.findByCarFunc != nil {
		return m.findByCarFunc(ctx, carID)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) UpdateStatus(ctx context.Context, id string, status string) (*model.Booking, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *mockBookingRepository) Delete(ctx context.Context, id string) (*model.Booking, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *mockBookingRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *mockBookingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(mongo.NewSessionContext(ctx, nil))
}

type mockLockRepository struct {
	createErr error
	created   []string
	deleted   []string
}

func (m *mockLockRepository) Create(_ context.Context, lock *model.BookingLock) (*model.BookingLock, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, lock.ID)
	return lock, nil
}

func (m *mockLockRepository) Delete(_ context.Context, lockID string) error {
	m.deleted = append(m.deleted, lockID)
	return nil
}

type mockEventRepository struct {
	events []*model.BookingEvent
}

func (m *mockEventRepository) Append(_ context.Context, event *model.BookingEvent) error {
	m.events = append(m.events, event)
	return nil
}

func (m *mockEventRepository) FindByBooking(_ context.Context, bookingID string) ([]*model.BookingEvent, error) {
	var out []*model.BookingEvent
	for _, e := range m.events {
		if e.BookingID == bookingID {
			out = append(out, e)
		}
	}
	return out, nil
}

type mockCarFinder struct {
	cars map[string]*model.Car
}

func (m *mockCarFinder) FindByID(_ context.Context, id string) (*model.Car, error) {
	if car, ok := m.cars[id]; ok {
		return car, nil
	}
	return nil, carserrors.ErrNotFound
}

type staticPricing struct {
	settings model.PricingSettings
}

func (p *staticPricing) GetPricing(context.Context) (*model.PricingSettings, error) {
	s := p.settings
	return &s, nil
}

type recordingPublisher struct {
	bookings []model.BookingEvent
}

func (p *recordingPublisher) PublishBooking(_ context.Context, event model.BookingEvent) error {
	p.bookings = append(p.bookings, event)
	return nil
}

func (p *recordingPublisher) PublishCar(context.Context, model.CarEvent) error {
	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

type recordingCache struct {
	cache.Noop
	deleted []string
}

func (c *recordingCache) Delete(_ context.Context, keys ...string) error {
	c.deleted = append(c.deleted, keys...)
	return nil
}

type fixture struct {
	svc       *bookingService
	repo      *mockBookingRepository
	locks     *mockLockRepository
	events    *mockEventRepository
	publisher *recordingPublisher
	cache     *recordingCache
	pricing   *staticPricing
	metrics   *metrics.Metrics
}

func newFixture() *fixture {
	log := logger.New(logger.Config{
		Level:     "info",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	cfg := &config.Config{
		Log:         log,
		ReadTimeout: 5 * time.Second,
		CacheTTL:    time.Minute,
		PhoneRegion: "AU",
	}

	f := &fixture{
		repo:      &mockBookingRepository{},
		locks:     &mockLockRepository{},
		events:    &mockEventRepository{},
		publisher: &recordingPublisher{},
		cache:     &recordingCache{},
		pricing: &staticPricing{settings: model.PricingSettings{
			InsuranceRatePerDay: 25,
			DeliveryFlatRate:    75,
			MinimumRentalDays:   1,
			MaximumRentalDays:   30,
			TaxRate:             10,
		}},
		metrics: metrics.New("test"),
	}

	cars := &mockCarFinder{cars: map[string]*model.Car{
		"car-1": {ID: "car-1", Name: "Toyota Supra", PricePerDay: 100, Available: true},
		"car-2": {ID: "car-2", Name: "Retired Van", PricePerDay: 60, Available: false},
	}}

	svc := NewBookingService(Dependencies{
		Repo:      f.repo,
		LockRepo:  f.locks,
		EventRepo: f.events,
		Cars:      cars,
		Pricing:   f.pricing,
		Validator: validator.NewBookingValidator(log),
		Cache:     f.cache,
		Events:    f.publisher,
		Metrics:   f.metrics,
	}, cfg).(*bookingService)
	svc.today = func() string { return testToday }
	f.svc = svc
	return f
}

func newBooking() *model.Booking {
	return &model.Booking{
		CarID:     "car-1",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-04",
		FirstName: " Jane ",
		LastName:  "Citizen",
		Email:     "Jane@Example.COM",
		Phone:     "0412 345 678",
	}
}

func TestBookingService_Create(t *testing.T) {
	f := newFixture()
	var stored *model.Booking
	f.repo.createFunc = func(_ context.Context, b *model.Booking) error {
		stored = b
		return nil
	}

	b := newBooking()
	b.TotalPrice = 1
	b.Status = model.StatusConfirmed

	if err := f.svc.Create(context.Background(), b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stored == nil || stored.ID == "" {
		t.Fatal("expected booking to be stored with an id")
	}
	if b.TotalPrice != 300 {
		t.Errorf("TotalPrice = %v, want 300", b.TotalPrice)
	}
	if b.Status != model.StatusPending {
		t.Errorf("Status = %q, want pending", b.Status)
	}
	if b.CarName != "Toyota Supra" {
		t.Errorf("CarName = %q", b.CarName)
	}
	if b.Email != "jane@example.com" || b.Phone != "+61412345678" || b.FirstName != "Jane" {
		t.Errorf("expected sanitized contact details, got %q %q %q", b.Email, b.Phone, b.FirstName)
	}
	if len(f.locks.created) != 1 || len(f.locks.deleted) != 1 || f.locks.created[0] != "booking_lock_car-1" {
		t.Errorf("expected lock to be acquired and released, got %v / %v", f.locks.created, f.locks.deleted)
	}
	if len(f.publisher.bookings) != 1 || f.publisher.bookings[0].Type != model.EventBookingCreated {
		t.Errorf("expected booking.created event, got %+v", f.publisher.bookings)
	}
	if len(f.cache.deleted) != 1 || f.cache.deleted[0] != cache.Key(cache.PrefixAvailability, "car-1") {
		t.Errorf("expected availability cache invalidation, got %v", f.cache.deleted)
	}
}

func TestBookingService_Create_AddOnsAndTax(t *testing.T) {
	f := newFixture()
	f.pricing.settings.EnableInsurance = true
	f.pricing.settings.EnableDelivery = true
	f.pricing.settings.EnableTax = true

	b := newBooking()
	b.IncludeInsurance = true
	b.IncludeDelivery = true

	if err := f.svc.Create(context.Background(), b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (300 + 75 + 75) * 1.1
	if diff := b.TotalPrice - 495; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("TotalPrice = %v, want 495", b.TotalPrice)
	}
}

func TestBookingService_Create_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*model.Booking)
		wantCode string
		wantMsg  string
	}{
		{"start in the past", func(b *model.Booking) { b.StartDate = "2024-05-01" }, apperrors.CodeValidation, "Invalid booking data"},
		{"end not after start", func(b *model.Booking) { b.EndDate = b.StartDate }, apperrors.CodeValidation, "Invalid booking data"},
		{"unknown car", func(b *model.Booking) { b.CarID = "nope" }, apperrors.CodeNotFound, "Car not found"},
		{"unavailable car", func(b *model.Booking) { b.CarID = "car-2" }, apperrors.CodeConflict, "This car is currently unavailable for booking"},
		{"too long", func(b *model.Booking) { b.EndDate = "2024-08-01" }, apperrors.CodeValidation, "Rental length must be between 1 and 30 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			created := false
			f.repo.createFunc = func(context.Context, *model.Booking) error {
				created = true
				return nil
			}

			b := newBooking()
			tt.mutate(b)
			err := f.svc.Create(context.Background(), b)

			appErr := apperrors.AsAppError(err)
			if appErr.Code != tt.wantCode || appErr.Message != tt.wantMsg {
				t.Errorf("got %s %q, want %s %q", appErr.Code, appErr.Message, tt.wantCode, tt.wantMsg)
			}
			if created {
				t.Error("booking must not be stored")
			}
		})
	}
}

func TestBookingService_Create_DateConflict(t *testing.T) {
	f := newFixture()
	f.repo.findByCarFunc = func(context.Context, string) ([]*model.Booking, error) {
		return []*model.Booking{
			{ID: "old", CarID: "car-1", StartDate: "2024-06-03", EndDate: "2024-06-06", Status: model.StatusConfirmed},
		}, nil
	}

	err := f.svc.Create(context.Background(), newBooking())
	if !apperrors.HasCode(err, apperrors.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(f.locks.deleted) != 1 {
		t.Error("lock must be released after a conflict")
	}
	if len(f.publisher.bookings) != 0 {
		t.Error("no event expected on conflict")
	}
}

func TestBookingService_Create_CancelledBookingDoesNotConflict(t *testing.T) {
	f := newFixture()
	f.repo.findByCarFunc = func(context.Context, string) ([]*model.Booking, error) {
		return []*model.Booking{
			{ID: "old", CarID: "car-1", StartDate: "2024-06-01", EndDate: "2024-06-10", Status: model.StatusCancelled},
		}, nil
	}

	if err := f.svc.Create(context.Background(), newBooking()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBookingService_Create_LockHeld(t *testing.T) {
	f := newFixture()
	f.locks.createErr = mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "duplicate key"}}}

	err := f.svc.Create(context.Background(), newBooking())
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeConflict || !strings.Contains(appErr.Message, "being booked by another request") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantPrefix string
	}{
		{"app error passes through", apperrors.Conflict("taken"), 409, "taken"},
		{"permission", mongo.CommandError{Code: 13, Name: "Unauthorized", Message: "not authorized"}, 403, "Permission denied."},
		{"deadline", context.DeadlineExceeded, 503, "Network error."},
		{"other", errors.New("boom"), 500, "Failed to create booking:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := apperrors.AsAppError(createError(tt.err))
			if appErr.StatusCode() != tt.wantStatus {
				t.Errorf("status = %d, want %d", appErr.StatusCode(), tt.wantStatus)
			}
			if !strings.HasPrefix(appErr.Message, tt.wantPrefix) {
				t.Errorf("message = %q, want prefix %q", appErr.Message, tt.wantPrefix)
			}
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	f := newFixture()
	f.repo.updateStatusFunc = func(_ context.Context, id string, status string) (*model.Booking, error) {
		return &model.Booking{ID: id, CarID: "car-1", Status: model.StatusPending}, nil
	}

	updated, err := f.svc.UpdateStatus(context.Background(), "b-1", &model.BookingStatusUpdate{Status: " Cancelled "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != model.StatusCancelled {
		t.Errorf("Status = %q", updated.Status)
	}
	if len(f.publisher.bookings) != 1 {
		t.Fatalf("expected one event, got %d", len(f.publisher.bookings))
	}
	ev := f.publisher.bookings[0]
	if ev.Type != model.EventBookingStatusChanged || ev.PrevStatus != model.StatusPending || ev.Status != model.StatusCancelled {
		t.Errorf("unexpected event %+v", ev)
	}
}

func TestBookingService_UpdateStatus_AnyTransitionAllowed(t *testing.T) {
	f := newFixture()
	f.repo.updateStatusFunc = func(_ context.Context, id string, _ string) (*model.Booking, error) {
		return &model.Booking{ID: id, CarID: "car-1", Status: model.StatusCompleted}, nil
	}

	if _, err := f.svc.UpdateStatus(context.Background(), "b-1", &model.BookingStatusUpdate{Status: model.StatusPending}); err != nil {
		t.Fatalf("completed -> pending should be allowed, got %v", err)
	}
}

func TestBookingService_UpdateStatus_Invalid(t *testing.T) {
	f := newFixture()

	_, err := f.svc.UpdateStatus(context.Background(), "b-1", &model.BookingStatusUpdate{Status: "archived"})
	if !apperrors.HasCode(err, apperrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, err = f.svc.UpdateStatus(context.Background(), "missing", &model.BookingStatusUpdate{Status: model.StatusConfirmed})
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBookingService_Delete(t *testing.T) {
	f := newFixture()

	if err := f.svc.Delete(context.Background(), "missing"); !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	f.repo.deleteFunc = func(_ context.Context, id string) (*model.Booking, error) {
		return &model.Booking{ID: id, CarID: "car-1", Status: model.StatusConfirmed}, nil
	}
	if err := f.svc.Delete(context.Background(), "b-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.publisher.bookings) != 1 || f.publisher.bookings[0].Type != model.EventBookingDeleted {
		t.Errorf("expected booking.deleted event, got %+v", f.publisher.bookings)
	}
}

func TestBookingService_GetAll(t *testing.T) {
	f := newFixture()
	var gotLimit int
	f.repo.countFunc = func(context.Context) (int64, error) { return 42, nil }
	f.repo.findAllFunc = func(_ context.Context, limit int, _ int64) ([]*model.Booking, error) {
		gotLimit = limit
		return []*model.Booking{{ID: "b-1"}}, nil
	}

	bookings, total, err := f.svc.GetAll(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 42 || len(bookings) != 1 {
		t.Errorf("got %d bookings, total %d", len(bookings), total)
	}
	if gotLimit != 10 {
		t.Errorf("limit = %d, want default 10", gotLimit)
	}

	f.repo.countFunc = func(context.Context) (int64, error) { return 0, errors.New("down") }
	if _, _, err := f.svc.GetAll(context.Background(), 10, 0); !apperrors.HasCode(err, apperrors.CodeInternal) {
		t.Errorf("expected internal error, got %v", err)
	}
}

func TestBookingService_History(t *testing.T) {
	f := newFixture()
	f.events.events = []*model.BookingEvent{
		{ID: "e1", BookingID: "b-1", Type: model.EventBookingCreated},
		{ID: "e2", BookingID: "b-2", Type: model.EventBookingCreated},
	}

	history, err := f.svc.History(context.Background(), "b-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 1 || history[0].ID != "e1" {
		t.Errorf("unexpected history %+v", history)
	}
}

func TestBookingService_Quote(t *testing.T) {
	f := newFixture()
	f.pricing.settings.MinimumRentalDays = 3

	quick, err := f.svc.Quote(context.Background(), &model.QuoteRequest{
		CarID: "car-1", StartDate: "2024-06-01", EndDate: "2024-06-02",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quick.Clamped || quick.Days != 3 || quick.RequestedDays != 1 || quick.Total != 300 {
		t.Errorf("unexpected quick quote %+v", quick)
	}

	_, err = f.svc.Quote(context.Background(), &model.QuoteRequest{
		CarID: "car-1", StartDate: "2024-06-01", EndDate: "2024-06-02", Mode: model.QuoteModeBooking,
	})
	if !apperrors.HasCode(err, apperrors.CodeValidation) {
		t.Fatalf("expected booking-mode rejection, got %v", err)
	}

	invalid, err := f.svc.Quote(context.Background(), &model.QuoteRequest{
		CarID: "car-1", StartDate: "2024-06-02", EndDate: "2024-06-02", Mode: model.QuoteModeBooking,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if invalid.Valid || invalid.Total != 0 {
		t.Errorf("expected invalid zero quote, got %+v", invalid)
	}

	if got := testutil.ToFloat64(f.metrics.Quotes.WithLabelValues(model.QuoteModeQuick)); got != 1 {
		t.Errorf("quick quotes = %v, want 1", got)
	}
}

func TestBookingService_Availability(t *testing.T) {
	f := newFixture()
	f.repo.findByCarFunc = func(context.Context, string) ([]*model.Booking, error) {
		return []*model.Booking{
			{CarID: "car-1", StartDate: "2024-06-01", EndDate: "2024-06-05", Status: model.StatusPending},
			{CarID: "car-1", StartDate: "2024-06-10", EndDate: "2024-06-12", Status: model.StatusCancelled},
		}, nil
	}

	dates, err := f.svc.UnavailableDates(context.Background(), "car-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2024-06-01", "2024-06-02", "2024-06-03", "2024-06-04", "2024-06-05"}
	if strings.Join(dates, ",") != strings.Join(want, ",") {
		t.Errorf("dates = %v, want %v", dates, want)
	}

	tests := []struct {
		date string
		want bool
	}{
		{"2024-06-01", false},
		{"2024-06-05", false},
		{"2024-06-06", true},
		{"2024-06-11", true},
	}
	for _, tt := range tests {
		got, err := f.svc.IsAvailable(context.Background(), "car-1", tt.date)
		if err != nil {
			t.Fatalf("IsAvailable(%s): %v", tt.date, err)
		}
		if got != tt.want {
			t.Errorf("IsAvailable(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}

	if _, err := f.svc.IsAvailable(context.Background(), "car-1", "June 1"); !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("expected invalid input for bad date, got %v", err)
	}
	if _, err := f.svc.UnavailableDates(context.Background(), "nope"); !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Errorf("expected not found for unknown car, got %v", err)
	}
}

func TestBookingService_IsAvailable_SpanLongerThanCalendar(t *testing.T) {
	f := newFixture()
	f.repo.findByCarFunc = func(context.Context, string) ([]*model.Booking, error) {
		return []*model.Booking{
			{CarID: "car-1", StartDate: "2025-01-01", EndDate: "2027-12-31", Status: model.StatusConfirmed},
		}, nil
	}

	tests := []struct {
		date string
		want bool
	}{
		{"2025-01-01", false},
		{"2027-06-01", false},
		{"2027-12-31", false},
		{"2028-01-01", true},
	}
	for _, tt := range tests {
		got, err := f.svc.IsAvailable(context.Background(), "car-1", tt.date)
		if err != nil {
			t.Fatalf("IsAvailable(%s): %v", tt.date, err)
		}
		if got != tt.want {
			t.Errorf("IsAvailable(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestBookingService_IsAvailable_RepositoryFailure(t *testing.T) {
	f := newFixture()
	f.repo.findByCarFunc = func(context.Context, string) ([]*model.Booking, error) {
		return nil, errors.New("connection reset")
	}

	if _, err := f.svc.IsAvailable(context.Background(), "car-1", "2025-01-01"); !apperrors.HasCode(err, apperrors.CodeInternal) {
		t.Errorf("expected internal error, got %v", err)
	}
}

func TestBookingService_Export(t *testing.T) {
	f := newFixture()
	f.repo.findAllForExportFunc = func(context.Context) ([]*model.Booking, error) {
		return []*model.Booking{
			{ID: "b-2", CarName: "Toyota Supra", FirstName: "Jane", TotalPrice: 300, Status: model.StatusPending, IncludeInsurance: true},
			{ID: "b-1", CarName: "Mazda CX-5", FirstName: "John", TotalPrice: 120, Status: model.StatusCompleted},
		}, nil
	}

	data, err := f.svc.Export(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer wb.Close()

	rows, err := wb.GetRows(exportSheet)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "ID" || rows[1][0] != "b-2" || rows[1][1] != "Toyota Supra" || rows[1][10] != "Yes" {
		t.Errorf("unexpected rows %v", rows[:2])
	}
}
