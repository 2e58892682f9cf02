//go:build integration

package bookings

import (
	"net/http"
	"testing"
	"time"

	"carhire/pkg/client"
	"carhire/pkg/model"
	"carhire/test/integration/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clients struct {
	cars     *client.CarClient
	bookings *client.BookingClient
	admin    *client.BookingClient
}

func setup(t *testing.T) clients {
	t.Helper()
	env := testutil.NewTestEnv()
	token := env.AdminToken(t)

	mongo := testutil.NewMongoHelper(t, env.MongoURI, env.DatabaseName)
	mongo.CleanCollections(t, "cars", "bookings", "booking_locks")
	t.Cleanup(func() {
		mongo.CleanCollections(t, "cars", "bookings", "booking_locks")
		mongo.Close(t)
	})

	c := clients{
		cars:     client.NewCarClient(env.CarsURL),
		bookings: client.NewBookingClient(env.BookingsURL),
		admin:    client.NewBookingClient(env.BookingsURL),
	}
	require.NoError(t, c.cars.WaitForHealthy(testutil.DefaultHealthCheckTimeout))
	require.NoError(t, c.bookings.WaitForHealthy(testutil.DefaultHealthCheckTimeout))
	c.cars.SetToken(token)
	c.admin.SetToken(token)
	return c
}

func createCar(t *testing.T, cars *client.CarClient) model.Car {
	t.Helper()
	resp, err := cars.Create(map[string]any{
		"name":         "Hyundai i30",
		"category":     "Hatchback",
		"description":  "Compact and easy to park",
		"pricePerDay":  60,
		"seats":        5,
		"transmission": "Automatic",
		"fuelType":     "Petrol",
		"doors":        5,
		"year":         2022,
	})
	require.NoError(t, err)
	testutil.AssertStatusCode(t, resp, http.StatusCreated)
	var car model.Car
	require.NoError(t, resp.DecodeData(&car))
	return car
}

func date(daysFromNow int) string {
	return time.Now().AddDate(0, 0, daysFromNow).Format(time.DateOnly)
}

func bookingPayload(carID, start, end string) map[string]any {
	return map[string]any{
		"carId":     carID,
		"startDate": start,
		"endDate":   end,
		"firstName": "Alex",
		"lastName":  "Nguyen",
		"email":     "alex@example.com",
		"phone":     "+61 412 345 678",
	}
}

func TestBookingFlow(t *testing.T) {
	c := setup(t)
	car := createCar(t, c.cars)

	resp, err := c.bookings.Quote(&model.QuoteRequest{CarID: car.ID, StartDate: date(10), EndDate: date(13)})
	testutil.AssertOK(t, resp, err)
	var quote model.Quote
	require.NoError(t, resp.DecodeData(&quote))
	assert.Equal(t, 3, quote.Days)
	assert.Equal(t, 180.0, quote.Base)

	resp, err = c.bookings.Create(bookingPayload(car.ID, date(10), date(13)))
	require.NoError(t, err)
	testutil.AssertStatusCode(t, resp, http.StatusCreated)
	var booking model.Booking
	require.NoError(t, resp.DecodeData(&booking))
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, car.Name, booking.CarName)
	assert.Positive(t, booking.TotalPrice)

	resp, err = c.bookings.Create(bookingPayload(car.ID, date(12), date(15)))
	require.NoError(t, err)
	testutil.AssertStatusCode(t, resp, http.StatusConflict)

	resp, err = c.bookings.Availability(car.ID, date(11))
	testutil.AssertOK(t, resp, err)
	var availability struct {
		Available *bool `json:"available"`
	}
	require.NoError(t, resp.DecodeData(&availability))
	require.NotNil(t, availability.Available)
	assert.False(t, *availability.Available)

	resp, err = c.admin.UpdateStatus(booking.ID, model.StatusConfirmed)
	testutil.AssertOK(t, resp, err)

	resp, err = c.admin.ListByCar(car.ID)
	testutil.AssertOK(t, resp, err)
	var listed []model.Booking
	require.NoError(t, resp.DecodeData(&listed))
	require.Len(t, listed, 1)
	assert.Equal(t, model.StatusConfirmed, listed[0].Status)

	resp, err = c.admin.Export()
	testutil.AssertOK(t, resp, err)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")

	resp, err = c.admin.Delete(booking.ID)
	require.NoError(t, err)
	testutil.AssertStatusCode(t, resp, http.StatusNoContent)
}

func TestBookingRejectsPastAndUnknownCar(t *testing.T) {
	c := setup(t)
	car := createCar(t, c.cars)

	resp, err := c.bookings.Create(bookingPayload(car.ID, date(-3), date(-1)))
	require.NoError(t, err)
	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)

	resp, err = c.bookings.Create(bookingPayload("no-such-car", date(5), date(6)))
	require.NoError(t, err)
	testutil.AssertStatusCode(t, resp, http.StatusNotFound)
}

func TestBookingAdminRoutesRequireToken(t *testing.T) {
	c := setup(t)

	resp, err := c.bookings.GetAll(10, 0)
	require.NoError(t, err)
	testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
}
