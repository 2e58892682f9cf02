package client

import (
	"fmt"
	"net/url"
	"time"

	"carhire/pkg/model"
)

type BookingClient struct {
	httpClient *HttpClient
}

func NewBookingClient(baseUrl string) *BookingClient {
	return &BookingClient{
		httpClient: NewHttpClient(baseUrl),
	}
}

func (c *BookingClient) SetToken(token string) {
	c.httpClient.SetToken(token)
}

func (c *BookingClient) WaitForHealthy(maxWait time.Duration) error {
	return c.httpClient.WaitForHealthy(maxWait)
}

func (c *BookingClient) Create(body any) (*Response, error) {
	return c.httpClient.POST("/api/bookings", body)
}

func (c *BookingClient) Quote(req *model.QuoteRequest) (*Response, error) {
	return c.httpClient.POST("/api/quotes", req)
}

// Availability lists unavailable dates, or checks a single date when date is
// not empty.
func (c *BookingClient) Availability(carID, date string) (*Response, error) {
	path := "/api/availability/" + url.PathEscape(carID)
	if date != "" {
		path += "?date=" + url.QueryEscape(date)
	}
	return c.httpClient.GET(path)
}

func (c *BookingClient) GetAll(limit int, offset int64) (*Response, error) {
	path := fmt.Sprintf("/api/bookings?limit=%d&offset=%d", limit, offset)
	return c.httpClient.GET(path)
}

func (c *BookingClient) ListByCar(carID string) (*Response, error) {
	return c.httpClient.GET("/api/bookings?carId=" + url.QueryEscape(carID))
}

func (c *BookingClient) GetByID(id string) (*Response, error) {
	return c.httpClient.GET("/api/bookings/" + url.PathEscape(id))
}

func (c *BookingClient) History(id string) (*Response, error) {
	return c.httpClient.GET("/api/bookings/" + url.PathEscape(id) + "/history")
}

func (c *BookingClient) UpdateStatus(id, status string) (*Response, error) {
	return c.httpClient.PATCH("/api/bookings/"+url.PathEscape(id)+"/status", model.BookingStatusUpdate{Status: status})
}

func (c *BookingClient) Delete(id string) (*Response, error) {
	return c.httpClient.DELETE("/api/bookings/" + url.PathEscape(id))
}

func (c *BookingClient) Export() (*Response, error) {
	return c.httpClient.GET("/api/exports/bookings")
}
