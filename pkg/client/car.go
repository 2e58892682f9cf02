package client

import (
	"net/url"
	"time"
)

type CarClient struct {
	httpClient *HttpClient
}

func NewCarClient(baseUrl string) *CarClient {
	return &CarClient{
		httpClient: NewHttpClient(baseUrl),
	}
}

func (c *CarClient) SetToken(token string) {
	c.httpClient.SetToken(token)
}

func (c *CarClient) WaitForHealthy(maxWait time.Duration) error {
	return c.httpClient.WaitForHealthy(maxWait)
}

// GetAll lists the catalog. query carries the optional search, category,
// transmission, seats, available and sort filters.
func (c *CarClient) GetAll(query url.Values) (*Response, error) {
	path := "/api/cars"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return c.httpClient.GET(path)
}

func (c *CarClient) GetByID(id string) (*Response, error) {
	return c.httpClient.GET("/api/cars/" + url.PathEscape(id))
}

func (c *CarClient) GetBySlug(slug string) (*Response, error) {
	return c.httpClient.GET("/api/cars/by-slug/" + url.PathEscape(slug))
}

func (c *CarClient) Related(id string) (*Response, error) {
	return c.httpClient.GET("/api/cars/" + url.PathEscape(id) + "/related")
}

func (c *CarClient) Categories() (*Response, error) {
	return c.httpClient.GET("/api/car-categories")
}

func (c *CarClient) Create(body any) (*Response, error) {
	return c.httpClient.POST("/api/cars", body)
}

func (c *CarClient) Update(id string, body any) (*Response, error) {
	return c.httpClient.PATCH("/api/cars/"+url.PathEscape(id), body)
}

func (c *CarClient) Duplicate(id string) (*Response, error) {
	return c.httpClient.POST("/api/cars/"+url.PathEscape(id)+"/duplicate", nil)
}

func (c *CarClient) Delete(id string) (*Response, error) {
	return c.httpClient.DELETE("/api/cars/" + url.PathEscape(id))
}
