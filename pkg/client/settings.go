package client

import (
	"fmt"
	"net/http"
	"time"

	"carhire/pkg/model"
)

type SettingsClient struct {
	httpClient *HttpClient
}

func NewSettingsClient(baseUrl string) *SettingsClient {
	return &SettingsClient{
		httpClient: NewHttpClient(baseUrl),
	}
}

func (c *SettingsClient) SetToken(token string) {
	c.httpClient.SetToken(token)
}

func (c *SettingsClient) WaitForHealthy(maxWait time.Duration) error {
	return c.httpClient.WaitForHealthy(maxWait)
}

// Login opens an admin session and keeps its token for later admin calls.
func (c *SettingsClient) Login(password string) (*model.AdminSession, error) {
	resp, err := c.httpClient.POST("/api/admin/sessions", model.AdminLogin{Password: password})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("login failed with status %d: %s", resp.StatusCode, GetErrorMessage(resp))
	}

	var session model.AdminSession
	if err := resp.DecodeData(&session); err != nil {
		return nil, fmt.Errorf("failed to decode admin session: %w", err)
	}
	c.httpClient.SetToken(session.Token)
	return &session, nil
}

func (c *SettingsClient) GetPricing() (*Response, error) {
	return c.httpClient.GET("/api/settings/pricing")
}

func (c *SettingsClient) SavePricing(body any) (*Response, error) {
	return c.httpClient.PUT("/api/settings/pricing", body)
}

func (c *SettingsClient) GetWebsite() (*Response, error) {
	return c.httpClient.GET("/api/settings/website")
}

func (c *SettingsClient) SaveWebsite(body any) (*Response, error) {
	return c.httpClient.PUT("/api/settings/website", body)
}
