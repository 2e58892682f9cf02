//go:build integration

package testutil

import (
	"net/http"
	"os"
	"testing"
	"time"

	"carhire/pkg/client"
)

const DefaultHealthCheckTimeout = 30 * time.Second

type TestEnv struct {
	MongoURI      string
	DatabaseName  string
	CarsURL       string
	BookingsURL   string
	SettingsURL   string
	AdminPassword string
}

func NewTestEnv() *TestEnv {
	return &TestEnv{
		MongoURI:      getEnv("TEST_MONGO_URI", DefaultMongoURI),
		DatabaseName:  getEnv("TEST_DB_NAME", DefaultDatabaseName),
		CarsURL:       getEnv("TEST_CARS_URL", "http://localhost:8081"),
		BookingsURL:   getEnv("TEST_BOOKINGS_URL", "http://localhost:8082"),
		SettingsURL:   getEnv("TEST_SETTINGS_URL", "http://localhost:8083"),
		AdminPassword: os.Getenv("TEST_ADMIN_PASSWORD"),
	}
}

// AdminToken logs in through the settings service. Tests that need admin
// routes are skipped when no password is configured.
func (e *TestEnv) AdminToken(t *testing.T) string {
	t.Helper()
	if e.AdminPassword == "" {
		t.Skip("TEST_ADMIN_PASSWORD not set, skipping admin flows")
	}

	settings := client.NewSettingsClient(e.SettingsURL)
	if err := settings.WaitForHealthy(DefaultHealthCheckTimeout); err != nil {
		t.Fatalf("settings service: %v", err)
	}
	session, err := settings.Login(e.AdminPassword)
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	return session.Token
}

func AssertStatusCode(t *testing.T, resp *client.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Fatalf("expected status %d, got %d. Body: %s", expected, resp.StatusCode, string(resp.Body))
	}
}

func AssertOK(t *testing.T, resp *client.Response, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	AssertStatusCode(t, resp, http.StatusOK)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
