package locale

import (
	"testing"
)

func TestInferCountryFromPhone(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		wantCode string
		wantNil  bool
	}{
		{
			name:     "Australian mobile",
			phone:    "+61412345678",
			wantCode: "AU",
		},
		{
			name:     "Australian number without plus",
			phone:    "61299998888",
			wantCode: "AU",
		},
		{
			name:     "New Zealand number",
			phone:    "+6421123456",
			wantCode: "NZ",
		},
		{
			name:     "UK number",
			phone:    "+442071234567",
			wantCode: "GB",
		},
		{
			name:     "US number",
			phone:    "+12125551234",
			wantCode: "US",
		},
		{
			name:     "surrounding whitespace",
			phone:    "  +61412345678  ",
			wantCode: "AU",
		},
		{
			name:    "unknown country",
			phone:   "+33123456789",
			wantNil: true,
		},
		{
			name:    "empty",
			phone:   "",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferCountryFromPhone(tt.phone)
			if tt.wantNil {
				if got != nil {
					t.Errorf("InferCountryFromPhone(%q) = %v, want nil", tt.phone, got.Code)
				}
				return
			}
			if got == nil {
				t.Fatalf("InferCountryFromPhone(%q) = nil, want %s", tt.phone, tt.wantCode)
			}
			if got.Code != tt.wantCode {
				t.Errorf("InferCountryFromPhone(%q) = %s, want %s", tt.phone, got.Code, tt.wantCode)
			}
		})
	}
}

func TestInferTimezoneFromPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  string
	}{
		{"+61412345678", "Australia/Sydney"},
		{"+6421123456", "Pacific/Auckland"},
		{"+12125551234", "America/New_York"},
		{"+33123456789", DefaultTimezone},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			if got := InferTimezoneFromPhone(tt.phone); got != tt.want {
				t.Errorf("InferTimezoneFromPhone(%q) = %s, want %s", tt.phone, got, tt.want)
			}
		})
	}
}

func TestDetectRegion(t *testing.T) {
	tests := []struct {
		tz   string
		want string
	}{
		{"Australia/Sydney", "AU"},
		{"australia/perth", "AU"},
		{"Pacific/Auckland", "NZ"},
		{"America/Los_Angeles", "US"},
		{"Mars/Olympus", DefaultRegion},
	}

	for _, tt := range tests {
		t.Run(tt.tz, func(t *testing.T) {
			if got := DetectRegion(tt.tz); got != tt.want {
				t.Errorf("DetectRegion(%q) = %s, want %s", tt.tz, got, tt.want)
			}
		})
	}
}

func TestIsSupportedRegion(t *testing.T) {
	if !IsSupportedRegion("au") {
		t.Error("expected au to be supported")
	}
	if IsSupportedRegion("FR") {
		t.Error("expected FR to be unsupported")
	}
}
