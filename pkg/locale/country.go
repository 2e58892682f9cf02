package locale

import (
	"strings"
)

const (
	DefaultTimezone = "UTC"
	DefaultRegion   = "AU"
)

type Country struct {
	Code            string   // ISO 3166-1 alpha-2 country code (e.g., "AU", "NZ")
	Name            string   // Human-readable country name
	PhonePrefixes   []string // Valid phone number prefixes (e.g., ["+61", "61"])
	DefaultTimezone string   // IANA timezone identifier (e.g., "Australia/Sydney")
}

var (
	Countries = map[string]Country{
		"AU": {
			Code:            "AU",
			Name:            "Australia",
			PhonePrefixes:   []string{"+61", "61"},
			DefaultTimezone: "Australia/Sydney",
		},
		"NZ": {
			Code:            "NZ",
			Name:            "New Zealand",
			PhonePrefixes:   []string{"+64", "64"},
			DefaultTimezone: "Pacific/Auckland",
		},
		"GB": {
			Code:            "GB",
			Name:            "United Kingdom",
			PhonePrefixes:   []string{"+44", "44"},
			DefaultTimezone: "Europe/London",
		},
		"US": {
			Code:            "US",
			Name:            "United States",
			PhonePrefixes:   []string{"+1", "1"},
			DefaultTimezone: "America/New_York",
		},
	}

	// SupportedRegions is the order in which phone numbers without an
	// international prefix are tried after the configured default region.
	SupportedRegions = []string{"AU", "NZ", "GB", "US"}

	TimeZoneTags = map[string][]string{
		"AU": {
			"Australia/Sydney", "Australia/Melbourne", "Australia/Brisbane",
			"Australia/Perth", "Australia/Adelaide", "Australia/Hobart", "Australia/Darwin",
		},
		"NZ": {"Pacific/Auckland", "NZ"},
		"GB": {"Europe/London", "GB"},
		"US": {"America/New_York", "America/Los_Angeles", "US/Eastern", "US/Pacific"},
	}
)

func IsSupportedRegion(region string) bool {
	_, ok := Countries[strings.ToUpper(region)]
	return ok
}

func DetectRegion(tz string) string {
	for region, zones := range TimeZoneTags {
		for _, z := range zones {
			if strings.EqualFold(tz, z) {
				return region
			}
		}
	}
	return DefaultRegion
}
