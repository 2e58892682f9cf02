package locale

import "strings"

func InferTimezoneFromPhone(phone string) string {
	if country := InferCountryFromPhone(phone); country != nil {
		return country.DefaultTimezone
	}
	return DefaultTimezone
}

// InferCountryFromPhone matches the longest known prefix so that "+61"
// is never shadowed by a shorter code.
func InferCountryFromPhone(phone string) *Country {
	normalized := strings.TrimSpace(phone)

	var best *Country
	bestLen := 0
	for _, code := range SupportedRegions {
		country := Countries[code]
		for _, prefix := range country.PhonePrefixes {
			if strings.HasPrefix(normalized, prefix) && len(prefix) > bestLen {
				c := country
				best = &c
				bestLen = len(prefix)
			}
		}
	}

	return best
}
