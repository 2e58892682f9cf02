package sanitizer

import (
	"strings"

	"carhire/pkg/locale"

	"github.com/nyaruka/phonenumbers"
)

// NormalizePhone formats phone as E.164, trying defaultRegion first and then
// the other supported regions. Unparseable input is returned trimmed.
func NormalizePhone(phone, defaultRegion string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	regions := append([]string{strings.ToUpper(defaultRegion)}, locale.SupportedRegions...)
	for _, region := range regions {
		if region == "" {
			continue
		}
		parsedNumber, err := phonenumbers.Parse(phone, region)
		if err == nil && phonenumbers.IsPossibleNumber(parsedNumber) {
			return phonenumbers.Format(parsedNumber, phonenumbers.E164)
		}
	}
	return phone
}
