package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
	log "github.com/sirupsen/logrus"
)

// DefaultRegion is the shop's own region, used for numbers typed without a country code.
const DefaultRegion = "US"

// Normalizer stores customer phone numbers as E.164 when they parse as a
// valid number for its region. Anything else is kept as typed.
type Normalizer struct {
	region string
}

// NewNormalizer falls back to DefaultRegion when region is empty or unknown.
func NewNormalizer(region string) Normalizer {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		return Normalizer{region: DefaultRegion}
	}
	if phonenumbers.GetCountryCodeForRegion(region) == 0 {
		log.Printf("[phone] unknown region %q, using %s", region, DefaultRegion)
		return Normalizer{region: DefaultRegion}
	}
	return Normalizer{region: region}
}

func (n Normalizer) Region() string {
	if n.region == "" {
		return DefaultRegion
	}
	return n.region
}

// E164 returns input in E.164 form, or the trimmed input when it is not a valid number.
// Optional fields stay empty.
func (n Normalizer) E164(input string) string {
	typed := strings.TrimSpace(input)
	if typed == "" {
		return ""
	}

	number, err := phonenumbers.Parse(typed, n.Region())
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return typed
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}
