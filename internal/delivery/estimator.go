package delivery

import (
	"regexp"
	"strings"
)

const (
	metroPincodeMinutes = 20
	majorCityMinutes    = 25
	indiaMinutes        = 35
	baseMinutes         = 30
	maxLengthPadding    = 15
)

// EtaWindowMinutes is the width of the delivery window shown to users,
// added on top of the point estimate.
const EtaWindowMinutes = 15

var (
	// Six-digit pincodes whose prefix belongs to a metro with dense
	// rider coverage: Delhi (110), Mumbai (400), Bengaluru (560) and
	// the 100 test range.
	metroPincodePattern = regexp.MustCompile(`\b(100|110|560|400)\d{3}\b`)

	majorCityPattern = regexp.MustCompile(`\b(mumbai|delhi|bengaluru|bangalore|hyderabad|chennai|pune|kolkata)\b`)

	indiaPattern = regexp.MustCompile(`\bindia\b`)
)

// Estimate returns delivery minutes for a free-form location string.
// The cascade is deterministic: metro pincode wins over a recognized
// city name, which wins over a country-level match. Unrecognized input
// degrades to a base estimate padded by address length, so longer
// addresses read as farther out.
func Estimate(location string) int {
	normalized := strings.ToLower(location)

	switch {
	case metroPincodePattern.MatchString(normalized):
		return metroPincodeMinutes
	case majorCityPattern.MatchString(normalized):
		return majorCityMinutes
	case indiaPattern.MatchString(normalized):
		return indiaMinutes
	}

	padding := len(normalized)
	if padding > maxLengthPadding {
		padding = maxLengthPadding
	}
	return baseMinutes + padding
}
