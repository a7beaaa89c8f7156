// Package phone normalizes WhatsApp numbers before they hit the database.
package phone

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var ErrInvalid = errors.New("invalid phone number")

// DefaultRegion is assumed when a number has no country prefix.
const DefaultRegion = "BR"

// Normalize parses a raw phone number and returns it in E.164 format.
// Numbers without a country prefix are treated as DefaultRegion numbers.
func Normalize(raw string) (string, error) {
	return NormalizeRegion(raw, DefaultRegion)
}

// NormalizeRegion is Normalize with an explicit fallback region.
func NormalizeRegion(raw, region string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalid
	}

	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", ErrInvalid
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalid
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}
