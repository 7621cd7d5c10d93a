package utils

import "regexp"

var zipCodeRegex = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// IsValidZipCode reports whether s is a 5-digit or ZIP+4 US postal code.
func IsValidZipCode(s string) bool {
	return zipCodeRegex.MatchString(s)
}
