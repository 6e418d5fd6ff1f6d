// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks that an address has a plausible shape
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}
