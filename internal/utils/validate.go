package utils

import "regexp"

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
)

// ValidateEmail is a permissive (not RFC-complete) email shape check.
func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidatePhone accepts only the exact DDD-DDD-DDDD shape.
func ValidatePhone(phone string) bool {
	return phoneRe.MatchString(phone)
}
