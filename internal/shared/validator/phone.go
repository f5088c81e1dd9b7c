package validator

import (
	"github.com/go-playground/validator/v10"
	"regexp"
)

var (
	// phoneRegex matches Korean mobile numbers: exactly 11 digits with 010 prefix
	phoneRegex = regexp.MustCompile(`^010[0-9]{8}$`)
)

// ValidatePhone validates a Korean mobile phone number
// This is a common validator used across multiple domains
func ValidatePhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	return phoneRegex.MatchString(phone)
}
