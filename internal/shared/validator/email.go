package validator

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ValidateSafeEmail validates an email address for this service:
// exactly one "@" with non-empty local/domain parts, and no Hangul characters.
func ValidateSafeEmail(fl validator.FieldLevel) bool {
	return IsSafeEmail(fl.Field().String())
}

// IsSafeEmail reports whether email satisfies the service's email rule.
func IsSafeEmail(email string) bool {
	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" || domain == "" {
		return false
	}

	// "@"가 두 개 이상이면 실패
	if strings.Contains(domain, "@") {
		return false
	}

	for _, r := range email {
		if unicode.Is(unicode.Hangul, r) {
			return false
		}
	}

	return true
}
