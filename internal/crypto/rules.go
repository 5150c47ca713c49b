package crypto

import (
	"fmt"
	"strings"
)

// ValidationRules describes optional password requirements. Zero values
// (0 or false) mean the rule is not enforced.
type ValidationRules struct {
	MinLength      int
	RequireUpper   bool
	RequireLower   bool
	RequireDigit   bool
	RequireSpecial bool
}

// ValidationResult reports the outcome of a rule check. Errors keeps the
// fixed rule order: length, uppercase, lowercase, digit, special.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

// ValidatePassword checks password against every enforced rule. All rules
// are always evaluated; nothing short-circuits.
func ValidatePassword(password string, rules ValidationRules) ValidationResult {
	errs := []string{}

	if rules.MinLength > 0 && len(password) < rules.MinLength {
		errs = append(errs, fmt.Sprintf("Password too short (min %d chars)", rules.MinLength))
	}
	if rules.RequireUpper && !strings.ContainsAny(password, uppercaseChars) {
		errs = append(errs, "Password must contain uppercase letters")
	}
	if rules.RequireLower && !strings.ContainsAny(password, lowercaseChars) {
		errs = append(errs, "Password must contain lowercase letters")
	}
	if rules.RequireDigit && !strings.ContainsAny(password, digitChars) {
		errs = append(errs, "Password must contain digits")
	}
	if rules.RequireSpecial && !strings.ContainsFunc(password, isSpecial) {
		errs = append(errs, "Password must contain special characters")
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// isSpecial reports whether r is outside [a-zA-Z0-9].
func isSpecial(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return false
	case r >= 'A' && r <= 'Z':
		return false
	case r >= '0' && r <= '9':
		return false
	}
	return true
}
