// Package validation contains stateless predicate helpers for user input.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// emailPattern requires a local part, an "@", a domain with at least one dot
// and a 2+ letter top-level segment.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// specialCharacters is the fixed set accepted by the password special rule.
const specialCharacters = `!@#$%^&*(),.?":{}|<>`

// PasswordPolicy configures CheckPasswordStrength. The zero value disables
// every rule; DefaultPasswordPolicy matches the registration requirements.
type PasswordPolicy struct {
	MinLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireNumbers   bool
	RequireSpecial   bool
}

// DefaultPasswordPolicy is the registration-time password policy.
var DefaultPasswordPolicy = PasswordPolicy{
	MinLength:        8,
	RequireUppercase: true,
	RequireLowercase: true,
	RequireNumbers:   true,
	RequireSpecial:   true,
}

// IsValidEmail reports whether the address has a plausible email shape.
// Pure function, no I/O.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// CheckPasswordStrength validates a password against the policy, failing
// closed with the message of the first unmet rule. Rules are checked in a
// fixed order: length, uppercase, lowercase, digit, special character.
func CheckPasswordStrength(password string, policy PasswordPolicy) (bool, string) {
	if len(password) < policy.MinLength {
		return false, fmt.Sprintf("Password must be at least %d characters", policy.MinLength)
	}
	if policy.RequireUppercase && !containsFunc(password, unicode.IsUpper) {
		return false, "Must contain uppercase letter"
	}
	if policy.RequireLowercase && !containsFunc(password, unicode.IsLower) {
		return false, "Must contain lowercase letter"
	}
	if policy.RequireNumbers && !containsFunc(password, unicode.IsDigit) {
		return false, "Must contain digit"
	}
	if policy.RequireSpecial && !strings.ContainsAny(password, specialCharacters) {
		return false, "Must contain special character"
	}

	return true, "Valid"
}

func containsFunc(s string, fn func(rune) bool) bool {
	return strings.IndexFunc(s, fn) >= 0
}
