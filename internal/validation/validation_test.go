package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "plain address", email: "alice@example.com", want: true},
		{name: "dotted local part", email: "first.last@example.co.uk", want: true},
		{name: "plus tag", email: "user+tag@example.io", want: true},
		{name: "digits and percent", email: "a1%b@sub.example.org", want: true},
		{name: "missing at", email: "alice.example.com", want: false},
		{name: "missing tld", email: "alice@example", want: false},
		{name: "single letter tld", email: "alice@example.c", want: false},
		{name: "empty", email: "", want: false},
		{name: "spaces", email: "alice @example.com", want: false},
		{name: "missing local part", email: "@example.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

// The strength checker must report the first unmet rule in a fixed order:
// length, uppercase, lowercase, digit, special character.
func TestCheckPasswordStrength_RuleOrder(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantOK   bool
		wantMsg  string
	}{
		{name: "too short", password: "Ab1!", wantOK: false, wantMsg: "Password must be at least 8 characters"},
		{name: "short and missing everything reports length first", password: "a", wantOK: false, wantMsg: "Password must be at least 8 characters"},
		{name: "no uppercase", password: "abcdef1!", wantOK: false, wantMsg: "Must contain uppercase letter"},
		{name: "no lowercase", password: "ABCDEF1!", wantOK: false, wantMsg: "Must contain lowercase letter"},
		{name: "no digit", password: "Abcdefg!", wantOK: false, wantMsg: "Must contain digit"},
		{name: "no special", password: "Abcdefg1", wantOK: false, wantMsg: "Must contain special character"},
		{name: "all rules met", password: "Abcdef1!", wantOK: true, wantMsg: "Valid"},
		{name: "special from the fixed set", password: `Abcdef1"`, wantOK: true, wantMsg: "Valid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := CheckPasswordStrength(tt.password, DefaultPasswordPolicy)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestCheckPasswordStrength_DisabledRules(t *testing.T) {
	policy := PasswordPolicy{MinLength: 4}

	ok, msg := CheckPasswordStrength("abcd", policy)

	assert.True(t, ok)
	assert.Equal(t, "Valid", msg)
}
