// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// Account is the core identity in the system. The lower-cased email address is
// the natural key; accounts are never physically removed, deactivation flips
// Status to disabled.
type Account struct {
	Email        string     // Primary identity, stored case-folded.
	Role         Role       // Either customer or merchant.
	FirstName    string     // Contact first name.
	LastName     string     // Contact last name.
	PasswordHash string     // bcrypt hash of the account password.
	Phone        *string    // Optional contact phone.
	Website      *string    // Optional website, mostly used by merchants.
	BusinessName *string    // Optional business name, mostly used by merchants.
	Status       Status     // active or disabled.
	CreatedAt    time.Time  // Timestamp of registration.
	LastLogin    *time.Time // Timestamp of the most recent successful login, nil before first login.
}

// DisplayName returns the name shown in session payloads and greetings.
func (a *Account) DisplayName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// IsActive reports whether the account may log in.
func (a *Account) IsActive() bool {
	return a.Status == StatusActive
}

// NormalizeEmail folds an email address for use as an account identity.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
