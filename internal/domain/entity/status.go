// Package entity contains the core business objects of the project.
package entity

// Status represents the lifecycle state of an account.
// Transitions: active -> disabled via deactivation. No reactivation path is
// exposed through the API.
type Status string

const (
	// StatusActive indicates an account that may log in.
	StatusActive Status = "active"
	// StatusDisabled indicates a soft-deleted account.
	StatusDisabled Status = "disabled"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the Status is a valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusDisabled:
		return true
	default:
		return false
	}
}
