// Package entity contains the core business objects of the project.
package entity

import "time"

// Activity classifies entries in the account activity log.
type Activity string

const (
	// ActivityRegistered is appended when an account is created.
	ActivityRegistered Activity = "Registered"
	// ActivityLoggedIn is appended on a successful login.
	ActivityLoggedIn Activity = "Logged In"
	// ActivityLoggedOut is appended on logout.
	ActivityLoggedOut Activity = "Logged Out"
	// ActivityProfileUpdated is appended when profile fields change.
	ActivityProfileUpdated Activity = "Profile Updated"
	// ActivityDeactivated is appended when an account is disabled.
	ActivityDeactivated Activity = "Deactivated"
	// ActivityAnalysis is appended for every chat-analyze attempt,
	// matched or not, with the raw question as the description.
	ActivityAnalysis Activity = "Analysis"
)

// String returns the string representation of the Activity.
func (a Activity) String() string {
	return string(a)
}

// ActivityLog is an append-only audit record of a state-changing account
// action. There is no update or delete path, the log is pure history.
type ActivityLog struct {
	ID          int64     // Surrogate key.
	Email       string    // The account the activity belongs to.
	Activity    Activity  // What happened.
	Description string    // Optional free text, e.g. the raw analysis question.
	OccurredAt  time.Time // When it happened.
}
