package entity

// Status represents the lifecycle state of an account.
type Status string

const (
	// StatusActive indicates a normal, usable account. All accounts are
	// created active; no transition logic is defined beyond this default.
	StatusActive Status = "active"
	// StatusSuspended indicates an account that may not log in.
	StatusSuspended Status = "suspended"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the Status is a valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusSuspended:
		return true
	default:
		return false
	}
}
