package model

import "fmt"

// SessionStatus is shared by all three session hierarchies.
type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionReady     SessionStatus = "ready"
	SessionOngoing   SessionStatus = "ongoing"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
	SessionAbsent    SessionStatus = "absent"
)

var allSessionStatuses = map[SessionStatus]struct{}{
	SessionScheduled: {},
	SessionReady:     {},
	SessionOngoing:   {},
	SessionCompleted: {},
	SessionCancelled: {},
	SessionAbsent:    {},
}

func ParseSessionStatus(s string) (SessionStatus, error) {
	st := SessionStatus(s)
	if _, ok := allSessionStatuses[st]; !ok {
		return "", fmt.Errorf("unknown session status %q", s)
	}
	return st, nil
}

// IsTerminal: the session will never run (again).
func (s SessionStatus) IsTerminal() bool {
	return s == SessionCompleted || s == SessionCancelled || s == SessionAbsent
}

// Countable: cancelled sessions are excluded from every attendance-rate
// denominator; absent counts toward the total but not toward attended.
func (s SessionStatus) Countable() bool {
	return s != SessionCancelled
}
