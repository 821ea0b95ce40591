package entity

import "time"

// Toast is an ephemeral, self-dismissing message. It shares the notification
// type vocabulary but is never stored in the console state.
type Toast struct {
	ID       int64            `json:"id"`
	Type     NotificationType `json:"type"`
	Title    string           `json:"title"`
	Message  string           `json:"message,omitempty"`
	Duration int              `json:"duration,omitempty"` // milliseconds
}

// Lifetime returns how long the toast stays up, falling back to def when no
// duration was given.
func (t Toast) Lifetime(def time.Duration) time.Duration {
	if t.Duration > 0 {
		return time.Duration(t.Duration) * time.Millisecond
	}
	return def
}
