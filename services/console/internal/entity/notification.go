package entity

import "time"

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
	NotificationSuccess NotificationType = "success"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationInfo, NotificationWarning, NotificationError, NotificationSuccess:
		return true
	}
	return false
}

// Notification is an entry in the header bell dropdown. Read only ever goes
// from false to true.
type Notification struct {
	ID        string           `json:"id" yaml:"id"`
	Title     string           `json:"title" yaml:"title"`
	Message   string           `json:"message" yaml:"message"`
	Type      NotificationType `json:"type" yaml:"type"`
	Timestamp time.Time        `json:"timestamp" yaml:"-"`
	Read      bool             `json:"read" yaml:"read"`
}
