package models

// NotificationKind separates success toasts from failures
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a one-shot message shown after a user action
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
}

// Success builds a success notification
func Success(message string) Notification {
	return Notification{Kind: NotificationSuccess, Message: message}
}

// Failure builds an error notification
func Failure(message string) Notification {
	return Notification{Kind: NotificationError, Message: message}
}

// IsError reports whether the notification describes a failure
func (n Notification) IsError() bool {
	return n.Kind == NotificationError
}
