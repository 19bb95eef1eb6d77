package entity

import "time"

type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifyWarning NotificationType = "warning"
	NotifySuccess NotificationType = "success"
)

// Notification is a process-lifetime feed entry. It is never persisted
// and is only mutated by read acknowledgement.
type Notification struct {
	ID      string           `json:"id"`
	UserID  string           `json:"user_id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
	Date    time.Time        `json:"date"`
	IsRead  bool             `json:"is_read"`
}
