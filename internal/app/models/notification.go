package models

import "time"

// Notification is one message delivered to a user's inbox.
type Notification struct {
	NotifID   string
	Type      string
	Content   string
	UserID    string
	Status    string
	CreatedAt time.Time
}
