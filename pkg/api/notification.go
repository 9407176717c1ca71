package api

import "time"

// Notification is a notification row as served over the wire.
type Notification struct {
	NotifID   string    `json:"NotifID"`
	Type      string    `json:"Type"`
	Content   string    `json:"Content"`
	UserID    string    `json:"UserID"`
	Status    string    `json:"Status"`
	CreatedAt time.Time `json:"CreatedAt"`
}

// CreateNotificationRequest is the payload for POST /notifications.
// Status defaults to Unseen when omitted.
type CreateNotificationRequest struct {
	NotifID string `json:"NotifID" binding:"required,max=16"`
	Type    string `json:"Type" binding:"required,max=32"`
	Content string `json:"Content" binding:"required"`
	UserID  string `json:"UserID" binding:"required,max=16"`
	Status  string `json:"Status"`
}

// UnreadCount is the body of GET /notifications/unread-count.
type UnreadCount struct {
	Unread int64 `json:"unread"`
}
