package client

import (
	"context"
	"net/url"

	"github.com/openlms/lms/pkg/api"
)

// NotificationService reads and updates notifications through the
// gateway.
type NotificationService struct {
	client *Client
}

// Notifications returns the notification view service.
func (c *Client) Notifications() *NotificationService {
	return &NotificationService{client: c}
}

func toNotificationView(w api.Notification) Notification {
	return Notification{
		ID:        w.NotifID,
		Type:      w.Type,
		Content:   w.Content,
		UserID:    w.UserID,
		Seen:      w.Status == "Seen",
		CreatedAt: w.CreatedAt,
	}
}

// List fetches a page of notifications, optionally scoped to one user.
func (s *NotificationService) List(ctx context.Context, userID string, opts ListOptions) ([]Notification, int64, error) {
	path := "/notifications" + opts.query()
	if userID != "" {
		sep := "?"
		if opts.query() != "" {
			sep = "&"
		}
		path += sep + "userId=" + url.QueryEscape(userID)
	}

	var list api.NotificationList
	if err := s.client.Get(ctx, path, &list); err != nil {
		return nil, 0, err
	}

	views := make([]Notification, 0, len(list.Items))
	for _, item := range list.Items {
		views = append(views, toNotificationView(item))
	}
	return views, list.TotalCount, nil
}

// Create adds a notification.
func (s *NotificationService) Create(ctx context.Context, req api.CreateNotificationRequest) (Notification, error) {
	var wire api.Notification
	if err := s.client.Post(ctx, "/notifications", req, &wire); err != nil {
		return Notification{}, err
	}
	return toNotificationView(wire), nil
}

// MarkSeen flips a notification to seen and returns the server's
// message.
func (s *NotificationService) MarkSeen(ctx context.Context, notifID string) (string, error) {
	var msg api.MessageResponse
	if err := s.client.Patch(ctx, "/notifications/"+notifID+"/seen", nil, &msg); err != nil {
		return "", err
	}
	return msg.Message, nil
}

// UnreadCount returns the number of unseen notifications for a user.
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	var count api.UnreadCount
	path := "/notifications/unread-count?userId=" + url.QueryEscape(userID)
	if err := s.client.Get(ctx, path, &count); err != nil {
		return 0, err
	}
	return count.Unread, nil
}

// Delete removes a notification and returns the server's message.
func (s *NotificationService) Delete(ctx context.Context, notifID string) (string, error) {
	var msg api.MessageResponse
	if err := s.client.Delete(ctx, "/notifications/"+notifID, &msg); err != nil {
		return "", err
	}
	return msg.Message, nil
}
