package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlms/lms/internal/app/models"
	"github.com/openlms/lms/internal/app/repositories"
	"github.com/openlms/lms/internal/pkg/apperrors"
	"github.com/openlms/lms/pkg/api"
)

type stubNotificationService struct {
	notifications []models.Notification
	total         int64
	unread        int64
	err           error

	gotUserID string
	seenID    string
}

func (s *stubNotificationService) ListNotifications(_ context.Context, _ repositories.ListParams, userID string) ([]models.Notification, int64, error) {
	s.gotUserID = userID
	return s.notifications, s.total, s.err
}

func (s *stubNotificationService) GetNotificationByID(_ context.Context, id string) (*models.Notification, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.notifications[0], nil
}

func (s *stubNotificationService) CreateNotification(_ context.Context, req *api.CreateNotificationRequest) (*models.Notification, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Notification{
		NotifID: req.NotifID,
		Type:    req.Type,
		Content: req.Content,
		UserID:  req.UserID,
		Status:  models.NotificationUnseen,
	}, nil
}

func (s *stubNotificationService) MarkSeen(_ context.Context, id string) error {
	s.seenID = id
	return s.err
}

func (s *stubNotificationService) UnreadCount(_ context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, apperrors.NewValidationError("user ID cannot be empty")
	}
	s.gotUserID = userID
	return s.unread, s.err
}

func (s *stubNotificationService) DeleteNotification(_ context.Context, id string) error {
	return s.err
}

func notificationRouter(svc *stubNotificationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	c := NewNotificationController(svc)
	router.GET("/notifications", c.ListNotifications)
	router.GET("/notifications/unread-count", c.UnreadCount)
	router.POST("/notifications", c.CreateNotification)
	router.PATCH("/notifications/:id/seen", c.MarkSeen)
	return router
}

func TestListNotificationsScopedToUser(t *testing.T) {
	svc := &stubNotificationService{
		notifications: []models.Notification{
			{NotifID: "N001", Type: "Grade", Content: "Score posted", UserID: "U001", Status: models.NotificationUnseen, CreatedAt: time.Now()},
		},
		total: 1,
	}

	w := doRequest(notificationRouter(svc), http.MethodGet, "/notifications?userId=U001", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "U001", svc.gotUserID)

	var list api.NotificationList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "N001", list.Items[0].NotifID)
	assert.Equal(t, "Unseen", list.Items[0].Status)
}

func TestMarkSeen(t *testing.T) {
	svc := &stubNotificationService{}

	w := doRequest(notificationRouter(svc), http.MethodPatch, "/notifications/N007/seen", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "N007", svc.seenID)

	var msg api.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	assert.Equal(t, "Notification N007 marked as seen", msg.Message)
}

func TestMarkSeenUnknownNotification(t *testing.T) {
	svc := &stubNotificationService{err: apperrors.ErrNotificationNotFound}

	w := doRequest(notificationRouter(svc), http.MethodPatch, "/notifications/N999/seen", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnreadCount(t *testing.T) {
	svc := &stubNotificationService{unread: 5}

	w := doRequest(notificationRouter(svc), http.MethodGet, "/notifications/unread-count?userId=U001", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"unread":5}`, w.Body.String())
}

func TestUnreadCountRequiresUserID(t *testing.T) {
	svc := &stubNotificationService{}

	w := doRequest(notificationRouter(svc), http.MethodGet, "/notifications/unread-count", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
