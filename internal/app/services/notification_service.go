package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/openlms/lms/internal/app/models"
	"github.com/openlms/lms/internal/app/repositories"
	"github.com/openlms/lms/internal/pkg/apperrors"
	"github.com/openlms/lms/pkg/api"
)

// NotificationService defines the interface for notification operations
type NotificationService interface {
	ListNotifications(ctx context.Context, p repositories.ListParams, userID string) ([]models.Notification, int64, error)
	GetNotificationByID(ctx context.Context, id string) (*models.Notification, error)
	CreateNotification(ctx context.Context, req *api.CreateNotificationRequest) (*models.Notification, error)
	MarkSeen(ctx context.Context, id string) error
	UnreadCount(ctx context.Context, userID string) (int64, error)
	DeleteNotification(ctx context.Context, id string) error
}

// notificationServiceImpl implements NotificationService
type notificationServiceImpl struct {
	notificationRepo *repositories.NotificationRepository
	logger           zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo *repositories.NotificationRepository, logger zerolog.Logger) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// ListNotifications retrieves a page of notifications, optionally for
// one recipient
func (s *notificationServiceImpl) ListNotifications(ctx context.Context, p repositories.ListParams, userID string) ([]models.Notification, int64, error) {
	return s.notificationRepo.List(ctx, p, strings.TrimSpace(userID))
}

// GetNotificationByID retrieves a notification by ID
func (s *notificationServiceImpl) GetNotificationByID(ctx context.Context, id string) (*models.Notification, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("notification ID cannot be empty")
	}
	return s.notificationRepo.GetByID(ctx, id)
}

// CreateNotification validates and stores a new notification
func (s *notificationServiceImpl) CreateNotification(ctx context.Context, req *api.CreateNotificationRequest) (*models.Notification, error) {
	status := req.Status
	if status == "" {
		status = models.NotificationUnseen
	}
	if status != models.NotificationSeen && status != models.NotificationUnseen {
		return nil, fmt.Errorf("%w: status must be Seen or Unseen", apperrors.ErrValidationFailed)
	}

	n := &models.Notification{
		NotifID:   strings.TrimSpace(req.NotifID),
		Type:      strings.TrimSpace(req.Type),
		Content:   req.Content,
		UserID:    strings.TrimSpace(req.UserID),
		Status:    status,
		CreatedAt: time.Now(),
	}

	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("notifId", n.NotifID).
		Str("userId", n.UserID).
		Str("type", n.Type).
		Msg("Notification created")

	return n, nil
}

// MarkSeen flips one notification to the seen state
func (s *notificationServiceImpl) MarkSeen(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidationError("notification ID cannot be empty")
	}
	return s.notificationRepo.MarkSeen(ctx, id)
}

// UnreadCount counts a user's unseen notifications
func (s *notificationServiceImpl) UnreadCount(ctx context.Context, userID string) (int64, error) {
	if strings.TrimSpace(userID) == "" {
		return 0, apperrors.NewValidationError("user ID cannot be empty")
	}
	return s.notificationRepo.UnreadCount(ctx, userID)
}

// DeleteNotification removes a notification
func (s *notificationServiceImpl) DeleteNotification(ctx context.Context, id string) error {
	return s.notificationRepo.Delete(ctx, id)
}
