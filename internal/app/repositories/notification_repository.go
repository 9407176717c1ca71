package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openlms/lms/internal/app/models"
	"github.com/openlms/lms/internal/pkg/apperrors"
	"github.com/openlms/lms/internal/pkg/dberrors"
)

var notificationSortColumns = map[string]string{
	"NotifID":   "notif_id",
	"Type":      "type",
	"UserID":    "user_id",
	"Status":    "status",
	"CreatedAt": "created_at",
}

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// List retrieves a page of notifications, optionally scoped to one
// recipient.
func (r *NotificationRepository) List(ctx context.Context, p ListParams, userID string) ([]models.Notification, int64, error) {
	builder := squirrel.Select(
		"notif_id", "type", "content", "user_id", "status", "created_at",
		"COUNT(*) OVER() AS total_count",
	).
		From("notifications").
		PlaceholderFormat(squirrel.Dollar)

	if userID != "" {
		builder = builder.Where(squirrel.Eq{"user_id": userID})
	}

	builder, err := applyListParams(builder, p, notificationSortColumns, "content", "type")
	if err != nil {
		return nil, 0, err
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	var total int64
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.NotifID, &n.Type, &n.Content, &n.UserID, &n.Status, &n.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// GetByID retrieves a notification by ID
func (r *NotificationRepository) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	query := `
		SELECT notif_id, type, content, user_id, status, created_at
		FROM notifications
		WHERE notif_id = $1
	`

	var n models.Notification
	err := r.db.QueryRow(ctx, query, id).Scan(&n.NotifID, &n.Type, &n.Content, &n.UserID, &n.Status, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("error retrieving notification: %w", err)
	}

	return &n, nil
}

// Create inserts a new notification
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	query := `
		INSERT INTO notifications (notif_id, type, content, user_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query, n.NotifID, n.Type, n.Content, n.UserID, n.Status, n.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("notification with this ID already exists")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewValidationError("notification must reference an existing user")
		}
		return fmt.Errorf("error creating notification: %w", err)
	}

	return nil
}

// MarkSeen flips a notification to the seen state.
func (r *NotificationRepository) MarkSeen(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE notifications SET status = $1 WHERE notif_id = $2`,
		models.NotificationSeen, id)
	if err != nil {
		return fmt.Errorf("error updating notification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}

	return nil
}

// UnreadCount returns how many notifications a user has not seen yet.
func (r *NotificationRepository) UnreadCount(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND status = $2`,
		userID, models.NotificationUnseen).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting notifications: %w", err)
	}

	return count, nil
}

// Delete removes a notification
func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE notif_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting notification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}

	return nil
}
