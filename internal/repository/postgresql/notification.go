package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workflowhq/workforce-backend-go/internal/domain/notification"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/database"
)

type notificationRepository struct {
	db *database.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *database.DB) notification.NotificationRepository {
	return &notificationRepository{db: db}
}

const notificationColumns = `
	id, sender_id, receiver_id, title, message, type, category, read, created_at`

func scanNotification(row pgx.Row) (notification.Notification, error) {
	var n notification.Notification
	var typ, category string

	err := row.Scan(
		&n.ID, &n.SenderID, &n.ReceiverID, &n.Title, &n.Message,
		&typ, &category, &n.Read, &n.CreatedAt,
	)
	if err != nil {
		return notification.Notification{}, err
	}

	n.Type = notification.Type(typ)
	n.Category = notification.Category(category)
	return n, nil
}

func (r *notificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.CreatedAt = time.Now()

	query := `
		INSERT INTO notifications (
			id, sender_id, receiver_id, title, message, type, category, read, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := q.Exec(ctx, query,
		n.ID, n.SenderID, n.ReceiverID, n.Title, n.Message,
		string(n.Type), string(n.Category), n.Read, n.CreatedAt,
	)
	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id string) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM notifications WHERE id = $1`, notificationColumns)

	n, err := scanNotification(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notification.Notification{}, notification.ErrNotificationNotFound
		}
		return notification.Notification{}, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

func (r *notificationRepository) GetByReceiver(ctx context.Context, receiverID string, limit int) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = 50
	}

	query := fmt.Sprintf(`
		SELECT %s FROM notifications
		WHERE receiver_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, notificationColumns)

	rows, err := q.Query(ctx, query, receiverID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		n, scanErr := scanNotification(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", scanErr)
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, receiverID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM notifications WHERE receiver_id = $1 AND read = false`

	var count int64
	if err := q.QueryRow(ctx, query, receiverID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `UPDATE notifications SET read = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	if result.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, receiverID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE notifications SET read = true WHERE receiver_id = $1 AND read = false`, receiverID)
	if err != nil {
		return fmt.Errorf("failed to mark all notifications as read: %w", err)
	}

	return nil
}

func (r *notificationRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	if result.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}
