package notification

import "context"

// NotificationRepository defines data access methods for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	GetByID(ctx context.Context, id string) (Notification, error)
	GetByReceiver(ctx context.Context, receiverID string, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, receiverID string) (int64, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, receiverID string) error
	Delete(ctx context.Context, id string) error
}
