package notification

import "context"

// Service defines business logic for notifications. Notify is the internal
// entry point other services use when a decision should ping an employee.
type Service interface {
	Create(ctx context.Context, req CreateNotificationRequest) (NotificationResponse, error)
	Notify(ctx context.Context, senderID, receiverID, title, message string, typ Type, category Category)
	GetMine(ctx context.Context, receiverID string) ([]NotificationResponse, error)
	UnreadCount(ctx context.Context, receiverID string) (UnreadCountResponse, error)
	MarkRead(ctx context.Context, id, receiverID string) error
	MarkAllRead(ctx context.Context, receiverID string) error
}
