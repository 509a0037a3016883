package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/workflowhq/workforce-backend-go/internal/domain/notification"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/sse"
)

type NotificationServiceImpl struct {
	notificationRepo notification.NotificationRepository
	hub              *sse.Hub
}

func NewNotificationService(notificationRepo notification.NotificationRepository, hub *sse.Hub) notification.Service {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		hub:              hub,
	}
}

// push delivers a stored notification to the receiver's live streams.
func (s *NotificationServiceImpl) push(n notification.Notification) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(n.ReceiverID, sse.Event{
		EmployeeID: n.ReceiverID,
		Name:       "notification",
		Data:       mapToNotificationResponse(n),
	})
}

func (s *NotificationServiceImpl) Create(ctx context.Context, req notification.CreateNotificationRequest) (notification.NotificationResponse, error) {
	if err := req.Validate(); err != nil {
		return notification.NotificationResponse{}, err
	}

	typ := notification.TypeInfo
	if req.Type != "" {
		typ = notification.Type(req.Type)
	}
	category := notification.CategorySystem
	if req.Category != "" {
		category = notification.Category(req.Category)
	}

	n := notification.Notification{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Title:      req.Title,
		Message:    req.Message,
		Type:       typ,
		Category:   category,
	}

	created, err := s.notificationRepo.Create(ctx, n)
	if err != nil {
		return notification.NotificationResponse{}, err
	}
	s.push(created)

	return mapToNotificationResponse(created), nil
}

// Notify is fire-and-forget: a failed insert is logged, never propagated,
// so a notification hiccup cannot fail the triggering operation.
func (s *NotificationServiceImpl) Notify(ctx context.Context, senderID, receiverID, title, message string, typ notification.Type, category notification.Category) {
	n := notification.Notification{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Title:      title,
		Message:    message,
		Type:       typ,
		Category:   category,
	}

	created, err := s.notificationRepo.Create(ctx, n)
	if err != nil {
		slog.Error("Failed to create notification",
			"receiver_id", receiverID, "category", category, "error", err)
		return
	}
	s.push(created)
}

func (s *NotificationServiceImpl) GetMine(ctx context.Context, receiverID string) ([]notification.NotificationResponse, error) {
	notifications, err := s.notificationRepo.GetByReceiver(ctx, receiverID, 50)
	if err != nil {
		return nil, err
	}

	result := make([]notification.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, mapToNotificationResponse(n))
	}
	return result, nil
}

func (s *NotificationServiceImpl) UnreadCount(ctx context.Context, receiverID string) (notification.UnreadCountResponse, error) {
	count, err := s.notificationRepo.CountUnread(ctx, receiverID)
	if err != nil {
		return notification.UnreadCountResponse{}, err
	}
	return notification.UnreadCountResponse{UnreadCount: count}, nil
}

func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id, receiverID string) error {
	n, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.ReceiverID != receiverID {
		return notification.ErrNotReceiver
	}
	return s.notificationRepo.MarkRead(ctx, id)
}

func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context, receiverID string) error {
	return s.notificationRepo.MarkAllRead(ctx, receiverID)
}

func mapToNotificationResponse(n notification.Notification) notification.NotificationResponse {
	return notification.NotificationResponse{
		ID:         n.ID,
		SenderID:   n.SenderID,
		ReceiverID: n.ReceiverID,
		Title:      n.Title,
		Message:    n.Message,
		Type:       string(n.Type),
		Category:   string(n.Category),
		Read:       n.Read,
		CreatedAt:  n.CreatedAt.Format(time.RFC3339),
	}
}
