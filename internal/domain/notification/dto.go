package notification

import (
	"github.com/workflowhq/workforce-backend-go/internal/pkg/validator"
)

type CreateNotificationRequest struct {
	SenderID   string `json:"-"`
	ReceiverID string `json:"receiver_id"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Type       string `json:"type"`
	Category   string `json:"category"`
}

func (r *CreateNotificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ReceiverID) {
		errs = append(errs, validator.ValidationError{Field: "receiver_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{Field: "message", Message: "is required"})
	}
	if r.Type != "" && !validator.IsInSlice(r.Type, []string{
		string(TypeSuccess), string(TypeError), string(TypeWarning), string(TypeInfo), string(TypeSystem),
	}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "is not a valid notification type"})
	}
	if r.Category != "" && !validator.IsInSlice(r.Category, []string{
		string(CategoryLeave), string(CategoryShift), string(CategoryPayroll), string(CategorySystem), string(CategoryAnnouncement),
	}) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "is not a valid notification category"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type NotificationResponse struct {
	ID         string `json:"id"`
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Type       string `json:"type"`
	Category   string `json:"category"`
	Read       bool   `json:"read"`
	CreatedAt  string `json:"created_at"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}
