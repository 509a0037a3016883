package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/workflowhq/workforce-backend-go/internal/domain/notification"
	"github.com/workflowhq/workforce-backend-go/internal/handler/http/middleware"
	"github.com/workflowhq/workforce-backend-go/internal/handler/http/response"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/sse"
)

type NotificationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	UnreadCount(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notificationService notification.Service
	hub                 *sse.Hub
}

func NewNotificationHandler(notificationService notification.Service, hub *sse.Hub) NotificationHandler {
	return &NotificationHandlerImpl{notificationService: notificationService, hub: hub}
}

// Create implements NotificationHandler.
func (h *NotificationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req notification.CreateNotificationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateNotification decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.SenderID = middleware.EmployeeID(r)

	result, err := h.notificationService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateNotification service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Notification sent", result)
}

// GetMine implements NotificationHandler.
func (h *NotificationHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.notificationService.GetMine(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UnreadCount implements NotificationHandler.
func (h *NotificationHandlerImpl) UnreadCount(w http.ResponseWriter, r *http.Request) {
	result, err := h.notificationService.UnreadCount(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MarkRead implements NotificationHandler.
func (h *NotificationHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.notificationService.MarkRead(r.Context(), id, middleware.EmployeeID(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification marked as read", nil)
}

// Stream pushes notifications to the client over server-sent events.
func (h *NotificationHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	employeeID := middleware.EmployeeID(r)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(employeeID)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

// MarkAllRead implements NotificationHandler.
func (h *NotificationHandlerImpl) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notificationService.MarkAllRead(r.Context(), middleware.EmployeeID(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All notifications marked as read", nil)
}
