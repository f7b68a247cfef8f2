package http

import (
	"encoding/json"
	"net/http"

	"github.com/attendhub/attendance-backend-go/internal/domain/notification"
	"github.com/attendhub/attendance-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	RegisterDevice(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationService notification.NotificationService
}

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &notificationHandlerImpl{
		notificationService: notificationService,
	}
}

// RegisterDevice implements NotificationHandler.
func (h *notificationHandlerImpl) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req notification.RegisterDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.notificationService.RegisterDevice(r.Context(), userID, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
