package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courier-admin-service/internal/api/dto"
	"courier-admin-service/internal/ports"
)

type NotificationHandler struct {
	Notifications ports.NotificationRepository
}

// GET /api/drivers/:id/notifications
func (h *NotificationHandler) ListByDriver(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ns, err := h.Notifications.ListNotificationsByDriver(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, dto.NotificationResponse{
			NotificationID: n.NotificationID,
			DriverID:       n.DriverID,
			Title:          n.Title,
			Body:           n.Body,
			Read:           n.Read,
			CreatedAt:      n.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// PUT /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Notifications.MarkNotificationRead(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification_id": id, "read": true})
}
