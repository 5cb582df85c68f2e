package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courier-admin-service/internal/api/dto"
	"courier-admin-service/internal/domain"
	"courier-admin-service/internal/ports"
)

type AnnouncementHandler struct {
	Announcements ports.AnnouncementRepository
}

// GET /api/announcements
func (h *AnnouncementHandler) List(c *gin.Context) {
	announcements, err := h.Announcements.ListAnnouncements(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		out = append(out, announcementResponse(a))
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/announcements
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req dto.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	audience := req.Audience
	if audience == "" {
		audience = "all"
	}

	a := &domain.Announcement{Title: req.Title, Body: req.Body, Audience: audience}
	if _, err := h.Announcements.CreateAnnouncement(c.Request.Context(), a); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, announcementResponse(a))
}

// DELETE /api/announcements/:id
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Announcements.DeleteAnnouncement(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func announcementResponse(a *domain.Announcement) dto.AnnouncementResponse {
	return dto.AnnouncementResponse{
		AnnouncementID: a.AnnouncementID,
		Title:          a.Title,
		Body:           a.Body,
		Audience:       a.Audience,
		CreatedAt:      a.CreatedAt,
	}
}
