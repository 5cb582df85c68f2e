package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courier-admin-service/internal/api/dto"
	"courier-admin-service/internal/domain"
	"courier-admin-service/internal/ports"
)

type PenaltyHandler struct {
	Penalties ports.PenaltyRepository
	Drivers   ports.DriverRepository
}

// GET /api/penalties
func (h *PenaltyHandler) List(c *gin.Context) {
	penalties, err := h.Penalties.ListPenalties(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, penaltyResponses(penalties))
}

// GET /api/drivers/:id/penalties
func (h *PenaltyHandler) ListByDriver(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	penalties, err := h.Penalties.ListPenaltiesByDriver(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, penaltyResponses(penalties))
}

// POST /api/penalties
func (h *PenaltyHandler) Create(c *gin.Context) {
	var req dto.PenaltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	reason, err := domain.ParsePenaltyReason(req.Reason)
	if err != nil {
		badRequest(c, err)
		return
	}

	// The driver must exist; penalties are never free-floating.
	if _, err := h.Drivers.GetDriver(c.Request.Context(), req.DriverID); err != nil {
		respondError(c, err)
		return
	}

	p := &domain.Penalty{
		DriverID: req.DriverID,
		Reason:   reason,
		Amount:   req.Amount,
		Note:     req.Note,
	}
	if _, err := h.Penalties.CreatePenalty(c.Request.Context(), p); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, penaltyResponse(p))
}

func penaltyResponses(penalties []*domain.Penalty) []dto.PenaltyResponse {
	out := make([]dto.PenaltyResponse, 0, len(penalties))
	for _, p := range penalties {
		out = append(out, penaltyResponse(p))
	}
	return out
}

func penaltyResponse(p *domain.Penalty) dto.PenaltyResponse {
	return dto.PenaltyResponse{
		PenaltyID: p.PenaltyID,
		DriverID:  p.DriverID,
		Reason:    string(p.Reason),
		Amount:    p.Amount,
		Note:      p.Note,
		CreatedAt: p.CreatedAt,
	}
}
