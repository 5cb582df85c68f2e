package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"courier-admin-service/internal/api/dto"
	"courier-admin-service/internal/api/middleware"
	"courier-admin-service/internal/domain"
	"courier-admin-service/internal/platform/obs"
	"courier-admin-service/internal/services"
)

// PlanHandler exposes the multi-order creation flow: a session walks
// depot selection, destination selection, route computation, optional
// manual reordering, and confirmation.
type PlanHandler struct {
	Planner *services.Planner
	Logger  *zap.Logger
}

// POST /api/plans/sessions
func (h *PlanHandler) StartSession(c *gin.Context) {
	s, err := h.Planner.StartSession(c.Request.Context(), middleware.ManagerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse(s))
}

// GET /api/plans/sessions/:id
func (h *PlanHandler) GetSession(c *gin.Context) {
	s, err := h.Planner.GetSession(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(s))
}

// PUT /api/plans/sessions/:id/depot
func (h *PlanHandler) SelectDepot(c *gin.Context) {
	var req dto.SelectDepotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.Planner.SelectDepot(c.Request.Context(), c.Param("id"), req.StoreID); err != nil {
		respondError(c, err)
		return
	}

	s, err := h.Planner.GetSession(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(s))
}

// PUT /api/plans/sessions/:id/destinations
func (h *PlanHandler) SelectDestinations(c *gin.Context) {
	var req dto.SelectDestinationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	picks := make([]services.DestinationPick, 0, len(req.Destinations))
	for _, d := range req.Destinations {
		picks = append(picks, services.DestinationPick{
			CustomerID: d.CustomerID,
			AddressID:  d.AddressID,
			Amount:     d.Amount,
		})
	}

	if err := h.Planner.SelectDestinations(c.Request.Context(), c.Param("id"), req.DriverID, picks); err != nil {
		respondError(c, err)
		return
	}

	s, err := h.Planner.GetSession(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(s))
}

// POST /api/plans/sessions/:id/compute
func (h *PlanHandler) ComputeRoutes(c *gin.Context) {
	// The body is optional; an empty one means no return leg.
	var req dto.ComputeRoutesRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}

	option := domain.ReturnNone
	if req.ReturnOption != "" {
		var err error
		if option, err = domain.ParseReturnOption(req.ReturnOption); err != nil {
			badRequest(c, err)
			return
		}
	}

	var err error
	defer obs.Time(h.Logger, "compute routes")(&err)

	if err = h.Planner.ComputeRoutes(c.Request.Context(), c.Param("id"), option); err != nil {
		respondError(c, err)
		return
	}

	s, getErr := h.Planner.GetSession(c.Param("id"))
	if getErr != nil {
		respondError(c, getErr)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(s))
}

// POST /api/plans/sessions/:id/reorder
func (h *PlanHandler) Reorder(c *gin.Context) {
	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	up := req.Direction == "up"
	if err := h.Planner.Reorder(c.Request.Context(), c.Param("id"), req.LegIndex, up); err != nil {
		respondError(c, err)
		return
	}

	s, err := h.Planner.GetSession(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(s))
}

// POST /api/plans/sessions/:id/confirm
func (h *PlanHandler) Confirm(c *gin.Context) {
	var err error
	defer obs.Time(h.Logger, "confirm plan")(&err)

	var batchID string
	if batchID, err = h.Planner.Confirm(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ConfirmResponse{BatchID: batchID})
}

// DELETE /api/plans/sessions/:id
func (h *PlanHandler) Cancel(c *gin.Context) {
	if err := h.Planner.Cancel(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func sessionResponse(s *services.PlanningSession) dto.SessionResponse {
	out := dto.SessionResponse{
		SessionID:        s.ID,
		State:            string(s.State),
		SuggestedStoreID: s.SuggestedStoreID,
	}
	if s.Depot != nil {
		d := storeResponse(s.Depot)
		out.Depot = &d
	}
	if s.Driver != nil {
		d := driverResponse(s.Driver)
		out.Driver = &d
	}
	if s.Plan != nil {
		out.Legs = make([]dto.LegResponse, 0, len(s.Plan.Legs))
		for _, leg := range s.Plan.Legs {
			out.Legs = append(out.Legs, dto.LegResponse{
				SequenceIndex: leg.SequenceIndex,
				Origin:        leg.Origin,
				Destination:   leg.Destination,
				CustomerID:    leg.CustomerID,
				CustomerName:  leg.CustomerName,
				Distance:      leg.DistanceText,
				DistanceValue: leg.DistanceValue,
				Duration:      leg.DurationText,
				DurationValue: leg.DurationValue,
				IsReturn:      leg.IsReturn,
				DepotFallback: leg.DepotFallback,
			})
		}
	}
	if s.Schedule != nil {
		sched := dto.Schedule{
			Source:   string(s.Schedule.Source),
			BaseTime: s.Schedule.BaseTime,
			Legs:     make([]dto.LegSchedule, 0, len(s.Schedule.Legs)),
		}
		for _, l := range s.Schedule.Legs {
			sched.Legs = append(sched.Legs, dto.LegSchedule{
				SequenceIndex:    l.SequenceIndex,
				StartedAt:        l.StartedAt,
				EstimatedArrival: l.EstimatedArrival,
			})
		}
		out.Schedule = &sched
	}
	return out
}
