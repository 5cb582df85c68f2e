package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"courier-admin-service/internal/api/dto"
	"courier-admin-service/internal/domain"
	"courier-admin-service/internal/ports"
)

type OrderHandler struct {
	Orders ports.OrderRepository
}

// GET /api/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	o, err := h.Orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderResponse(o))
}

// GET /api/drivers/:id/orders
func (h *OrderHandler) ListByDriver(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	orders, err := h.Orders.ListOrdersByDriver(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderResponses(orders))
}

// GET /api/batches/:batchID
func (h *OrderHandler) ListByBatch(c *gin.Context) {
	batchID := c.Param("batchID")
	if batchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid batch id"})
		return
	}
	orders, err := h.Orders.ListOrdersByBatch(c.Request.Context(), batchID)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(orders) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("batch %q not found", batchID)})
		return
	}
	c.JSON(http.StatusOK, orderResponses(orders))
}

// PUT /api/orders/:id/status
//
// The transition is validated against the order lifecycle before anything
// is written; skipping states is rejected.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	target, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		badRequest(c, err)
		return
	}

	o, err := h.Orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	if err := o.StampStatus(target, now); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	if err := h.Orders.UpdateOrderStatus(c.Request.Context(), id, target, now); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderResponse(o))
}

func orderResponses(orders []*domain.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderResponse(o))
	}
	return out
}

func orderResponse(o *domain.Order) dto.OrderResponse {
	return dto.OrderResponse{
		OrderID:               o.OrderID,
		BatchID:               o.BatchID,
		StoreName:             o.StoreName,
		DriverID:              o.DriverID,
		DriverName:            o.DriverName,
		DriverEmail:           o.DriverEmail,
		CustomerID:            o.CustomerID,
		CustomerName:          o.CustomerName,
		Status:                string(o.Status),
		PaymentConfirmation:   o.PaymentConfirmation,
		PaymentStatus:         o.PaymentStatus,
		PaymentMethod:         o.PaymentMethod,
		Start:                 o.Start,
		Destination:           o.Destination,
		Distance:              o.Distance,
		Time:                  o.Time,
		DeliverySequence:      o.DeliverySequence,
		TotalAmount:           o.TotalAmount,
		ReturnOption:          string(o.ReturnOption),
		CreatedAt:             o.CreatedAt,
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		AcceptedAt:            o.AcceptedAt,
		OnTheWayAt:            o.OnTheWayAt,
		ReachedCustomerAt:     o.ReachedCustomerAt,
		CompletedAt:           o.CompletedAt,
	}
}
