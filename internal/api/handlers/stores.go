package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courier-admin-service/internal/api/dto"
	"courier-admin-service/internal/domain"
	"courier-admin-service/internal/ports"
)

type StoreHandler struct {
	Stores ports.StoreRepository
}

// GET /api/stores
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.Stores.ListStores(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, storeResponse(s))
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/stores/:id
func (h *StoreHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	s, err := h.Stores.GetStore(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, storeResponse(s))
}

// POST /api/stores
func (h *StoreHandler) Create(c *gin.Context) {
	var req dto.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	s := &domain.Store{Name: req.Name, Address: req.Address, Active: active}
	if err := s.Validate(); err != nil {
		badRequest(c, err)
		return
	}

	if _, err := h.Stores.CreateStore(c.Request.Context(), s); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, storeResponse(s))
}

// PUT /api/stores/:id
func (h *StoreHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	s, err := h.Stores.GetStore(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	s.Name = req.Name
	s.Address = req.Address
	if req.Active != nil {
		s.Active = *req.Active
	}
	if err := s.Validate(); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.Stores.UpdateStore(c.Request.Context(), s); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, storeResponse(s))
}

func storeResponse(s *domain.Store) dto.StoreResponse {
	return dto.StoreResponse{
		StoreID: s.StoreID,
		Name:    s.Name,
		Address: s.Address,
		Active:  s.Active,
	}
}
