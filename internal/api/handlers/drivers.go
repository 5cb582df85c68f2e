package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courier-admin-service/internal/api/dto"
	"courier-admin-service/internal/domain"
	"courier-admin-service/internal/ports"
)

type DriverHandler struct {
	Drivers ports.DriverRepository
}

// GET /api/drivers
func (h *DriverHandler) List(c *gin.Context) {
	drivers, err := h.Drivers.ListDrivers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, driverResponse(d))
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/drivers/:id
func (h *DriverHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	d, err := h.Drivers.GetDriver(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, driverResponse(d))
}

// POST /api/drivers
func (h *DriverHandler) Create(c *gin.Context) {
	var req dto.DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	status := domain.DriverActive
	if req.Status != "" {
		var err error
		if status, err = domain.ParseDriverStatus(req.Status); err != nil {
			badRequest(c, err)
			return
		}
	}

	d := &domain.Driver{Name: req.Name, Email: req.Email, Phone: req.Phone, Status: status}
	if _, err := h.Drivers.CreateDriver(c.Request.Context(), d); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, driverResponse(d))
}

// PUT /api/drivers/:id
func (h *DriverHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	d, err := h.Drivers.GetDriver(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	d.Name = req.Name
	d.Email = req.Email
	d.Phone = req.Phone
	if err := h.Drivers.UpdateDriver(c.Request.Context(), d); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, driverResponse(d))
}

// PUT /api/drivers/:id/status
func (h *DriverHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.DriverStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	status, err := domain.ParseDriverStatus(req.Status)
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := h.Drivers.UpdateDriverStatus(c.Request.Context(), id, status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"driver_id": id, "status": string(status)})
}

func driverResponse(d *domain.Driver) dto.DriverResponse {
	return dto.DriverResponse{
		DriverID: d.DriverID,
		Name:     d.Name,
		Email:    d.Email,
		Phone:    d.Phone,
		Status:   string(d.Status),
	}
}
