package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courier-admin-service/internal/api/dto"
	"courier-admin-service/internal/domain"
	"courier-admin-service/internal/ports"
)

type CustomerHandler struct {
	Customers ports.CustomerRepository
}

// GET /api/customers
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.Customers.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, cu := range customers {
		out = append(out, customerResponse(cu))
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	cu, err := h.Customers.GetCustomer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customerResponse(cu))
}

// POST /api/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	cu := &domain.Customer{Name: req.Name, Email: req.Email, Phone: req.Phone}
	for _, a := range req.Addresses {
		cu.Addresses = append(cu.Addresses, domain.CustomerAddress{Label: a.Label, Address: a.Address})
	}

	if _, err := h.Customers.CreateCustomer(c.Request.Context(), cu); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customerResponse(cu))
}

// PUT /api/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	cu, err := h.Customers.GetCustomer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	cu.Name = req.Name
	cu.Email = req.Email
	cu.Phone = req.Phone
	if err := h.Customers.UpdateCustomer(c.Request.Context(), cu); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customerResponse(cu))
}

// POST /api/customers/:id/addresses
func (h *CustomerHandler) AddAddress(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	// Ensure the customer exists before attaching an address.
	if _, err := h.Customers.GetCustomer(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	a := &domain.CustomerAddress{CustomerID: id, Label: req.Label, Address: req.Address}
	if _, err := h.Customers.AddAddress(c.Request.Context(), a); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.AddressResponse{
		AddressID: a.AddressID,
		Label:     a.Label,
		Address:   a.Address,
	})
}

func customerResponse(cu *domain.Customer) dto.CustomerResponse {
	out := dto.CustomerResponse{
		CustomerID: cu.CustomerID,
		Name:       cu.Name,
		Email:      cu.Email,
		Phone:      cu.Phone,
		Addresses:  make([]dto.AddressResponse, 0, len(cu.Addresses)),
	}
	for _, a := range cu.Addresses {
		out.Addresses = append(out.Addresses, dto.AddressResponse{
			AddressID: a.AddressID,
			Label:     a.Label,
			Address:   a.Address,
		})
	}
	return out
}
