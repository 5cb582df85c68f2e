package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"courier-admin-service/internal/api/dto"
	"courier-admin-service/internal/domain"
	"courier-admin-service/internal/platform/auth"
	"courier-admin-service/internal/ports"
)

type AuthHandler struct {
	Managers ports.ManagerRepository
	Tokens   *auth.TokenManager
	Logger   *zap.Logger
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	m, err := h.Managers.GetManagerByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same response as a wrong password; no account probing.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		respondError(c, err)
		return
	}

	if !auth.CheckPassword(m.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.Tokens.Issue(m)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Logger.Info("manager logged in", zap.Int64("manager_id", m.ManagerID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:   token,
		Manager: managerResponse(m),
	})
}

// POST /api/auth/register (admin only)
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	role, err := domain.ParseManagerRole(req.Role)
	if err != nil {
		badRequest(c, err)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	m := &domain.Manager{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if _, err := h.Managers.CreateManager(c.Request.Context(), m); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, managerResponse(m))
}

func managerResponse(m *domain.Manager) dto.ManagerResponse {
	return dto.ManagerResponse{
		ManagerID: m.ManagerID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      string(m.Role),
	}
}
