package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"iris-api/internal/service"
)

// AuthHandler mantiene dependencias para el endpoint de login.
type AuthHandler struct {
	logger   *zap.Logger
	verifier service.CredentialVerifier
	limiter  service.LoginRateLimiter
}

// NewAuthHandler crea una instancia de AuthHandler. El limitador puede ser
// nil; en ese caso no se limitan intentos.
func NewAuthHandler(logger *zap.Logger, verifier service.CredentialVerifier, limiter service.LoginRateLimiter) *AuthHandler {
	return &AuthHandler{
		logger:   logger,
		verifier: verifier,
		limiter:  limiter,
	}
}

// Login maneja POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many login attempts"})
		return
	}

	// Campos ausentes quedan vacíos y simplemente no coinciden.
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, err := h.verifier.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
