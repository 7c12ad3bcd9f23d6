package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/teerthankarjewels/storefront_api/internal/middleware"
	"github.com/teerthankarjewels/storefront_api/internal/service"
	"github.com/teerthankarjewels/storefront_api/internal/utils"
)

// AuthHandler serves login, profile and logout endpoints.
type AuthHandler struct {
	auth        *service.AuthService
	rateLimiter *middleware.FailedLoginRateLimiter
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(auth *service.AuthService, rateLimiter *middleware.FailedLoginRateLimiter) *AuthHandler {
	return &AuthHandler{auth: auth, rateLimiter: rateLimiter}
}

// Login authenticates with email and password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "VALIDATION_FAILURE", "Email and password are required")
		return
	}

	ip := c.ClientIP()
	if !h.rateLimiter.Allow(ip) {
		utils.Error(c, 429, "RATE_LIMITED", "Too many login attempts, try again later")
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.rateLimiter.Reset(ip)
	utils.Success(c, 200, "Login successful", result)
}

// GoogleLogin exchanges a Google ID token credential for a session.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req struct {
		Credential string `json:"credential" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "VALIDATION_FAILURE", "Credential is required")
		return
	}

	ip := c.ClientIP()
	if !h.rateLimiter.Allow(ip) {
		utils.Error(c, 429, "RATE_LIMITED", "Too many login attempts, try again later")
		return
	}

	result, err := h.auth.LoginWithGoogle(c.Request.Context(), req.Credential)
	if err != nil {
		respondError(c, err)
		return
	}

	h.rateLimiter.Reset(ip)
	utils.Success(c, 200, "Login successful", result)
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	session := middleware.GetSession(c)
	user := h.auth.Me(c.Request.Context(), session)
	utils.Success(c, 200, "Profile retrieved successfully", user)
}

// Logout ends the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := middleware.GetSession(c)
	if err := h.auth.Logout(c.Request.Context(), session); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Logged out successfully", nil)
}
