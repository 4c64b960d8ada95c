package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pustaka-app/backend/internal/config"
	"github.com/pustaka-app/backend/internal/model"
	"github.com/pustaka-app/backend/internal/service"
)

type AuthHandler struct {
	svc       *service.AuthService
	cookieCfg config.AuthConfig
}

func NewAuthHandler(svc *service.AuthService, cfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{svc: svc, cookieCfg: cfg}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Name, email and password"
// @Success 201 {object} model.RegisterResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.RegisterResponse{
		Status:  "success",
		Message: "User registered successfully",
		User:    sanitize(user),
	})
}

// RegisterAdmin godoc
// @Summary Register an admin account
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.RegisterRequest true "Name, email and password"
// @Success 201 {object} model.RegisterResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /api/admin/register-admin [post]
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.svc.RegisterAdmin(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.RegisterResponse{
		Status:  "success",
		Message: "Admin registered successfully",
		User:    sanitize(user),
	})
}

// Login godoc
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Email and password"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, user, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		writeServiceError(c, err)
		return
	}

	h.setTokenCookie(c, token)
	c.JSON(http.StatusOK, model.LoginResponse{
		Status:  "success",
		Message: "User logged in successfully",
		Token:   token,
		User:    sanitize(user),
	})
}

// Logout godoc
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} model.LogoutResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearTokenCookie(c)
	c.JSON(http.StatusOK, model.LogoutResponse{Message: "Logged out successfully"})
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cookieCfg.CookieName, token, int(h.cookieCfg.TokenTTL.Seconds()), "/", "", false, true)
}

func (h *AuthHandler) clearTokenCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cookieCfg.CookieName, "", -1, "/", "", false, true)
}

func sanitize(user *model.User) model.SanitizedUser {
	return model.SanitizedUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role.String(),
	}
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
