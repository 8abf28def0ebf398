package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"swiftdrive/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.Login)
	rg.POST("/auth/logout", h.Logout)
	rg.GET("/auth/session", h.Session)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Username and password are required")
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to start session")
		return
	}

	response.Success(c, http.StatusOK, LoginResponse{Token: token, Username: req.Username})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context()); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to end session")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"logged_out": true})
}

func (h *Handler) Session(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"active": h.service.Session(c.Request.Context())})
}
