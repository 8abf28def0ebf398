package concierge

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swiftdrive/internal/domain"
	"swiftdrive/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/concierge/recommend", h.Recommend)
	rg.POST("/concierge/ask", h.Ask)
	rg.GET("/concierge/ws", h.HandleWebSocket)
}

func (h *Handler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	text := h.service.Recommend(c.Request.Context(), domain.SearchCriteria{
		Location:   req.Location,
		PickupDate: req.PickupDate,
		ReturnDate: req.ReturnDate,
	})
	response.Success(c, http.StatusOK, gin.H{"recommendation": text})
}

func (h *Handler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"answer": h.service.Ask(c.Request.Context(), req.Query)})
}
