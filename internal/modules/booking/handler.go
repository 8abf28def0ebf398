package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"swiftdrive/internal/pkg/response"
	"swiftdrive/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the authenticated booking flow.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/attempts", h.StartAttempt)
	rg.GET("/bookings/attempts/:id", h.GetAttempt)
	rg.DELETE("/bookings/attempts/:id", h.AbandonAttempt)
	rg.POST("/bookings/attempts/:id/finalize", h.FinalizeAttempt)
	rg.PUT("/bookings/attempts/:id/times", h.UpdateTimes)
	rg.POST("/bookings/attempts/:id/confirm", h.ConfirmAttempt)
	rg.GET("/bookings", h.ListBookings)
}

// RegisterPublicRoutes mounts the endpoints that do not require a session.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/quotes", h.Quote)
}

func (h *Handler) StartAttempt(c *gin.Context) {
	var req StartAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	attempt, err := h.service.StartAttempt(req.CarID, req.criteria())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"attempt": attempt})
}

func (h *Handler) GetAttempt(c *gin.Context) {
	attempt, err := h.service.GetAttempt(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"attempt": attempt})
}

func (h *Handler) AbandonAttempt(c *gin.Context) {
	if err := h.service.Abandon(c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"abandoned": true})
}

func (h *Handler) FinalizeAttempt(c *gin.Context) {
	var req FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid customer details", fields)
		return
	}

	attempt, err := h.service.Finalize(c.Param("id"), req.CustomerName, req.CustomerEmail)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"attempt": attempt})
}

func (h *Handler) UpdateTimes(c *gin.Context) {
	var req UpdateTimesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	attempt, err := h.service.UpdateTimes(c.Param("id"), req.criteria())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"attempt": attempt})
}

func (h *Handler) ConfirmAttempt(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	bkg, err := h.service.Confirm(c.Request.Context(), c.Param("id"), req.Verification)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": bkg})
}

func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	quote, err := h.service.QuoteFor(req.CarID, req.criteria())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"quote": quote})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCarNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Car not found")
	case errors.Is(err, ErrAttemptNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking attempt not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid rental window")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_STATE", "The attempt cannot move to that state")
	case errors.Is(err, ErrIncompleteDetails):
		response.Error(c, http.StatusUnprocessableEntity, "INCOMPLETE_DETAILS", "Customer name and email are required before confirming")
	case errors.Is(err, ErrVerificationMismatch):
		response.Error(c, http.StatusUnprocessableEntity, "VERIFICATION_MISMATCH", "The typed amount does not match the total")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
