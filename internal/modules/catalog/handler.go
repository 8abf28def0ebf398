package catalog

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
	rg.GET("/cars", h.ListCars)
	rg.GET("/cars/:id", h.GetCar)
	rg.GET("/brands", h.ListBrands)
}

func (h *Handler) ListCars(c *gin.Context) {
	criteria, err := criteriaFromQuery(
		c.Query("types"),
		c.Query("fuel_types"),
		c.Query("brands"),
		c.Query("min_price"),
		c.Query("max_price"),
	)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid filter parameters")
		return
	}

	cars := h.service.List(criteria)
	response.Success(c, http.StatusOK, gin.H{
		"cars":  cars,
		"total": len(cars),
	})
}

func (h *Handler) GetCar(c *gin.Context) {
	car, err := h.service.CarByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrCarNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Car not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load car")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"car": car})
}

func (h *Handler) ListBrands(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"brands": h.service.Brands()})
}
