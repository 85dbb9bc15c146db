package locations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ypremchand/Equipment-Management-sub000/pkg/apperrors"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/models"
)

type LocationHandler struct {
	repository *LocationRepository
}

func NewLocationHandler(r *LocationRepository) *LocationHandler {
	return &LocationHandler{repository: r}
}

func (h *LocationHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/locations", h.GetLocations)
	router.POST("/locations", h.CreateLocation)
}

func (h *LocationHandler) GetLocations(c *gin.Context) {
	locations, err := h.repository.GetLocations()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to list locations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, locations)
}

func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var location models.Location
	if err := c.ShouldBindJSON(&location); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}
	if location.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Location name is required"})
		return
	}

	if err := h.repository.PersistLocation(&location); err != nil {
		var unique *apperrors.UniqueViolationError
		if errors.As(err, &unique) {
			c.JSON(http.StatusConflict, gin.H{"error": "Location already exists"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to create location", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, location)
}
