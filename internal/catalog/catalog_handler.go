package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ypremchand/Equipment-Management-sub000/pkg/apperrors"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/models"
)

type CatalogHandler struct {
	service *CatalogService
}

func NewHandler(service *CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/assets", h.GetAssetCategories)
	router.GET("/assets/:id", h.GetAssetCategory)
	router.POST("/assets", h.CreateAssetCategory)
}

func (h *CatalogHandler) GetAssetCategories(c *gin.Context) {
	categories, err := h.service.GetAssetCategories()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to list asset categories", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) GetAssetCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset category ID"})
		return
	}

	category, err := h.service.GetAssetCategory(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to get asset category", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) CreateAssetCategory(c *gin.Context) {
	var req models.AssetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	category, err := h.service.CreateAssetCategory(req)
	if err != nil {
		var unique *apperrors.UniqueViolationError
		if errors.As(err, &unique) {
			c.JSON(http.StatusConflict, gin.H{"error": "Asset category already exists"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to create asset category", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, category)
}
