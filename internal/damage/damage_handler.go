package damage

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ypremchand/Equipment-Management-sub000/pkg/apperrors"
)

type DamageHandler struct {
	service *DamageService
}

func NewHandler(service *DamageService) *DamageHandler {
	return &DamageHandler{service: service}
}

func (h *DamageHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/damaged-assets", h.GetDamagedAssets)
	router.GET("/repair-histories", h.GetRepairHistories)
	router.POST("/damaged-assets/repair/:id", h.RepairDamagedAsset)
}

func (h *DamageHandler) GetDamagedAssets(c *gin.Context) {
	entries, err := h.service.ListDamagedAssets()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to list damaged assets", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *DamageHandler) GetRepairHistories(c *gin.Context) {
	entries, err := h.service.ListRepairHistories()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to list repair histories", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *DamageHandler) RepairDamagedAsset(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid damaged asset ID"})
		return
	}

	if err := h.service.RepairDamagedAsset(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to repair damaged asset", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset repaired and returned to inventory"})
}
