package inventory

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ypremchand/Equipment-Management-sub000/pkg/apperrors"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/metadata"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/models"
)

type unitStore interface {
	InsertItem(t metadata.AssetType, item models.InventoryItem) (int, error)
	GetItem(t metadata.AssetType, id int) (*models.InventoryItem, error)
}

type categoryEnsurer interface {
	EnsureCategory(name, preCode string) (*models.Asset, error)
}

// ItemHandler is the staff-facing intake and lookup surface for physical
// units.
type ItemHandler struct {
	store      unitStore
	categories categoryEnsurer
}

func NewItemHandler(store unitStore, categories categoryEnsurer) *ItemHandler {
	return &ItemHandler{
		store:      store,
		categories: categories,
	}
}

func (h *ItemHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/inventory/:assetType", h.CreateItem)
	router.GET("/inventory/:assetType/:id", h.GetItem)
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	t, err := metadata.NewAssetType(c.Param("assetType"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var payload models.CreateInventoryItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	// The category name drives availability lookups later; it must resolve to
	// the same type the unit is being filed under.
	if named, err := metadata.NormalizeAssetType(payload.CategoryName); err != nil || named != t {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name does not match asset type"})
		return
	}

	category, err := h.categories.EnsureCategory(payload.CategoryName, payload.PreCode)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to resolve asset category", "details": err.Error()})
		return
	}

	id, err := h.store.InsertItem(t, models.InventoryItem{
		AssetID:           category.ID,
		AssetTag:          payload.AssetTag,
		Brand:             payload.Brand,
		Model:             payload.Model,
		Processor:         payload.Processor,
		Ram:               payload.Ram,
		Storage:           payload.Storage,
		OperatingSystem:   payload.OperatingSystem,
		NetworkType:       payload.NetworkType,
		SimType:           payload.SimType,
		SimSupport:        payload.SimSupport,
		PrinterType:       payload.PrinterType,
		PaperSize:         payload.PaperSize,
		Dpi:               payload.Dpi,
		ScannerType:       payload.ScannerType,
		ScannerResolution: payload.ScannerResolution,
		ReaderType:        payload.ReaderType,
		Technology:        payload.Technology,
	})
	if err != nil {
		var unique *apperrors.UniqueViolationError
		if errors.As(err, &unique) {
			c.JSON(http.StatusConflict, gin.H{"error": "Asset tag already exists"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to create inventory item", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	t, err := metadata.NewAssetType(c.Param("assetType"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inventory item ID"})
		return
	}

	item, err := h.store.GetItem(t, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to get inventory item", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}
