package googlesheets

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ypremchand/Equipment-Management-sub000/internal/catalog"
)

type ReportHandler struct {
	service *InventoryReportService
	catalog *catalog.CatalogService
}

func NewReportHandler(service *InventoryReportService, catalogService *catalog.CatalogService) *ReportHandler {
	return &ReportHandler{
		service: service,
		catalog: catalogService,
	}
}

func (h *ReportHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/reports/inventory/export", h.ExportInventoryReport)
}

func (h *ReportHandler) ExportInventoryReport(c *gin.Context) {
	if !h.service.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google Sheets export is not configured"})
		return
	}

	rows, err := h.catalog.GetInventoryReport()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to collect inventory report", "details": err.Error()})
		return
	}

	if err := h.service.ExportInventoryReport(rows); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to export inventory report", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inventory report exported"})
}
