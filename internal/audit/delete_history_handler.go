package audit

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DeleteHistoryHandler struct {
	repository *DeleteHistoryRepository
}

func NewHandler(r *DeleteHistoryRepository) *DeleteHistoryHandler {
	return &DeleteHistoryHandler{repository: r}
}

func (h *DeleteHistoryHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/delete-histories/admin", h.GetAdminHistories)
	router.GET("/delete-histories/user", h.GetUserHistories)
}

func (h *DeleteHistoryHandler) GetAdminHistories(c *gin.Context) {
	entries, err := h.repository.GetAdminHistories()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to list delete histories", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *DeleteHistoryHandler) GetUserHistories(c *gin.Context) {
	entries, err := h.repository.GetUserHistories()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to list delete histories", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}
