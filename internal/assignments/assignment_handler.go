package assignments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ypremchand/Equipment-Management-sub000/pkg/apperrors"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/models"
)

type AssignmentHandler struct {
	service *AssignmentService
}

func NewHandler(service *AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

func (h *AssignmentHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/asset-requests/:id/confirm-approve", h.ConfirmApprove)
	router.POST("/asset-requests/:id/reject", h.Reject)
	router.POST("/asset-requests/return-item/:assignedId", h.ReturnItem)
	router.DELETE("/asset-requests/:id", h.DeleteRequest)
	router.GET("/asset-requests/:id/items/:itemId/available", h.ListAvailableForItem)
}

// RegisterUserRoutes exposes the requester-facing cancel endpoint; everything
// else on this handler is staff-only.
func (h *AssignmentHandler) RegisterUserRoutes(router gin.IRouter) {
	router.POST("/asset-requests/:id/cancel", h.CancelRequest)
}

func (h *AssignmentHandler) ConfirmApprove(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset request ID"})
		return
	}

	var payload models.ConfirmApprovePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	if err := h.service.ConfirmApprove(requestID, payload); err != nil {
		respondWithServiceError(c, err, "Unable to approve asset request")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset request approved"})
}

func (h *AssignmentHandler) Reject(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset request ID"})
		return
	}

	if err := h.service.Reject(requestID); err != nil {
		respondWithServiceError(c, err, "Unable to reject asset request")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset request rejected"})
}

func (h *AssignmentHandler) ReturnItem(c *gin.Context) {
	assignedID, err := strconv.Atoi(c.Param("assignedId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assigned asset ID"})
		return
	}

	var payload models.ReturnItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	if err := h.service.ReturnItem(assignedID, payload); err != nil {
		respondWithServiceError(c, err, "Unable to return assigned asset")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset returned"})
}

func (h *AssignmentHandler) DeleteRequest(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset request ID"})
		return
	}

	var payload models.DeleteRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	if err := h.service.DeleteRequest(requestID, payload); err != nil {
		respondWithServiceError(c, err, "Unable to delete asset request")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset request deleted"})
}

func (h *AssignmentHandler) CancelRequest(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset request ID"})
		return
	}

	var payload models.CancelRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	if err := h.service.CancelRequest(requestID, payload); err != nil {
		respondWithServiceError(c, err, "Unable to cancel asset request")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset request cancelled"})
}

func (h *AssignmentHandler) ListAvailableForItem(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset request ID"})
		return
	}
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset request item ID"})
		return
	}

	assetType, units, err := h.service.ListAvailableForItem(requestID, itemID)
	if err != nil {
		respondWithServiceError(c, err, "Unable to list available units")
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset_type": assetType, "items": units})
}

// respondWithServiceError maps the shared error taxonomy onto HTTP statuses.
func respondWithServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrInvalidStateTransition),
		errors.Is(err, apperrors.ErrAlreadyReturned),
		errors.Is(err, apperrors.ErrDamageReasonRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConcurrentModification):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}
