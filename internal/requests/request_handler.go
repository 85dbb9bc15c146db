package requests

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ypremchand/Equipment-Management-sub000/pkg/apperrors"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/models"
)

type RequestHandler struct {
	service *RequestService
}

func NewHandler(service *RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

func (h *RequestHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/asset-requests", h.CreateRequest)
	router.GET("/asset-requests", h.GetRequests)
	router.GET("/asset-requests/:id", h.GetRequest)
}

func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var payload models.CreateRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	requestID, err := h.service.CreateRequest(payload)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrBadRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to create asset request", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": requestID, "message": "Asset request submitted"})
}

func (h *RequestHandler) GetRequests(c *gin.Context) {
	requests, err := h.service.GetRequests(c.Query("email"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to list asset requests", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, requests)
}

func (h *RequestHandler) GetRequest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset request ID"})
		return
	}

	request, err := h.service.GetRequest(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to get asset request", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, request)
}
