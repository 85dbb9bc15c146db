package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ypremchand/Equipment-Management-sub000/internal/core/container"
	"github.com/ypremchand/Equipment-Management-sub000/internal/middleware"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/security"
)

func RegisterPublicRoutes(router *gin.Engine, c *container.Container) {
	c.LoginHandler.RegisterRoutes(router)
}

func RegisterProtectedRoutes(router *gin.Engine, c *container.Container) {
	protected := router.Group("")
	protected.Use(security.JWTMiddleware())

	c.CatalogHandler.RegisterRoutes(protected)
	c.LocationHandler.RegisterRoutes(protected)
	c.RequestHandler.RegisterRoutes(protected)
	c.AssignmentHandler.RegisterUserRoutes(protected)
	c.UserHandler.RegisterRoutes(protected)

	// Approval, returns, intake, audit and reporting are staff operations.
	admin := protected.Group("", security.Authorize("moderator"))
	c.AssignmentHandler.RegisterRoutes(admin)
	c.InventoryHandler.RegisterRoutes(admin)
	c.DamageHandler.RegisterRoutes(admin)
	c.DeleteHistoryHandler.RegisterRoutes(admin)
	c.ReportHandler.RegisterRoutes(admin)
}

func RegisterUtilityRoutes(router *gin.Engine) {
	router.GET("/health", middleware.HealthCheckMiddleware())
}
