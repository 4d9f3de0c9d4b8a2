package routes

import (
	"gadget_garage/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.AdminHandler, auth, loginLimit gin.HandlerFunc) {
	admin := rg.Group(PathAdmin)
	admin.POST("/login", loginLimit, h.Login)

	// Session required
	protected := admin.Group("", auth)
	{
		protected.GET("/dashboard", h.Dashboard)
		protected.GET("/dashboard/snapshot", h.Snapshot)
		protected.GET("/:collection/:id", h.Get)
		protected.DELETE("/:collection/:id", h.Delete)
	}
}
