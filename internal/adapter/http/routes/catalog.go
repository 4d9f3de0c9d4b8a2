package routes

import (
	"gadget_garage/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathHealth   = "/health"
	PathHome     = "/home"
	PathServices = "/services"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	rg.GET(PathHome, h.Home)
	rg.GET(PathServices, h.Services)
}
