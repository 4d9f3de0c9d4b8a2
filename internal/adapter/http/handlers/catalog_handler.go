package handlers

import (
	"net/http"

	response "gadget_garage/internal/adapter/http/dto/response"
	"gadget_garage/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// Home godoc
// @Summary      Landing screen content
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.HomeResponse
// @Router       /home [get]
func (h *CatalogHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromHome(h.usecase.Home()))
}

// Services godoc
// @Summary      Service offerings
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.ServicesResponse
// @Router       /services [get]
func (h *CatalogHandler) Services(c *gin.Context) {
	c.JSON(http.StatusOK, response.ServicesResponse{Services: h.usecase.Services()})
}

// Health godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.HealthResponse
// @Router       /health [get]
func (h *CatalogHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{Status: "ok"})
}
