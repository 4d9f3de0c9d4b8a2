package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "gadget_garage/internal/adapter/http/dto/request"
	response "gadget_garage/internal/adapter/http/dto/response"
	"gadget_garage/internal/usecase"
	"gadget_garage/pkg"

	"github.com/gin-gonic/gin"
)

const (
	adminFetchFailedMessage  = "Failed to fetch data from the store"
	adminDeleteFailedMessage = "Failed to delete item"
)

// AdminHandler serves the store-owner dashboard.
type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// Login godoc
// @Summary      Open an admin session
// @Description  Checks the admin password, issues a session token and loads the dashboard.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      request.AdminLoginRequest  true  "Admin password"
// @Success      200      {object}  response.AdminLoginResponse
// @Failure      401      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Failure      429      {object}  pkg.HTTPError
// @Router       /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var payload request.AdminLoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	session, err := h.usecase.Authenticate(c.Request.Context(), payload.Password)
	if err != nil {
		writeError(c, mapAdminError(err))
		return
	}

	fetchError := ""
	if session.FetchErr != nil {
		fetchError = adminFetchFailedMessage
	}
	c.JSON(http.StatusOK, response.FromAdminSession(session, fetchError))
}

// Dashboard godoc
// @Summary      Reload both collections
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.DashboardResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.usecase.Fetch(c.Request.Context())
	if err != nil {
		writeError(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(dashboard))
}

// Snapshot godoc
// @Summary      Last successfully loaded dashboard
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.DashboardResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /admin/dashboard/snapshot [get]
func (h *AdminHandler) Snapshot(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromDashboard(h.usecase.Snapshot()))
}

// Get godoc
// @Summary      One quote or appointment
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        collection  path      string  true  "quotes or appointments"
// @Param        id          path      string  true  "Document id"
// @Success      200         {object}  response.AdminDocumentResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /admin/{collection}/{id} [get]
func (h *AdminHandler) Get(c *gin.Context) {
	doc, err := h.usecase.Get(c.Request.Context(), c.Param("collection"), c.Param("id"))
	if err != nil {
		writeError(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAdminDocument(doc))
}

// Delete godoc
// @Summary      Delete one quote or appointment
// @Description  Requires confirm=true; without it the confirmation prompt is returned with 428.
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        collection  path      string  true   "quotes or appointments"
// @Param        id          path      string  true   "Document id"
// @Param        confirm     query     bool    false  "Deletion confirmed"
// @Success      200         {object}  response.AdminDeleteResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Failure      428         {object}  pkg.HTTPError
// @Failure      502         {object}  pkg.HTTPError
// @Router       /admin/{collection}/{id} [delete]
func (h *AdminHandler) Delete(c *gin.Context) {
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))

	res, err := h.usecase.Delete(c.Request.Context(), c.Param("collection"), c.Param("id"), confirmed)
	if err != nil {
		writeError(c, mapAdminError(err))
		return
	}

	refreshError := ""
	if res.RefreshErr != nil {
		refreshError = adminFetchFailedMessage
	}
	c.JSON(http.StatusOK, response.FromDeleteResult(res, refreshError))
}

func mapAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAdminLoginDisabled):
		return pkg.NewDomainErrorSimple("ADMIN_LOGIN_DISABLED", "Admin access is not configured", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidAdminPassword):
		return pkg.NewDomainErrorSimple("INVALID_ADMIN_PASSWORD", "Invalid admin password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUnknownCollection):
		return pkg.NewDomainErrorSimple("UNKNOWN_COLLECTION", "Unknown collection", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDocumentID):
		return pkg.NewDomainErrorSimple("INVALID_DOCUMENT_ID", "Invalid document id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDeleteNotConfirmed):
		return pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", usecase.AdminDeletePrompt, http.StatusPreconditionRequired)
	case errors.Is(err, usecase.ErrDeleteFailed):
		return pkg.NewDomainError("DELETE_FAILED", adminDeleteFailedMessage, err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("FETCH_FAILED", adminFetchFailedMessage, err, http.StatusBadGateway)
	}
}
