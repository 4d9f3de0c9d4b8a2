package handlers

import (
	"errors"
	"net/http"
	"strings"

	"gadget_garage/internal/domain/entities"
	"gadget_garage/internal/usecase"
	"gadget_garage/internal/usecase/interfaces"
	"gadget_garage/pkg"

	"github.com/gin-gonic/gin"
)

// ClientIDHeader identifies one client install. Without it the caller IP is used.
const ClientIDHeader = "X-Client-ID"

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidFields  = pkg.NewDomainErrorSimple("INVALID_FIELDS", "Some fields have invalid values. Please check and try again.", http.StatusBadRequest)
	errInFlight       = pkg.NewDomainErrorSimple("SUBMISSION_IN_FLIGHT", "Your previous request is still being sent. Please wait.", http.StatusConflict)
)

func clientKey(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(ClientIDHeader)); id != "" {
		return id
	}
	return c.ClientIP()
}

// writeError writes the error body and records the cause for the request logger.
func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapValidationError(err error, missingMessage string) (*pkg.AppError, bool) {
	var verrs entities.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	if missing := verrs.Missing(); len(missing) > 0 {
		return pkg.NewDomainErrorSimple("MISSING_FIELDS", missingMessage, http.StatusBadRequest).WithFields(missing...), true
	}
	return errInvalidFields.WithFields(verrs.Invalid()...), true
}

// mapStoreError turns a classified store failure into the message shown to the customer.
func mapStoreError(err error, genericMessage string) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrStorePermissionDenied):
		return pkg.NewDomainError("STORE_PERMISSION_DENIED",
			"The shop's database rejected this request. Please contact us directly.", err, http.StatusBadGateway)
	case errors.Is(err, interfaces.ErrStoreUnauthenticated):
		return pkg.NewDomainError("STORE_UNAUTHENTICATED",
			"The service is not configured correctly. Please contact us directly.", err, http.StatusBadGateway)
	case errors.Is(err, interfaces.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE",
			"We couldn't reach the server. Check your connection and try again.", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", genericMessage, err, http.StatusInternalServerError)
	}
}

func mapSubmissionError(err error, missingMessage, genericMessage string) *pkg.AppError {
	if appErr, ok := mapValidationError(err, missingMessage); ok {
		return appErr
	}
	if errors.Is(err, usecase.ErrSubmissionInFlight) {
		return errInFlight
	}
	return mapStoreError(err, genericMessage).WithFallback(usecase.QuoteFollowUpRoute)
}
