package handlers

import (
	"net/http"

	request "gadget_garage/internal/adapter/http/dto/request"
	response "gadget_garage/internal/adapter/http/dto/response"
	"gadget_garage/internal/usecase"
	"gadget_garage/pkg"

	"github.com/gin-gonic/gin"
)

const paymentMissingFieldsMessage = "Please select a payment method and enter an amount."

// PaymentHandler confirms payments locally; no processor is involved.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// Methods godoc
// @Summary      Payment methods and quick amounts
// @Tags         payments
// @Produce      json
// @Success      200  {object}  response.PaymentOptionsResponse
// @Router       /payments/methods [get]
func (h *PaymentHandler) Methods(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPaymentOptions(h.usecase.Options()))
}

// Confirm godoc
// @Summary      Confirm a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      request.PaymentRequest  true  "Payment"
// @Success      200      {object}  response.PaymentConfirmationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /payments/confirm [post]
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	confirmation, err := h.usecase.Confirm(payload.ToForm())
	if err != nil {
		appErr, ok := mapValidationError(err, paymentMissingFieldsMessage)
		if !ok {
			appErr = pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		}
		writeError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentConfirmation(confirmation))
}
