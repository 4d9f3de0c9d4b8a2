package response

import (
	"gadget_garage/internal/domain/entities"
	"gadget_garage/internal/usecase"
)

type PaymentOptionsResponse struct {
	Methods      []entities.PaymentMethod `json:"methods"`
	QuickAmounts []string                 `json:"quickAmounts"`
}

type PaymentConfirmationResponse struct {
	Method      entities.PaymentMethod `json:"method"`
	Amount      string                 `json:"amount"`
	Description string                 `json:"description,omitempty"`
	Message     string                 `json:"message"`
}

func FromPaymentOptions(o usecase.PaymentOptions) PaymentOptionsResponse {
	return PaymentOptionsResponse{Methods: o.Methods, QuickAmounts: o.QuickAmounts}
}

func FromPaymentConfirmation(c usecase.PaymentConfirmation) PaymentConfirmationResponse {
	return PaymentConfirmationResponse{
		Method:      c.Method,
		Amount:      c.Intent.Amount,
		Description: c.Intent.Description,
		Message:     c.Message,
	}
}
