package usecase

import (
	"fmt"

	"gadget_garage/internal/domain/entities"

	log "github.com/sirupsen/logrus"
)

type PaymentOptions struct {
	Methods      []entities.PaymentMethod
	QuickAmounts []string
}

type PaymentConfirmation struct {
	Intent  entities.PaymentIntent
	Method  entities.PaymentMethod
	Message string
}

// IPaymentUseCase confirms a payment locally. No processor is contacted and nothing is stored.

type IPaymentUseCase interface {
	Options() PaymentOptions
	Confirm(form entities.PaymentForm) (PaymentConfirmation, error)
}

type PaymentUseCase struct{}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase() *PaymentUseCase {
	return &PaymentUseCase{}
}

func (u *PaymentUseCase) Options() PaymentOptions {
	return PaymentOptions{Methods: entities.PaymentMethods, QuickAmounts: entities.QuickAmounts}
}

func (u *PaymentUseCase) Confirm(form entities.PaymentForm) (PaymentConfirmation, error) {
	form = form.Normalized()
	if errs := form.Validate(); errs != nil {
		log.Printf("[payment][usecase] validation failed %v", errs)
		return PaymentConfirmation{}, errs
	}

	method, _ := entities.FindPaymentMethod(form.Method)
	log.Printf("[payment][usecase] confirmed locally method=%s amount=%s", method.ID, form.Amount)
	return PaymentConfirmation{
		Intent: entities.PaymentIntent{
			Method:      form.Method,
			Amount:      form.Amount,
			Description: form.Description,
		},
		Method:  method,
		Message: fmt.Sprintf("Payment of $%s via %s has been processed successfully!", form.Amount, method.Name),
	}, nil
}
