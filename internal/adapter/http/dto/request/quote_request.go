package request

import "gadget_garage/internal/domain/entities"

// QuoteRequest is the body of POST /v1/quotes. Required fields are checked by
// the use case so that every missing field can be reported at once.
type QuoteRequest struct {
	Name        string `json:"name" example:"Jane"`
	Email       string `json:"email" example:"jane@example.com"`
	Phone       string `json:"phone" example:"(202) 456-1111"`
	ServiceType string `json:"serviceType" example:"PC Repair"`
	Description string `json:"description" example:"Laptop won't boot"`
	Urgency     string `json:"urgency" example:"normal"`
}

func (r QuoteRequest) ToForm() entities.QuoteForm {
	return entities.QuoteForm{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		ServiceType: r.ServiceType,
		Description: r.Description,
		Urgency:     entities.Urgency(r.Urgency),
	}
}
