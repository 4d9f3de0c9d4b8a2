package response

import (
	"time"

	"gadget_garage/internal/domain/entities"
	"gadget_garage/internal/usecase"
)

type QuoteResponse struct {
	ID          string     `json:"id"`
	DisplayName string     `json:"displayName"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	ServiceType string     `json:"serviceType"`
	Description string     `json:"description"`
	Urgency     string     `json:"urgency"`
	Status      string     `json:"status"`
	CreatedAt   *time.Time `json:"createdAt"`

	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	DeviceType string `json:"deviceType,omitempty"`
	Issue      string `json:"issue,omitempty"`
}

type QuoteFormResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ServiceType string `json:"serviceType"`
	Description string `json:"description"`
	Urgency     string `json:"urgency"`
}

type QuoteSubmissionResponse struct {
	Quote     QuoteResponse     `json:"quote"`
	Message   string            `json:"message"`
	NextRoute string            `json:"nextRoute"`
	Form      QuoteFormResponse `json:"form"`
}

type QuoteOptionsResponse struct {
	ServiceTypes   []string `json:"serviceTypes"`
	UrgencyLevels  []string `json:"urgencyLevels"`
	DefaultUrgency string   `json:"defaultUrgency"`
}

// timePtr maps the zero time (unknown creation time) to null.
func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func FromQuote(q entities.QuoteRequest) QuoteResponse {
	return QuoteResponse{
		ID:          q.ID,
		DisplayName: q.DisplayName(),
		Name:        q.Name,
		Email:       q.Email,
		Phone:       q.Phone,
		ServiceType: q.ServiceType,
		Description: q.Description,
		Urgency:     string(q.Urgency),
		Status:      string(q.Status),
		CreatedAt:   timePtr(q.CreatedAt),
		FirstName:   q.FirstName,
		LastName:    q.LastName,
		DeviceType:  q.DeviceType,
		Issue:       q.Issue,
	}
}

func FromQuotes(qs []entities.QuoteRequest) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

func FromQuoteSubmission(s usecase.QuoteSubmission) QuoteSubmissionResponse {
	return QuoteSubmissionResponse{
		Quote:     FromQuote(s.Quote),
		Message:   s.Message,
		NextRoute: s.NextRoute,
		Form: QuoteFormResponse{
			Name:        s.Form.Name,
			Email:       s.Form.Email,
			Phone:       s.Form.Phone,
			ServiceType: s.Form.ServiceType,
			Description: s.Form.Description,
			Urgency:     string(s.Form.Urgency),
		},
	}
}

func FromQuoteOptions(o usecase.QuoteOptions) QuoteOptionsResponse {
	levels := make([]string, 0, len(o.UrgencyLevels))
	for _, u := range o.UrgencyLevels {
		levels = append(levels, string(u))
	}
	return QuoteOptionsResponse{
		ServiceTypes:   o.ServiceTypes,
		UrgencyLevels:  levels,
		DefaultUrgency: string(o.DefaultUrgency),
	}
}
