package response

import (
	"time"

	"gadget_garage/internal/usecase"
)

type DashboardResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Quotes       []QuoteResponse       `json:"quotes"`
	FetchedAt    *time.Time            `json:"fetchedAt"`
}

type AdminLoginResponse struct {
	Token      string            `json:"token"`
	ExpiresAt  time.Time         `json:"expiresAt"`
	Dashboard  DashboardResponse `json:"dashboard"`
	FetchError string            `json:"fetchError,omitempty"`
}

type AdminDocumentResponse struct {
	Collection  string               `json:"collection"`
	Quote       *QuoteResponse       `json:"quote,omitempty"`
	Appointment *AppointmentResponse `json:"appointment,omitempty"`
}

type AdminDeleteResponse struct {
	Message      string            `json:"message"`
	Collection   string            `json:"collection"`
	ID           string            `json:"id"`
	Dashboard    DashboardResponse `json:"dashboard"`
	RefreshError string            `json:"refreshError,omitempty"`
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	return DashboardResponse{
		Appointments: FromAppointments(d.Appointments),
		Quotes:       FromQuotes(d.Quotes),
		FetchedAt:    timePtr(d.FetchedAt),
	}
}

func FromAdminSession(s usecase.AdminSession, fetchError string) AdminLoginResponse {
	return AdminLoginResponse{
		Token:      s.Token,
		ExpiresAt:  s.ExpiresAt.UTC(),
		Dashboard:  FromDashboard(s.Dashboard),
		FetchError: fetchError,
	}
}

func FromAdminDocument(d usecase.AdminDocument) AdminDocumentResponse {
	out := AdminDocumentResponse{Collection: d.Collection}
	if d.Quote != nil {
		q := FromQuote(*d.Quote)
		out.Quote = &q
	}
	if d.Appointment != nil {
		a := FromAppointment(*d.Appointment)
		out.Appointment = &a
	}
	return out
}

func FromDeleteResult(r usecase.DeleteResult, refreshError string) AdminDeleteResponse {
	return AdminDeleteResponse{
		Message:      r.Message,
		Collection:   r.Collection,
		ID:           r.ID,
		Dashboard:    FromDashboard(r.Dashboard),
		RefreshError: refreshError,
	}
}
