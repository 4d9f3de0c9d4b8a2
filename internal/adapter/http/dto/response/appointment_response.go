package response

import (
	"time"

	"gadget_garage/internal/domain/entities"
	"gadget_garage/internal/usecase"
)

type AppointmentResponse struct {
	ID        string     `json:"id"`
	Service   string     `json:"service"`
	Date      string     `json:"date"`
	Time      string     `json:"time"`
	Status    string     `json:"status"`
	CreatedAt *time.Time `json:"createdAt"`

	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
}

type AppointmentBookingResponse struct {
	Appointment AppointmentResponse `json:"appointment"`
	Message     string              `json:"message"`
	NextRoute   string              `json:"nextRoute"`
}

type AppointmentOptionsResponse struct {
	Dates     []entities.BookableDate `json:"dates"`
	TimeSlots []string                `json:"timeSlots"`
	Services  []string                `json:"services"`
}

func FromAppointment(a entities.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:        a.ID,
		Service:   a.Service,
		Date:      a.Date,
		Time:      a.Time,
		Status:    string(a.Status),
		CreatedAt: timePtr(a.CreatedAt),
		Name:      a.Name,
		Address:   a.Address,
	}
}

func FromAppointments(as []entities.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromAppointment(a))
	}
	return out
}

func FromAppointmentBooking(b usecase.AppointmentBooking) AppointmentBookingResponse {
	return AppointmentBookingResponse{
		Appointment: FromAppointment(b.Appointment),
		Message:     b.Message,
		NextRoute:   b.NextRoute,
	}
}

func FromAppointmentOptions(o usecase.AppointmentOptions) AppointmentOptionsResponse {
	return AppointmentOptionsResponse{Dates: o.Dates, TimeSlots: o.TimeSlots, Services: o.Services}
}
