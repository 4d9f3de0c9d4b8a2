package request

import "gadget_garage/internal/domain/entities"

type AppointmentRequest struct {
	Date    string `json:"date" example:"2026-06-11"`
	Time    string `json:"time" example:"9:00 AM"`
	Service string `json:"service" example:"Repair Diagnosis"`
}

func (r AppointmentRequest) ToForm() entities.AppointmentForm {
	return entities.AppointmentForm{Date: r.Date, Time: r.Time, Service: r.Service}
}
