package notifications

import (
	"encoding/json"
	"time"

	"gadget_garage/internal/domain/entities"

	"github.com/hibiken/asynq"
)

const (
	TaskQuoteSubmitted    = "notify.quote_submitted"
	TaskAppointmentBooked = "notify.appointment_booked"

	QueueName = "notifications"
)

type QuoteSubmittedPayload struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	ServiceType string    `json:"serviceType,omitempty"`
	Description string    `json:"description"`
	Urgency     string    `json:"urgency"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AppointmentBookedPayload struct {
	ID        string    `json:"id"`
	Service   string    `json:"service"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewQuoteSubmittedTask(q entities.QuoteRequest) (*asynq.Task, error) {
	data, err := json.Marshal(QuoteSubmittedPayload{
		ID:          q.ID,
		Name:        q.Name,
		Email:       q.Email,
		Phone:       q.Phone,
		ServiceType: q.ServiceType,
		Description: q.Description,
		Urgency:     string(q.Urgency),
		CreatedAt:   q.CreatedAt,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskQuoteSubmitted, data), nil
}

func ParseQuoteSubmittedPayload(task *asynq.Task) (QuoteSubmittedPayload, error) {
	var payload QuoteSubmittedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return QuoteSubmittedPayload{}, err
	}
	return payload, nil
}

func NewAppointmentBookedTask(a entities.Appointment) (*asynq.Task, error) {
	data, err := json.Marshal(AppointmentBookedPayload{
		ID:        a.ID,
		Service:   a.Service,
		Date:      a.Date,
		Time:      a.Time,
		CreatedAt: a.CreatedAt,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskAppointmentBooked, data), nil
}

func ParseAppointmentBookedPayload(task *asynq.Task) (AppointmentBookedPayload, error) {
	var payload AppointmentBookedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return AppointmentBookedPayload{}, err
	}
	return payload, nil
}
