package interfaces

import (
	"context"
	"gadget_garage/internal/domain/entities"
)

//go:generate mockgen -source=notification_publisher_interface.go -destination=mocks/notification_publisher_mock.go

// INotificationPublisher tells the shop about new submissions.
//
// Publishing is best effort: callers log failures and never fail the
// customer's submission because of them.
type INotificationPublisher interface {
	QuoteSubmitted(ctx context.Context, q entities.QuoteRequest) error
	AppointmentBooked(ctx context.Context, a entities.Appointment) error
}
