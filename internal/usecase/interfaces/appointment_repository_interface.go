package interfaces

import (
	"context"
	"gadget_garage/internal/domain/entities"
)

//go:generate mockgen -source=appointment_repository_interface.go -destination=mocks/appointment_repository_mock.go

// IAppointmentRepository abstracts the "appointments" collection of the document store.

type IAppointmentRepository interface {
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	ListNewestFirst(ctx context.Context) ([]entities.Appointment, error)
	Delete(ctx context.Context, id string) (bool, error)
}
