package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gadget_garage/internal/domain/entities"
	"gadget_garage/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

const AppointmentFollowUpRoute = "/v1/payments"

var ErrAppointmentBookFailed = errors.New("failed to book appointment")

type AppointmentOptions struct {
	Dates     []entities.BookableDate
	TimeSlots []string
	Services  []string
}

type AppointmentBooking struct {
	Appointment entities.Appointment
	Message     string
	NextRoute   string
}

// IAppointmentUseCase handles the booking screen. "Today" is evaluated in the shop's timezone.

type IAppointmentUseCase interface {
	Options() AppointmentOptions
	Book(ctx context.Context, clientKey string, form entities.AppointmentForm) (AppointmentBooking, error)
}

type AppointmentUseCase struct {
	repo         interfaces.IAppointmentRepository
	notifier     interfaces.INotificationPublisher
	guard        *SubmissionGuard
	storeTimeout time.Duration
	location     *time.Location
	now          func() time.Time
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(
	repo interfaces.IAppointmentRepository,
	notifier interfaces.INotificationPublisher,
	guard *SubmissionGuard,
	storeTimeout time.Duration,
	location *time.Location,
) *AppointmentUseCase {
	if guard == nil {
		guard = NewSubmissionGuard()
	}
	if location == nil {
		location = time.UTC
	}
	return &AppointmentUseCase{
		repo:         repo,
		notifier:     notifier,
		guard:        guard,
		storeTimeout: storeTimeout,
		location:     location,
		now:          time.Now,
	}
}

func (u *AppointmentUseCase) today() time.Time {
	return u.now().In(u.location)
}

func (u *AppointmentUseCase) Options() AppointmentOptions {
	return AppointmentOptions{
		Dates:     entities.BookableDates(u.today()),
		TimeSlots: entities.AppointmentTimeSlots,
		Services:  entities.AppointmentServices,
	}
}

func (u *AppointmentUseCase) Book(ctx context.Context, clientKey string, form entities.AppointmentForm) (AppointmentBooking, error) {
	form = form.Normalized()
	if errs := form.Validate(u.today()); errs != nil {
		log.Printf("[appointment][usecase] validation failed client=%s %v", clientKey, errs)
		return AppointmentBooking{}, errs
	}

	release, ok := u.guard.Acquire(entities.CollectionAppointments, clientKey)
	if !ok {
		log.Printf("[appointment][usecase] submission already in flight client=%s", clientKey)
		return AppointmentBooking{}, ErrSubmissionInFlight
	}
	defer release()

	storeCtx, cancel := withStoreTimeout(ctx, u.storeTimeout)
	defer cancel()

	created, err := u.repo.Create(storeCtx, entities.Appointment{
		Service: form.Service,
		Date:    form.Date,
		Time:    form.Time,
		Status:  entities.RequestStatusPending,
	})
	release()
	if err != nil {
		log.Printf("[appointment][usecase] create failed client=%s err=%v", clientKey, err)
		return AppointmentBooking{}, fmt.Errorf("%w: %w", ErrAppointmentBookFailed, err)
	}
	log.Printf("[appointment][usecase] created id=%s date=%s time=%q", created.ID, created.Date, created.Time)

	if u.notifier != nil {
		notifyCtx, cancelNotify := withNotifyContext(ctx)
		if err := u.notifier.AppointmentBooked(notifyCtx, created); err != nil {
			log.Printf("[appointment][usecase] notification failed id=%s err=%v", created.ID, err)
		}
		cancelNotify()
	}

	return AppointmentBooking{
		Appointment: created,
		Message:     AppointmentConfirmation(created),
		NextRoute:   AppointmentFollowUpRoute,
	}, nil
}

func AppointmentConfirmation(a entities.Appointment) string {
	return fmt.Sprintf("Your appointment is scheduled for %s at %s for %s.", a.Date, a.Time, a.Service)
}
