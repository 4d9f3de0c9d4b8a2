package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gadget_garage/internal/domain/entities"
	"gadget_garage/internal/usecase/interfaces"
	mock_interfaces "gadget_garage/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestAppointmentUseCase(repo interfaces.IAppointmentRepository, notifier interfaces.INotificationPublisher) *AppointmentUseCase {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		loc = time.UTC
	}
	uc := NewAppointmentUseCase(repo, notifier, nil, time.Second, loc)
	uc.now = func() time.Time { return time.Date(2026, 6, 10, 15, 0, 0, 0, time.UTC) }
	return uc
}

func TestAppointmentUseCase_Book(t *testing.T) {
	valid := entities.AppointmentForm{Date: "2026-06-11", Time: "9:00 AM", Service: "Repair Diagnosis"}

	t.Run("missing selections never reach the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := newTestAppointmentUseCase(repo, nil)

		for _, f := range []entities.AppointmentForm{
			{Time: valid.Time, Service: valid.Service},
			{Date: valid.Date, Service: valid.Service},
			{Date: valid.Date, Time: valid.Time},
		} {
			_, err := uc.Book(context.Background(), "c", f)
			var verrs entities.ValidationErrors
			if !errors.As(err, &verrs) || !verrs.HasMissing() {
				t.Fatalf("expected missing-field error for %+v, got %v", f, err)
			}
		}
	})

	t.Run("date outside booking window", func(t *testing.T) {
		uc := newTestAppointmentUseCase(nil, nil)
		for _, date := range []string{"2026-06-10", "2026-06-25", "not-a-date"} {
			f := valid
			f.Date = date
			_, err := uc.Book(context.Background(), "c", f)
			var verrs entities.ValidationErrors
			if !errors.As(err, &verrs) || len(verrs.Invalid()) != 1 || verrs.Invalid()[0] != "date" {
				t.Fatalf("expected invalid date for %s, got %v", date, err)
			}
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationPublisher(ctrl)
		uc := newTestAppointmentUseCase(repo, notifier)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Appointment{})).DoAndReturn(
			func(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
				if a.Status != entities.RequestStatusPending || a.Date != "2026-06-24" {
					t.Fatalf("unexpected appointment: %+v", a)
				}
				a.ID = "a-1"
				return a, nil
			},
		)
		notifier.EXPECT().AppointmentBooked(gomock.Any(), gomock.Any()).Return(nil)

		f := valid
		f.Date = "2026-06-24"
		res, err := uc.Book(context.Background(), "c", f)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "Your appointment is scheduled for 2026-06-24 at 9:00 AM for Repair Diagnosis."
		if res.Message != want || res.NextRoute != "/v1/payments" || res.Appointment.ID != "a-1" {
			t.Fatalf("unexpected booking: %+v", res)
		}
	})

	t.Run("client hang-up after store write still notifies with flag released", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationPublisher(ctrl)
		uc := newTestAppointmentUseCase(repo, notifier)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
				cancel()
				a.ID = "a-1"
				return a, nil
			},
		)
		notifier.EXPECT().AppointmentBooked(gomock.Any(), gomock.Any()).DoAndReturn(
			func(nctx context.Context, a entities.Appointment) error {
				if nctx.Err() != nil {
					t.Fatalf("expected live notification context, got %v", nctx.Err())
				}
				if _, ok := nctx.Deadline(); !ok {
					t.Fatalf("expected notification context to carry a deadline")
				}
				release, ok := uc.guard.Acquire(entities.CollectionAppointments, "c")
				if !ok {
					t.Fatalf("expected in-flight flag released before notifying")
				}
				release()
				return nil
			},
		)

		if _, err := uc.Book(ctx, "c", valid); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("store unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := newTestAppointmentUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Appointment{}, interfaces.ErrStoreUnavailable)

		_, err := uc.Book(context.Background(), "c", valid)
		if !errors.Is(err, ErrAppointmentBookFailed) || !errors.Is(err, interfaces.ErrStoreUnavailable) {
			t.Fatalf("expected wrapped unavailable error, got %v", err)
		}
	})
}

func TestAppointmentUseCase_Options(t *testing.T) {
	opts := newTestAppointmentUseCase(nil, nil).Options()
	if len(opts.Dates) != entities.BookingWindowDays {
		t.Fatalf("expected %d dates, got %d", entities.BookingWindowDays, len(opts.Dates))
	}
	if opts.Dates[0].Date != "2026-06-11" || opts.Dates[13].Date != "2026-06-24" {
		t.Fatalf("unexpected window %s..%s", opts.Dates[0].Date, opts.Dates[13].Date)
	}
	if len(opts.TimeSlots) != 8 || len(opts.Services) != 5 {
		t.Fatalf("unexpected options: %+v", opts)
	}
}
