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

type adminFixture struct {
	uc           *AdminUseCase
	quotes       *mock_interfaces.MockIQuoteRepository
	appointments *mock_interfaces.MockIAppointmentRepository
}

func newAdminFixture(t *testing.T, password string) adminFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	uc, err := NewAdminUseCase(quotes, appointments, AdminConfig{
		Password:     password,
		JWTSecret:    "test-secret",
		SessionTTL:   time.Hour,
		StoreTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return adminFixture{uc: uc, quotes: quotes, appointments: appointments}
}

func (f adminFixture) expectFetch(appts []entities.Appointment, quotes []entities.QuoteRequest) {
	f.appointments.EXPECT().ListNewestFirst(gomock.Any()).Return(appts, nil)
	f.quotes.EXPECT().ListNewestFirst(gomock.Any()).Return(quotes, nil)
}

func TestAdminUseCase_Authenticate(t *testing.T) {
	t.Run("wrong password triggers no fetch", func(t *testing.T) {
		f := newAdminFixture(t, "s3cret")

		_, err := f.uc.Authenticate(context.Background(), "nope")
		if !errors.Is(err, ErrInvalidAdminPassword) {
			t.Fatalf("expected ErrInvalidAdminPassword, got %v", err)
		}
	})

	t.Run("login disabled without configured secret", func(t *testing.T) {
		f := newAdminFixture(t, "")

		_, err := f.uc.Authenticate(context.Background(), "")
		if !errors.Is(err, ErrAdminLoginDisabled) {
			t.Fatalf("expected ErrAdminLoginDisabled, got %v", err)
		}
	})

	t.Run("success issues session and loads dashboard", func(t *testing.T) {
		f := newAdminFixture(t, "s3cret")
		f.expectFetch([]entities.Appointment{{ID: "a-1"}}, []entities.QuoteRequest{{ID: "q-1"}})

		session, err := f.uc.Authenticate(context.Background(), "s3cret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.Token == "" || session.FetchErr != nil {
			t.Fatalf("unexpected session: %+v", session)
		}
		if len(session.Dashboard.Appointments) != 1 || len(session.Dashboard.Quotes) != 1 {
			t.Fatalf("expected initial dashboard, got %+v", session.Dashboard)
		}
		if err := f.uc.ValidateSession(session.Token); err != nil {
			t.Fatalf("expected valid session, got %v", err)
		}
	})

	t.Run("initial fetch failure still grants access", func(t *testing.T) {
		f := newAdminFixture(t, "s3cret")
		f.appointments.EXPECT().ListNewestFirst(gomock.Any()).Return(nil, interfaces.ErrStoreUnavailable)
		f.quotes.EXPECT().ListNewestFirst(gomock.Any()).Return([]entities.QuoteRequest{}, nil).AnyTimes()

		session, err := f.uc.Authenticate(context.Background(), "s3cret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !errors.Is(session.FetchErr, ErrFetchFailed) {
			t.Fatalf("expected fetch error, got %v", session.FetchErr)
		}
		if len(session.Dashboard.Quotes) != 0 || len(session.Dashboard.Appointments) != 0 {
			t.Fatalf("expected empty lists on failed first load")
		}
	})
}

func TestAdminUseCase_ValidateSession(t *testing.T) {
	f := newAdminFixture(t, "s3cret")
	f.expectFetch(nil, nil)
	session, err := f.uc.Authenticate(context.Background(), "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := f.uc.ValidateSession("garbage"); !errors.Is(err, ErrInvalidAdminSession) {
		t.Fatalf("expected ErrInvalidAdminSession, got %v", err)
	}

	f.uc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if err := f.uc.ValidateSession(session.Token); !errors.Is(err, ErrInvalidAdminSession) {
		t.Fatalf("expected expired session to be rejected, got %v", err)
	}
}

func TestAdminUseCase_Fetch(t *testing.T) {
	t.Run("failure keeps previous snapshot", func(t *testing.T) {
		f := newAdminFixture(t, "x")
		f.expectFetch([]entities.Appointment{{ID: "a-1"}}, []entities.QuoteRequest{{ID: "q-1"}})
		if _, err := f.uc.Fetch(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Quotes succeed, appointments fail: neither list may change.
		f.appointments.EXPECT().ListNewestFirst(gomock.Any()).Return(nil, errors.New("boom"))
		f.quotes.EXPECT().ListNewestFirst(gomock.Any()).Return([]entities.QuoteRequest{{ID: "q-2"}, {ID: "q-1"}}, nil).AnyTimes()

		got, err := f.uc.Fetch(context.Background())
		if !errors.Is(err, ErrFetchFailed) {
			t.Fatalf("expected ErrFetchFailed, got %v", err)
		}
		snap := f.uc.Snapshot()
		if len(snap.Quotes) != 1 || snap.Quotes[0].ID != "q-1" || len(snap.Appointments) != 1 {
			t.Fatalf("snapshot changed on failure: %+v", snap)
		}
		if len(got.Quotes) != 1 {
			t.Fatalf("expected previous snapshot returned, got %+v", got)
		}
	})

	t.Run("older overlapping fetch never replaces a newer snapshot", func(t *testing.T) {
		f := newAdminFixture(t, "x")

		olderEntered := make(chan struct{})
		olderQuotes := make(chan struct{})
		unblock := make(chan struct{})
		f.appointments.EXPECT().ListNewestFirst(gomock.Any()).DoAndReturn(
			func(context.Context) ([]entities.Appointment, error) {
				close(olderEntered)
				<-unblock
				return []entities.Appointment{{ID: "a-old"}}, nil
			},
		)
		f.appointments.EXPECT().ListNewestFirst(gomock.Any()).Return([]entities.Appointment{{ID: "a-new"}}, nil)
		f.quotes.EXPECT().ListNewestFirst(gomock.Any()).DoAndReturn(
			func(context.Context) ([]entities.QuoteRequest, error) {
				close(olderQuotes)
				return []entities.QuoteRequest{{ID: "q-old"}}, nil
			},
		)
		f.quotes.EXPECT().ListNewestFirst(gomock.Any()).Return([]entities.QuoteRequest{{ID: "q-new"}}, nil)

		done := make(chan Dashboard, 1)
		go func() {
			d, err := f.uc.Fetch(context.Background())
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			done <- d
		}()
		<-olderEntered
		<-olderQuotes

		newer, err := f.uc.Fetch(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if newer.Appointments[0].ID != "a-new" {
			t.Fatalf("unexpected newer dashboard: %+v", newer)
		}

		close(unblock)
		older := <-done
		if older.Appointments[0].ID != "a-new" || older.Quotes[0].ID != "q-new" {
			t.Fatalf("expected the newer snapshot back, got %+v", older)
		}
		snap := f.uc.Snapshot()
		if snap.Appointments[0].ID != "a-new" || snap.Quotes[0].ID != "q-new" {
			t.Fatalf("older fetch overwrote snapshot: %+v", snap)
		}
	})

	t.Run("nil results become empty lists", func(t *testing.T) {
		f := newAdminFixture(t, "x")
		f.expectFetch(nil, nil)

		got, err := f.uc.Fetch(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Quotes == nil || got.Appointments == nil || got.FetchedAt.IsZero() {
			t.Fatalf("unexpected dashboard: %+v", got)
		}
	})
}

func TestAdminUseCase_Get(t *testing.T) {
	f := newAdminFixture(t, "x")

	if _, err := f.uc.Get(context.Background(), "users", "1"); !errors.Is(err, ErrUnknownCollection) {
		t.Fatalf("expected ErrUnknownCollection, got %v", err)
	}

	f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteRequest{ID: "q-1", Name: "Jane"}, nil)
	doc, err := f.uc.Get(context.Background(), "quotes", "q-1")
	if err != nil || doc.Quote == nil || doc.Quote.Name != "Jane" || doc.Appointment != nil {
		t.Fatalf("unexpected doc %+v err=%v", doc, err)
	}

	f.appointments.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Appointment{}, nil)
	if _, err := f.uc.Get(context.Background(), "appointments", "missing"); !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestAdminUseCase_Delete(t *testing.T) {
	t.Run("requires confirmation", func(t *testing.T) {
		f := newAdminFixture(t, "x")
		if _, err := f.uc.Delete(context.Background(), "quotes", "q-1", false); !errors.Is(err, ErrDeleteNotConfirmed) {
			t.Fatalf("expected ErrDeleteNotConfirmed, got %v", err)
		}
	})

	t.Run("unknown collection", func(t *testing.T) {
		f := newAdminFixture(t, "x")
		if _, err := f.uc.Delete(context.Background(), "users", "1", true); !errors.Is(err, ErrUnknownCollection) {
			t.Fatalf("expected ErrUnknownCollection, got %v", err)
		}
	})

	t.Run("deletes exactly one document then fetches once", func(t *testing.T) {
		f := newAdminFixture(t, "x")
		gomock.InOrder(
			f.quotes.EXPECT().Delete(gomock.Any(), "q-1").Return(true, nil).Times(1),
			f.quotes.EXPECT().ListNewestFirst(gomock.Any()).Return([]entities.QuoteRequest{}, nil).Times(1),
		)
		f.appointments.EXPECT().ListNewestFirst(gomock.Any()).Return([]entities.Appointment{{ID: "a-1"}}, nil).Times(1)

		res, err := f.uc.Delete(context.Background(), "quotes", "q-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Message != "Item deleted successfully" || res.RefreshErr != nil || len(res.Dashboard.Appointments) != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("missing document still fetches once", func(t *testing.T) {
		f := newAdminFixture(t, "x")
		f.expectFetch([]entities.Appointment{{ID: "a-1"}}, []entities.QuoteRequest{{ID: "q-1"}})
		if _, err := f.uc.Fetch(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		gomock.InOrder(
			f.quotes.EXPECT().Delete(gomock.Any(), "q-1").Return(false, nil).Times(1),
			f.quotes.EXPECT().ListNewestFirst(gomock.Any()).Return([]entities.QuoteRequest{}, nil).Times(1),
		)
		f.appointments.EXPECT().ListNewestFirst(gomock.Any()).Return([]entities.Appointment{{ID: "a-1"}}, nil).Times(1)

		if _, err := f.uc.Delete(context.Background(), "quotes", "q-1", true); !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
		if snap := f.uc.Snapshot(); len(snap.Quotes) != 0 {
			t.Fatalf("expected removed quote gone from snapshot, got %+v", snap.Quotes)
		}
	})

	t.Run("refresh failure is reported alongside success", func(t *testing.T) {
		f := newAdminFixture(t, "x")
		f.appointments.EXPECT().Delete(gomock.Any(), "a-1").Return(true, nil)
		f.appointments.EXPECT().ListNewestFirst(gomock.Any()).Return(nil, errors.New("boom")).Times(1)
		f.quotes.EXPECT().ListNewestFirst(gomock.Any()).Return(nil, nil).MaxTimes(1)

		res, err := f.uc.Delete(context.Background(), "appointments", "a-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !errors.Is(res.RefreshErr, ErrFetchFailed) {
			t.Fatalf("expected refresh error, got %v", res.RefreshErr)
		}
	})

	t.Run("delete failure keeps state and skips fetch", func(t *testing.T) {
		f := newAdminFixture(t, "x")
		f.quotes.EXPECT().Delete(gomock.Any(), "q-1").Return(false, interfaces.ErrStorePermissionDenied)

		_, err := f.uc.Delete(context.Background(), "quotes", "q-1", true)
		if !errors.Is(err, ErrDeleteFailed) || !errors.Is(err, interfaces.ErrStorePermissionDenied) {
			t.Fatalf("expected wrapped delete error, got %v", err)
		}
	})
}
