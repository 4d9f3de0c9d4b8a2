package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gadget_garage/internal/adapter/http/handlers/mocks"
	"gadget_garage/internal/domain/entities"
	"gadget_garage/internal/usecase"
	"gadget_garage/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAdminRouter(uc usecase.IAdminUseCase) *gin.Engine {
	h := NewAdminHandler(uc)
	r := gin.New()
	r.POST("/v1/admin/login", h.Login)
	r.GET("/v1/admin/dashboard", h.Dashboard)
	r.GET("/v1/admin/dashboard/snapshot", h.Snapshot)
	r.GET("/v1/admin/:collection/:id", h.Get)
	r.DELETE("/v1/admin/:collection/:id", h.Delete)
	return r
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleDashboard() usecase.Dashboard {
	return usecase.Dashboard{
		Appointments: []entities.Appointment{{ID: "a-1", Service: "Repair Diagnosis"}},
		Quotes:       []entities.QuoteRequest{{ID: "q-1", Name: "Jane"}, {ID: "q-0", FirstName: "Old", LastName: "Client"}},
		FetchedAt:    time.Date(2026, 6, 10, 15, 0, 0, 0, time.UTC),
	}
}

func TestAdminHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)

		w := postJSON(newAdminRouter(uc), "/v1/admin/login", `{}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		uc.EXPECT().Authenticate(gomock.Any(), "nope").Return(usecase.AdminSession{}, usecase.ErrInvalidAdminPassword)

		w := postJSON(newAdminRouter(uc), "/v1/admin/login", `{"password":"nope"}`, nil)
		body := decodeBody(t, w)
		if w.Code != http.StatusUnauthorized || body["message"] != "Invalid admin password" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("login disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		uc.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(usecase.AdminSession{}, usecase.ErrAdminLoginDisabled)

		w := postJSON(newAdminRouter(uc), "/v1/admin/login", `{"password":"x"}`, nil)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success with initial fetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		uc.EXPECT().Authenticate(gomock.Any(), "secret").Return(usecase.AdminSession{
			Token:     "tok",
			ExpiresAt: time.Date(2026, 6, 11, 3, 0, 0, 0, time.UTC),
			Dashboard: sampleDashboard(),
		}, nil)

		w := postJSON(newAdminRouter(uc), "/v1/admin/login", `{"password":"secret"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["token"] != "tok" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, ok := body["fetchError"]; ok {
			t.Fatalf("fetchError must be omitted on success")
		}
		dashboard, _ := body["dashboard"].(map[string]any)
		quotes, _ := dashboard["quotes"].([]any)
		if len(quotes) != 2 {
			t.Fatalf("expected 2 quotes, got %v", dashboard["quotes"])
		}
	})

	t.Run("success with failed initial fetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		uc.EXPECT().Authenticate(gomock.Any(), "secret").Return(usecase.AdminSession{
			Token:    "tok",
			FetchErr: fmt.Errorf("%w: %w", usecase.ErrFetchFailed, interfaces.ErrStoreUnavailable),
		}, nil)

		w := postJSON(newAdminRouter(uc), "/v1/admin/login", `{"password":"secret"}`, nil)
		body := decodeBody(t, w)
		if w.Code != http.StatusOK || body["fetchError"] != adminFetchFailedMessage {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestAdminHandler_Dashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("fetch failure is one generic error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		uc.EXPECT().Fetch(gomock.Any()).Return(sampleDashboard(), fmt.Errorf("%w: %w", usecase.ErrFetchFailed, interfaces.ErrStorePermissionDenied))

		w := serve(newAdminRouter(uc), http.MethodGet, "/v1/admin/dashboard")
		body := decodeBody(t, w)
		if w.Code != http.StatusBadGateway || body["message"] != adminFetchFailedMessage {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		uc.EXPECT().Fetch(gomock.Any()).Return(sampleDashboard(), nil)

		w := serve(newAdminRouter(uc), http.MethodGet, "/v1/admin/dashboard")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		quotes, _ := body["quotes"].([]any)
		legacy, _ := quotes[1].(map[string]any)
		if legacy["displayName"] != "Old Client" {
			t.Fatalf("unexpected legacy display name: %v", legacy["displayName"])
		}
	})

	t.Run("snapshot before first load", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		uc.EXPECT().Snapshot().Return(usecase.Dashboard{})

		w := serve(newAdminRouter(uc), http.MethodGet, "/v1/admin/dashboard/snapshot")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["fetchedAt"] != nil {
			t.Fatalf("expected null fetchedAt, got %v", body["fetchedAt"])
		}
		if quotes, _ := body["quotes"].([]any); quotes == nil || len(quotes) != 0 {
			t.Fatalf("expected empty quotes list, got %v", body["quotes"])
		}
	})
}

func TestAdminHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "unknown collection", err: usecase.ErrUnknownCollection, status: http.StatusBadRequest},
		{name: "invalid id", err: usecase.ErrInvalidDocumentID, status: http.StatusBadRequest},
		{name: "not found", err: usecase.ErrDocumentNotFound, status: http.StatusNotFound},
		{name: "store failure", err: interfaces.ErrStoreUnavailable, status: http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIAdminUseCase(ctrl)
			uc.EXPECT().Get(gomock.Any(), "quotes", "q-1").Return(usecase.AdminDocument{}, tc.err)

			w := serve(newAdminRouter(uc), http.MethodGet, "/v1/admin/quotes/q-1")
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		uc.EXPECT().Get(gomock.Any(), "appointments", "a-1").Return(usecase.AdminDocument{
			Collection:  "appointments",
			Appointment: &entities.Appointment{ID: "a-1", Service: "Repair Diagnosis"},
		}, nil)

		w := serve(newAdminRouter(uc), http.MethodGet, "/v1/admin/appointments/a-1")
		body := decodeBody(t, w)
		if w.Code != http.StatusOK || body["collection"] != "appointments" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
		if _, ok := body["quote"]; ok {
			t.Fatalf("quote must be omitted for appointments")
		}
	})
}

func TestAdminHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("without confirmation returns the prompt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), "quotes", "q-1", false).Return(usecase.DeleteResult{}, usecase.ErrDeleteNotConfirmed)

		w := serve(newAdminRouter(uc), http.MethodDelete, "/v1/admin/quotes/q-1")
		body := decodeBody(t, w)
		if w.Code != http.StatusPreconditionRequired || body["message"] != usecase.AdminDeletePrompt {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("delete failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), "quotes", "q-1", true).
			Return(usecase.DeleteResult{}, fmt.Errorf("%w: %w", usecase.ErrDeleteFailed, errors.New("boom")))

		w := serve(newAdminRouter(uc), http.MethodDelete, "/v1/admin/quotes/q-1?confirm=true")
		body := decodeBody(t, w)
		if w.Code != http.StatusBadGateway || body["message"] != adminDeleteFailedMessage {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("deleted with refresh error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), "appointments", "a-1", true).Return(usecase.DeleteResult{
			Collection: "appointments",
			ID:         "a-1",
			Message:    usecase.AdminDeletedMessage,
			RefreshErr: usecase.ErrFetchFailed,
		}, nil)

		w := serve(newAdminRouter(uc), http.MethodDelete, "/v1/admin/appointments/a-1?confirm=1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["message"] != "Item deleted successfully" || body["refreshError"] != adminFetchFailedMessage {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
