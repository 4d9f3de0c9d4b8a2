package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gadget_garage/internal/adapter/http/handlers"
	"gadget_garage/internal/adapter/http/handlers/mocks"
	"gadget_garage/internal/adapter/http/middleware"
	"gadget_garage/internal/config"
	"gadget_garage/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestApp(ctrl *gomock.Controller) (*app, *mocks.MockIAdminUseCase) {
	admin := mocks.NewMockIAdminUseCase(ctrl)
	return &app{
		catalog:        handlers.NewCatalogHandler(usecase.NewCatalogUseCase()),
		quotes:         handlers.NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl)),
		appointments:   handlers.NewAppointmentHandler(mocks.NewMockIAppointmentUseCase(ctrl)),
		admin:          handlers.NewAdminHandler(admin),
		chats:          handlers.NewChatHandler(mocks.NewMockIChatUseCase(ctrl)),
		payments:       handlers.NewPaymentHandler(usecase.NewPaymentUseCase()),
		adminAuth:      middleware.AdminAuth(admin),
		loginLimit:     middleware.NewLoginRateLimiter(1).RateLimit(),
		chatStartLimit: middleware.NewPerMinuteRateLimiter(1).RateLimit(),
	}, admin
}

func TestRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{CORSOrigins: []string{"https://shop.example"}}

	t.Run("health and catalog are public", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		a, _ := newTestApp(ctrl)
		r := newRouter(cfg, a)

		for _, path := range []string{"/health", "/v1/home", "/v1/services", "/v1/payments/methods"} {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("%s: expected 200, got %d", path, w.Code)
			}
		}
	})

	t.Run("admin routes need a session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		a, _ := newTestApp(ctrl)
		r := newRouter(cfg, a)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid session reaches the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		a, admin := newTestApp(ctrl)
		admin.EXPECT().ValidateSession("tok").Return(nil)
		admin.EXPECT().Snapshot().Return(usecase.Dashboard{})
		r := newRouter(cfg, a)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard/snapshot", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("login is rate limited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		a, admin := newTestApp(ctrl)
		admin.EXPECT().Authenticate(gomock.Any(), "bad").Return(usecase.AdminSession{}, usecase.ErrInvalidAdminPassword)
		r := newRouter(cfg, a)

		codes := make([]int, 0, 2)
		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodPost, "/v1/admin/login", strings.NewReader(`{"password":"bad"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}
		if codes[0] != http.StatusUnauthorized || codes[1] != http.StatusTooManyRequests {
			t.Fatalf("expected [401 429], got %v", codes)
		}
	})

	t.Run("opening chat sessions is rate limited per ip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		a, _ := newTestApp(ctrl)
		chats := mocks.NewMockIChatUseCase(ctrl)
		chats.EXPECT().Start(gomock.Any()).Return(usecase.ChatSession{ID: "c-1"}, nil).Times(2)
		a.chats = handlers.NewChatHandler(chats)
		r := newRouter(cfg, a)

		start := func(ip string) int {
			req := httptest.NewRequest(http.MethodPost, "/v1/chats", nil)
			req.RemoteAddr = ip + ":1234"
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			return w.Code
		}
		if got := start("10.0.0.1"); got != http.StatusCreated {
			t.Fatalf("expected 201, got %d", got)
		}
		if got := start("10.0.0.1"); got != http.StatusTooManyRequests {
			t.Fatalf("expected 429 on second start, got %d", got)
		}
		if got := start("10.0.0.2"); got != http.StatusCreated {
			t.Fatalf("other IPs must not be limited, got %d", got)
		}
	})

	t.Run("cors preflight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		a, _ := newTestApp(ctrl)
		r := newRouter(cfg, a)

		req := httptest.NewRequest(http.MethodOptions, "/v1/quotes", nil)
		req.Header.Set("Origin", "https://shop.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Client-ID")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://shop.example" {
			t.Fatalf("unexpected allow origin %q (status %d)", got, w.Code)
		}
	})
}

func TestCORSConfig(t *testing.T) {
	if c := corsConfig([]string{"*"}); !c.AllowAllOrigins || len(c.AllowOrigins) != 0 {
		t.Fatalf("wildcard must allow all origins, got %+v", c)
	}
	if c := corsConfig([]string{"https://a.example"}); c.AllowAllOrigins || len(c.AllowOrigins) != 1 {
		t.Fatalf("unexpected config %+v", c)
	}
}
