package handlers

import (
	"net/http"
	"testing"
	"time"

	"gadget_garage/internal/adapter/http/handlers/mocks"
	"gadget_garage/internal/domain/entities"
	"gadget_garage/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newChatRouter(uc usecase.IChatUseCase) *gin.Engine {
	h := NewChatHandler(uc)
	r := gin.New()
	r.POST("/v1/chats", h.Start)
	r.POST("/v1/chats/:id/messages", h.Send)
	r.GET("/v1/chats/:id/messages", h.List)
	return r
}

func TestChatHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	greeting := entities.Message{ID: 1, Text: entities.ChatGreeting, Sender: entities.SenderBusiness, Timestamp: time.Now()}

	t.Run("start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		uc.EXPECT().Start(gomock.Any()).Return(usecase.ChatSession{ID: "c-1", Messages: []entities.Message{greeting}}, nil)

		w := postJSON(newChatRouter(uc), "/v1/chats", "", nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		msgs, _ := body["messages"].([]any)
		if body["id"] != "c-1" || len(msgs) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("send to unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		uc.EXPECT().Send(gomock.Any(), "missing", "hi").Return(entities.Message{}, usecase.ErrChatSessionNotFound)

		w := postJSON(newChatRouter(uc), "/v1/chats/missing/messages", `{"text":"hi"}`, nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("send empty text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		uc.EXPECT().Send(gomock.Any(), "c-1", "  ").Return(entities.Message{}, usecase.ErrEmptyChatMessage)

		w := postJSON(newChatRouter(uc), "/v1/chats/c-1/messages", `{"text":"  "}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		uc.EXPECT().Send(gomock.Any(), "c-1", "Can you upgrade my RAM?").
			Return(entities.Message{ID: 2, Text: "Can you upgrade my RAM?", Sender: entities.SenderCustomer}, nil)

		w := postJSON(newChatRouter(uc), "/v1/chats/c-1/messages", `{"text":"Can you upgrade my RAM?"}`, nil)
		body := decodeBody(t, w)
		if w.Code != http.StatusCreated || body["sender"] != "customer" || body["id"] != float64(2) {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		uc.EXPECT().Messages(gomock.Any(), "c-1").Return([]entities.Message{
			greeting,
			{ID: 2, Text: "hello", Sender: entities.SenderCustomer},
			{ID: 3, Text: entities.ChatCannedReply, Sender: entities.SenderBusiness},
		}, nil)

		w := serve(newChatRouter(uc), http.MethodGet, "/v1/chats/c-1/messages")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		msgs, _ := body["messages"].([]any)
		if len(msgs) != 3 {
			t.Fatalf("expected 3 messages, got %s", w.Body.String())
		}
		last, _ := msgs[2].(map[string]any)
		if last["text"] != entities.ChatCannedReply {
			t.Fatalf("unexpected last message: %v", last)
		}
	})
}
