package response

import (
	"time"

	"gadget_garage/internal/domain/entities"
	"gadget_garage/internal/usecase"
)

type MessageResponse struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatSessionResponse struct {
	ID       string            `json:"id"`
	Messages []MessageResponse `json:"messages"`
}

func FromMessage(m entities.Message) MessageResponse {
	return MessageResponse{ID: m.ID, Text: m.Text, Sender: string(m.Sender), Timestamp: m.Timestamp}
}

func FromMessages(ms []entities.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMessage(m))
	}
	return out
}

func FromChatSession(s usecase.ChatSession) ChatSessionResponse {
	return ChatSessionResponse{ID: s.ID, Messages: FromMessages(s.Messages)}
}
