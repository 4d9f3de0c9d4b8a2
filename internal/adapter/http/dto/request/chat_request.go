package request

type ChatMessageRequest struct {
	Text string `json:"text" example:"Can you upgrade my RAM?"`
}
