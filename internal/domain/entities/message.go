package entities

import "time"

type Sender string

const (
	SenderCustomer Sender = "customer"
	SenderBusiness Sender = "business"
)

const (
	ChatGreeting    = "Hi! Thanks for your interest in our services. How can I help you today?"
	ChatCannedReply = "Thanks for your message! I'll get back to you with details shortly."
)

// Message is one entry of a simulated chat. It lives only in memory.
type Message struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}
