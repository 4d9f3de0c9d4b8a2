package entities

import (
	"strings"
	"time"
)

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyNormal Urgency = "normal"
	UrgencyHigh   Urgency = "high"
	UrgencyUrgent Urgency = "urgent"

	DefaultUrgency = UrgencyNormal
)

var UrgencyLevels = []Urgency{UrgencyLow, UrgencyNormal, UrgencyHigh, UrgencyUrgent}

// QuoteServiceTypes are the service types offered on the quote form.
var QuoteServiceTypes = []string{
	"Custom PC Build",
	"PC Repair",
	"Hardware Installation",
	"System Optimization",
	"Other",
}

// QuoteRequest is a free-quote request persisted in the "quotes" collection.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (created_at-index): collection + created_at, queried newest first
//
// FirstName, LastName, DeviceType and Issue are only present on documents
// written by an older client and are read back for display.
type QuoteRequest struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	ServiceType string        `json:"serviceType"`
	Description string        `json:"description"`
	Urgency     Urgency       `json:"urgency"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`

	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	DeviceType string `json:"deviceType,omitempty"`
	Issue      string `json:"issue,omitempty"`
}

// DisplayName is the name shown on admin summary cards.
func (q QuoteRequest) DisplayName() string {
	if q.Name != "" {
		return q.Name
	}
	return strings.TrimSpace(q.FirstName + " " + q.LastName)
}
