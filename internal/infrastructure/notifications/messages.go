package notifications

import (
	"fmt"
	"strings"
)

const ShopSender = "Gadget Garage"

func quoteSubmittedMail(p QuoteSubmittedPayload) (subject, body string) {
	subject = fmt.Sprintf("New quote request from %s", p.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "A new quote request was submitted.\n\n")
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Email: %s\n", p.Email)
	if p.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", p.Phone)
	}
	if p.ServiceType != "" {
		fmt.Fprintf(&b, "Service: %s\n", p.ServiceType)
	}
	fmt.Fprintf(&b, "Urgency: %s\n", p.Urgency)
	fmt.Fprintf(&b, "\n%s\n\n", p.Description)
	fmt.Fprintf(&b, "Reference: %s\n", p.ID)
	return subject, b.String()
}

func appointmentBookedMail(p AppointmentBookedPayload) (subject, body string) {
	subject = fmt.Sprintf("New appointment: %s on %s at %s", p.Service, p.Date, p.Time)
	body = fmt.Sprintf("An appointment was booked.\n\nService: %s\nDate: %s\nTime: %s\n\nReference: %s\n",
		p.Service, p.Date, p.Time, p.ID)
	return subject, body
}
