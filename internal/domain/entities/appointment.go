package entities

import "time"

// BookingWindowDays is how many days ahead (starting tomorrow) can be booked.
const BookingWindowDays = 14

// DateLayout is the ISO calendar date format used for appointment dates.
const DateLayout = "2006-01-02"

var AppointmentTimeSlots = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "1:00 PM",
	"2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
}

var AppointmentServices = []string{
	"PC Build Consultation",
	"Repair Diagnosis",
	"Hardware Installation",
	"System Optimization",
	"General Consultation",
}

// Appointment is a booking persisted in the "appointments" collection.
//
// Name and Address are legacy fields that older clients wrote.
type Appointment struct {
	ID        string        `json:"id"`
	Service   string        `json:"service"`
	Date      string        `json:"date"`
	Time      string        `json:"time"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`

	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
}

// BookableDate is one selectable day in the booking window.
type BookableDate struct {
	Date   string `json:"date"`
	Day    string `json:"day"`
	DayNum int    `json:"dayNum"`
	Month  string `json:"month"`
}

// BookableDates lists the BookingWindowDays calendar days after today in today's location.
func BookableDates(today time.Time) []BookableDate {
	y, m, d := today.Date()
	base := time.Date(y, m, d, 0, 0, 0, 0, today.Location())

	dates := make([]BookableDate, 0, BookingWindowDays)
	for i := 1; i <= BookingWindowDays; i++ {
		day := base.AddDate(0, 0, i)
		dates = append(dates, BookableDate{
			Date:   day.Format(DateLayout),
			Day:    day.Format("Mon"),
			DayNum: day.Day(),
			Month:  day.Format("Jan"),
		})
	}
	return dates
}
