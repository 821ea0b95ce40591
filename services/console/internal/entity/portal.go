package entity

import "time"

// Feedback is a passenger journey rating submitted from the public portal.
type Feedback struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone"`
	FromStation string    `json:"fromStation,omitempty"`
	ToStation   string    `json:"toStation,omitempty"`
	JourneyTime string    `json:"journeyTime,omitempty"`
	Rating      int       `json:"rating"`
	Comments    string    `json:"comments,omitempty"`
	Date        time.Time `json:"date"`
}

type TicketStatus string

const (
	TicketActive  TicketStatus = "active"
	TicketUsed    TicketStatus = "used"
	TicketExpired TicketStatus = "expired"
)

type Ticket struct {
	ID            string       `json:"id"`
	PassengerName string       `json:"passengerName"`
	FromStation   string       `json:"fromStation"`
	ToStation     string       `json:"toStation"`
	Fare          float64      `json:"fare"`
	Passengers    int          `json:"passengers"`
	JourneyDate   string       `json:"journeyDate"`
	QRCode        string       `json:"qrCode"`
	Status        TicketStatus `json:"status"`
}
