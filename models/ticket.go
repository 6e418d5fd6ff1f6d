package models

const TicketStatusOpen = "Open"

type Ticket struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	DateISO string `json:"dateISO"`
	Status  string `json:"status"`
}
