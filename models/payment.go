package models

const PaymentStatusPaid = "Paid"

type Payment struct {
	ID          string  `json:"id"`
	DateISO     string  `json:"dateISO"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
}
