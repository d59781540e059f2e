package models

import "time"

// Payment records money received from a client, in the client's currency,
// converted to SAR at the recorded exchange rate. AmountSAR is derived and
// never accepted from the caller.
type Payment struct {
	ID            string    `json:"id"`
	ClientID      string    `json:"client_id"`
	Amount        float64   `json:"amount"`
	ExchangeRate  float64   `json:"exchange_rate"`
	AmountSAR     float64   `json:"amount_sar"`
	Detail        string    `json:"detail"`
	Date          string    `json:"date"` // YYYY-MM-DD
	ProofFileURL  string    `json:"proof_file_url"`
	ReservationNo string    `json:"reservation_no,omitempty"`
	TagStatus     TagStatus `json:"tag_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreatePaymentRequest represents the request body for recording a payment
type CreatePaymentRequest struct {
	ClientID      string  `json:"client_id"`
	Amount        float64 `json:"amount"`
	ExchangeRate  float64 `json:"exchange_rate"`
	Detail        string  `json:"detail"`
	Date          string  `json:"date"`
	ReservationNo string  `json:"reservation_no"`
	// StatusPayment is the caller's requested reservation payment status.
	// It is overridden to full_payment when the payment settles the total.
	StatusPayment string `json:"status_payment"`
}
