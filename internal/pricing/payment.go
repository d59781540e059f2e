package pricing

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPayment is returned for a negative payment amount.
	ErrInvalidPayment = errors.New("payment amount must not be negative")
	// ErrInvalidExchangeRate is returned for a non-positive exchange rate.
	ErrInvalidExchangeRate = errors.New("exchange rate must be positive")
)

// PaymentStatusFull is the status forced when a payment settles the total.
// Mirrors models.PaymentFull; duplicated here to keep this package free of
// model imports.
const PaymentStatusFull = "full_payment"

// PaymentResult is the outcome of applying a payment to a reservation.
type PaymentResult struct {
	NewPaid   float64
	Remaining float64
	Status    string
}

// ApplyPayment applies an incremental payment against a reservation total.
// The new paid amount is clamped to [0, total] so repeated application never
// exceeds the total. The caller's requested status is kept unless the payment
// settles the total, in which case full_payment is forced regardless.
func ApplyPayment(total, currentPaid, amount float64, requestedStatus string) (PaymentResult, error) {
	if amount < 0 {
		return PaymentResult{}, fmt.Errorf("%w: %.2f", ErrInvalidPayment, amount)
	}
	newPaid := currentPaid + amount
	if newPaid > total {
		newPaid = total
	}
	if newPaid < 0 {
		newPaid = 0
	}
	newPaid = Round2(newPaid)

	status := requestedStatus
	if newPaid >= total {
		status = PaymentStatusFull
	}

	remaining := Round2(total - newPaid)
	if remaining < 0 {
		remaining = 0
	}
	return PaymentResult{NewPaid: newPaid, Remaining: remaining, Status: status}, nil
}

// ConvertToSAR converts a source-currency amount to SAR at the given rate,
// rounded to 2 decimals.
func ConvertToSAR(amount, exchangeRate float64) (float64, error) {
	if exchangeRate <= 0 {
		return 0, fmt.Errorf("%w: %.4f", ErrInvalidExchangeRate, exchangeRate)
	}
	return Round2(amount / exchangeRate), nil
}
