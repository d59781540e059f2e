package services

import (
	"context"
	"errors"
	"testing"

	"hotel-backend/internal/models"
	"hotel-backend/internal/pricing"
)

func newPaymentFixture(t *testing.T) (*PaymentService, *stubReservationStore) {
	t.Helper()
	reservations := newStubReservationStore()
	payments := newStubPaymentStore()
	return NewPaymentService(payments, reservations), reservations
}

func seedReservation(t *testing.T, reservations *stubReservationStore, no string, total, paid float64) {
	t.Helper()
	err := reservations.Create(context.Background(), &models.Reservation{
		ReservationNo: no,
		ClientID:      "C-1",
		HotelID:       "H-1",
		TotalAmount:   total,
		PaidAmount:    paid,
		StatusPayment: models.PaymentUnpaid,
		TagStatus:     models.TagNew,
	})
	if err != nil {
		t.Fatalf("seed reservation: %v", err)
	}
}

func TestRecordPaymentSettlesReservation(t *testing.T) {
	t.Parallel()
	svc, reservations := newPaymentFixture(t)
	seedReservation(t, reservations, "RSV-1", 16200, 0)

	payment, err := svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		ClientID:      "C-1",
		Amount:        16200,
		ExchangeRate:  1,
		Date:          "2025-03-01",
		ReservationNo: "RSV-1",
		StatusPayment: models.PaymentPartial,
	})
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if payment.AmountSAR != 16200 {
		t.Fatalf("expected amount_sar 16200, got %v", payment.AmountSAR)
	}

	res, err := reservations.Get(context.Background(), "RSV-1")
	if err != nil {
		t.Fatalf("Get reservation: %v", err)
	}
	if res.PaidAmount != 16200 {
		t.Fatalf("expected paid 16200, got %v", res.PaidAmount)
	}
	// Settling the total overrides the requested status.
	if res.StatusPayment != models.PaymentFull {
		t.Fatalf("expected %q, got %q", models.PaymentFull, res.StatusPayment)
	}
}

func TestRecordPaymentClampsOverpayment(t *testing.T) {
	t.Parallel()
	svc, reservations := newPaymentFixture(t)
	seedReservation(t, reservations, "RSV-1", 1000, 800)

	if _, err := svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		ClientID:      "C-1",
		Amount:        500,
		ExchangeRate:  1,
		ReservationNo: "RSV-1",
	}); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}

	res, _ := reservations.Get(context.Background(), "RSV-1")
	if res.PaidAmount != 1000 {
		t.Fatalf("paid must clamp to total 1000, got %v", res.PaidAmount)
	}
	if res.StatusPayment != models.PaymentFull {
		t.Fatalf("expected %q, got %q", models.PaymentFull, res.StatusPayment)
	}
}

func TestRecordPaymentKeepsRequestedStatusWhenPartial(t *testing.T) {
	t.Parallel()
	svc, reservations := newPaymentFixture(t)
	seedReservation(t, reservations, "RSV-1", 10000, 0)

	if _, err := svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		ClientID:      "C-1",
		Amount:        3000,
		ExchangeRate:  1,
		ReservationNo: "RSV-1",
		StatusPayment: models.PaymentDP30,
	}); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}

	res, _ := reservations.Get(context.Background(), "RSV-1")
	if res.StatusPayment != models.PaymentDP30 {
		t.Fatalf("expected requested status %q kept, got %q", models.PaymentDP30, res.StatusPayment)
	}
	if res.PaidAmount != 3000 {
		t.Fatalf("expected paid 3000, got %v", res.PaidAmount)
	}
}

func TestRecordPaymentConvertsToSAR(t *testing.T) {
	t.Parallel()
	svc, reservations := newPaymentFixture(t)
	seedReservation(t, reservations, "RSV-1", 100, 0)

	payment, err := svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		ClientID:      "C-1",
		Amount:        100,
		ExchangeRate:  3,
		ReservationNo: "RSV-1",
	})
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if payment.AmountSAR != 33.33 {
		t.Fatalf("expected 33.33 SAR, got %v", payment.AmountSAR)
	}

	res, _ := reservations.Get(context.Background(), "RSV-1")
	if res.PaidAmount != 33.33 {
		t.Fatalf("reservation must receive SAR amount, got %v", res.PaidAmount)
	}
}

func TestRecordPaymentValidation(t *testing.T) {
	t.Parallel()
	svc, _ := newPaymentFixture(t)

	cases := []struct {
		name string
		req  models.CreatePaymentRequest
	}{
		{"missing client", models.CreatePaymentRequest{Amount: 100, ExchangeRate: 1}},
		{"zero amount", models.CreatePaymentRequest{ClientID: "C-1", Amount: 0, ExchangeRate: 1}},
		{"zero exchange rate", models.CreatePaymentRequest{ClientID: "C-1", Amount: 100, ExchangeRate: 0}},
		{"negative exchange rate", models.CreatePaymentRequest{ClientID: "C-1", Amount: 100, ExchangeRate: -2}},
		{"bad status", models.CreatePaymentRequest{ClientID: "C-1", Amount: 100, ExchangeRate: 1, StatusPayment: "settled"}},
	}
	for _, tc := range cases {
		req := tc.req
		if _, err := svc.RecordPayment(context.Background(), &req); !errors.Is(err, ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestRecordPaymentUnlinkedLeavesReservationsAlone(t *testing.T) {
	t.Parallel()
	svc, reservations := newPaymentFixture(t)
	seedReservation(t, reservations, "RSV-1", 1000, 0)

	payment, err := svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		ClientID:     "C-1",
		Amount:       250,
		ExchangeRate: 1,
	})
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if payment.ReservationNo != "" {
		t.Fatalf("expected unlinked payment, got %q", payment.ReservationNo)
	}

	res, _ := reservations.Get(context.Background(), "RSV-1")
	if res.PaidAmount != 0 {
		t.Fatalf("unlinked payment must not touch reservations, got paid %v", res.PaidAmount)
	}
}

func TestPaymentsForReservationFiltersDeleted(t *testing.T) {
	t.Parallel()
	svc, reservations := newPaymentFixture(t)
	seedReservation(t, reservations, "RSV-1", 100000, 0)

	var first string
	for i := 0; i < 2; i++ {
		p, err := svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
			ClientID:      "C-1",
			Amount:        500,
			ExchangeRate:  1,
			ReservationNo: "RSV-1",
		})
		if err != nil {
			t.Fatalf("RecordPayment %d: %v", i, err)
		}
		if i == 0 {
			first = p.ID
		}
	}
	if err := svc.DeletePayment(context.Background(), first); err != nil {
		t.Fatalf("DeletePayment: %v", err)
	}
	if err := svc.DeletePayment(context.Background(), first); err != nil {
		t.Fatalf("repeat DeletePayment must be a no-op, got %v", err)
	}

	history, err := svc.PaymentsForReservation(context.Background(), "RSV-1")
	if err != nil {
		t.Fatalf("PaymentsForReservation: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 active payment, got %d", len(history))
	}

	// Deleting the payment record leaves the applied amount on the reservation.
	res, _ := reservations.Get(context.Background(), "RSV-1")
	if res.PaidAmount != 1000 {
		t.Fatalf("expected paid 1000 after record delete, got %v", res.PaidAmount)
	}
}

func TestAttachProof(t *testing.T) {
	t.Parallel()
	svc, reservations := newPaymentFixture(t)
	seedReservation(t, reservations, "RSV-1", 1000, 0)

	payment, err := svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		ClientID:      "C-1",
		Amount:        100,
		ExchangeRate:  1,
		ReservationNo: "RSV-1",
	})
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}

	updated, err := svc.AttachProof(context.Background(), payment.ID, "https://files.example.com/proof.pdf")
	if err != nil {
		t.Fatalf("AttachProof: %v", err)
	}
	if updated.ProofFileURL != "https://files.example.com/proof.pdf" {
		t.Fatalf("unexpected proof url %q", updated.ProofFileURL)
	}
	if updated.TagStatus != models.TagEdited {
		t.Fatalf("expected tag %q, got %q", models.TagEdited, updated.TagStatus)
	}
}

func TestApplyPaymentMatchesPricing(t *testing.T) {
	t.Parallel()
	// The service must defer entirely to the pricing rules; spot-check one
	// clamp through both layers.
	result, err := pricing.ApplyPayment(1000, 900, 500, models.PaymentPartial)
	if err != nil {
		t.Fatalf("ApplyPayment: %v", err)
	}
	if result.NewPaid != 1000 || result.Remaining != 0 || result.Status != models.PaymentFull {
		t.Fatalf("unexpected result %+v", result)
	}
}
