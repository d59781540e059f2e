package services

import (
	"context"
	"strings"

	"hotel-backend/internal/models"
	"hotel-backend/internal/pricing"
	"hotel-backend/internal/store"
	"hotel-backend/internal/timeutil"
)

type PaymentService struct {
	Payments     store.PaymentStore
	Reservations store.ReservationStore
}

func NewPaymentService(payments store.PaymentStore, reservations store.ReservationStore) *PaymentService {
	return &PaymentService{Payments: payments, Reservations: reservations}
}

// RecordPayment converts the payment to SAR, persists it, and when linked to a
// reservation applies the SAR amount to the reservation's running total. The
// two writes are not atomic: if the reservation update fails the payment row
// already exists and has to be reconciled by hand.
func (s *PaymentService) RecordPayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, error) {
	if strings.TrimSpace(req.ClientID) == "" {
		return nil, validationf("client_id is required")
	}
	if req.Amount <= 0 {
		return nil, validationf("amount must be positive")
	}
	if req.StatusPayment != "" && !models.ValidPaymentStatus(req.StatusPayment) {
		return nil, validationf("unknown payment status %q", req.StatusPayment)
	}

	amountSAR, err := pricing.ConvertToSAR(req.Amount, req.ExchangeRate)
	if err != nil {
		return nil, validationf("%v", err)
	}

	var res *models.Reservation
	reservationNo := strings.TrimSpace(req.ReservationNo)
	if reservationNo != "" {
		res, err = s.Reservations.Get(ctx, reservationNo)
		if err != nil {
			return nil, err
		}
	}

	now := timeutil.Now()
	date := req.Date
	if date == "" {
		date = now.Format(timeutil.DateLayout)
	}
	payment := &models.Payment{
		ID:            newID(paymentIDPrefix),
		ClientID:      strings.TrimSpace(req.ClientID),
		Amount:        req.Amount,
		ExchangeRate:  req.ExchangeRate,
		AmountSAR:     amountSAR,
		Detail:        req.Detail,
		Date:          date,
		ReservationNo: reservationNo,
		TagStatus:     models.NextTag("", models.EventCreate),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	if res != nil {
		requested := req.StatusPayment
		if requested == "" {
			requested = models.PaymentPartial
		}
		result, err := pricing.ApplyPayment(res.TotalAmount, res.PaidAmount, amountSAR, requested)
		if err != nil {
			return nil, validationf("%v", err)
		}
		res.PaidAmount = result.NewPaid
		res.StatusPayment = result.Status
		res.TagStatus = models.NextTag(res.TagStatus, models.EventUpdate)
		res.UpdatedAt = now
		if err := s.Reservations.Update(ctx, res); err != nil {
			return payment, err
		}
	}
	return payment, nil
}

// AttachProof stores the uploaded proof's public URL on the payment.
func (s *PaymentService) AttachProof(ctx context.Context, id, fileURL string) (*models.Payment, error) {
	payment, err := s.Payments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	payment.ProofFileURL = fileURL
	payment.TagStatus = models.NextTag(payment.TagStatus, models.EventUpdate)
	payment.UpdatedAt = timeutil.Now()
	if err := s.Payments.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	return s.Payments.Get(ctx, id)
}

func (s *PaymentService) ListPayments(ctx context.Context, includeDeleted bool) ([]*models.Payment, error) {
	payments, err := s.Payments.List(ctx)
	if err != nil {
		return nil, err
	}
	if includeDeleted {
		return payments, nil
	}
	visible := make([]*models.Payment, 0, len(payments))
	for _, p := range payments {
		if p.TagStatus.IsDeleted() {
			continue
		}
		visible = append(visible, p)
	}
	return visible, nil
}

// PaymentsForReservation returns the payment history of one reservation,
// active payments only.
func (s *PaymentService) PaymentsForReservation(ctx context.Context, reservationNo string) ([]*models.Payment, error) {
	payments, err := s.Payments.ListByReservation(ctx, reservationNo)
	if err != nil {
		return nil, err
	}
	visible := make([]*models.Payment, 0, len(payments))
	for _, p := range payments {
		if p.TagStatus.IsDeleted() {
			continue
		}
		visible = append(visible, p)
	}
	return visible, nil
}

// DeletePayment soft-deletes the payment record. The reservation's paid
// amount is left untouched; reversing an applied payment is a manual
// adjustment.
func (s *PaymentService) DeletePayment(ctx context.Context, id string) error {
	payment, err := s.Payments.Get(ctx, id)
	if err != nil {
		return err
	}
	if payment.TagStatus.IsDeleted() {
		return nil
	}
	payment.TagStatus = models.NextTag(payment.TagStatus, models.EventDelete)
	payment.UpdatedAt = timeutil.Now()
	return s.Payments.Update(ctx, payment)
}
