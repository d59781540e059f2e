package sheets

import (
	"context"
	"log"
	"strings"

	"hotel-backend/internal/models"
	"hotel-backend/internal/store"
)

type PaymentSheet struct {
	*Store
}

func (s *PaymentSheet) Create(ctx context.Context, payment *models.Payment) error {
	return s.appendRow(ctx, tabPayments, encodePayment(payment))
}

func (s *PaymentSheet) locate(ctx context.Context, id string) (*models.Payment, int, error) {
	rows, err := s.rows(ctx, tabPayments)
	if err != nil {
		return nil, 0, err
	}
	key := strings.TrimSpace(id)
	for i, row := range rows {
		payment, err := decodePayment(row)
		if err != nil {
			continue
		}
		if payment.ID == key {
			return payment, sheetRow(i), nil
		}
	}
	return nil, 0, store.ErrNotFound
}

func (s *PaymentSheet) Get(ctx context.Context, id string) (*models.Payment, error) {
	payment, _, err := s.locate(ctx, id)
	return payment, err
}

func (s *PaymentSheet) List(ctx context.Context) ([]*models.Payment, error) {
	rows, err := s.rows(ctx, tabPayments)
	if err != nil {
		return nil, err
	}
	var payments []*models.Payment
	for i, row := range rows {
		payment, err := decodePayment(row)
		if err != nil {
			log.Printf("[Sheets] Skipping %s row %d: %v", tabPayments, sheetRow(i), err)
			continue
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

func (s *PaymentSheet) ListByReservation(ctx context.Context, reservationNo string) ([]*models.Payment, error) {
	payments, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	key := strings.TrimSpace(reservationNo)
	var matched []*models.Payment
	for _, payment := range payments {
		if payment.ReservationNo == key {
			matched = append(matched, payment)
		}
	}
	return matched, nil
}

func (s *PaymentSheet) Update(ctx context.Context, payment *models.Payment) error {
	_, rowNum, err := s.locate(ctx, payment.ID)
	if err != nil {
		return err
	}
	return s.overwriteRow(ctx, tabPayments, rowNum, encodePayment(payment))
}
