package services

import (
	"context"
	"testing"

	"hotel-backend/internal/models"
)

func TestSummarizeSkipsDeleted(t *testing.T) {
	t.Parallel()
	svc, _, _, hotels := newReservationFixture()

	hotels.Create(context.Background(), &models.Hotel{ID: "H-1", Name: "Dar Al Tawhid", City: "Makkah"})

	for _, req := range []*models.CreateReservationRequest{
		{ReservationNo: "RSV-1", ClientID: "C-1", HotelID: "H-1", CheckIn: "2025-03-10", CheckOut: "2025-03-12", RoomDoubleQty: 1, RoomDoubleRate: 500},
		{ReservationNo: "RSV-2", ClientID: "C-1", HotelID: "H-2", CheckIn: "2025-03-10", CheckOut: "2025-03-12", RoomDoubleQty: 1, RoomDoubleRate: 300},
		{ReservationNo: "RSV-3", ClientID: "C-1", HotelID: "H-1", CheckIn: "2025-03-10", CheckOut: "2025-03-12", RoomDoubleQty: 1, RoomDoubleRate: 100},
	} {
		if _, err := svc.CreateReservation(context.Background(), req); err != nil {
			t.Fatalf("CreateReservation %s: %v", req.ReservationNo, err)
		}
	}
	if err := svc.DeleteReservation(context.Background(), "RSV-3"); err != nil {
		t.Fatalf("DeleteReservation: %v", err)
	}

	summary, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.Reservations != 2 {
		t.Fatalf("expected 2 active reservations, got %d", summary.Reservations)
	}
	if summary.TotalAmount != 1600 {
		t.Fatalf("expected total 1600, got %v", summary.TotalAmount)
	}
	if summary.Remaining != 1600 {
		t.Fatalf("expected remaining 1600, got %v", summary.Remaining)
	}
	if summary.ByStatus[models.PaymentUnpaid] != 2 {
		t.Fatalf("expected 2 unpaid, got %d", summary.ByStatus[models.PaymentUnpaid])
	}
	if summary.ByCity["Makkah"] != 1000 {
		t.Fatalf("expected Makkah total 1000, got %v", summary.ByCity["Makkah"])
	}
	if summary.ByCity["Unknown"] != 600 {
		t.Fatalf("expected Unknown total 600, got %v", summary.ByCity["Unknown"])
	}
}
