package services

import (
	"context"
	"errors"
	"testing"

	"hotel-backend/internal/models"
	"hotel-backend/internal/pricing"
)

func newReservationFixture() (*ReservationService, *stubReservationStore, *stubClientStore, *stubHotelStore) {
	reservations := newStubReservationStore()
	clients := newStubClientStore()
	hotels := newStubHotelStore()
	svc := NewReservationService(reservations, clients, hotels, pricing.DefaultVATRate)
	return svc, reservations, clients, hotels
}

func TestCreateReservationComputesFinancials(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newReservationFixture()

	res, err := svc.CreateReservation(context.Background(), &models.CreateReservationRequest{
		ClientID:       "C-1",
		HotelID:        "H-1",
		CheckIn:        "2025-03-10",
		CheckOut:       "2025-03-16",
		RoomDoubleQty:  1,
		RoomDoubleRate: 1300,
		RoomQuadQty:    1,
		RoomQuadRate:   1400,
	})
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}
	if res.StayNights != 6 {
		t.Fatalf("expected 6 nights, got %d", res.StayNights)
	}
	if res.TotalAmount != 16200 {
		t.Fatalf("expected total 16200, got %v", res.TotalAmount)
	}
	if res.PaidAmount != 0 {
		t.Fatalf("new reservation must start unpaid, got paid %v", res.PaidAmount)
	}
	if res.StatusPayment != models.PaymentUnpaid {
		t.Fatalf("expected status %q, got %q", models.PaymentUnpaid, res.StatusPayment)
	}
	if res.StatusBooking != models.BookingTentative {
		t.Fatalf("blank booking status should default to %q, got %q", models.BookingTentative, res.StatusBooking)
	}
	if res.TagStatus != models.TagNew {
		t.Fatalf("expected tag %q, got %q", models.TagNew, res.TagStatus)
	}
	if res.ReservationNo == "" {
		t.Fatal("expected generated reservation number")
	}
}

func TestCreateReservationRejectsBadStay(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newReservationFixture()

	cases := []struct {
		name     string
		checkin  string
		checkout string
	}{
		{"same day", "2025-03-10", "2025-03-10"},
		{"checkout before checkin", "2025-03-16", "2025-03-10"},
		{"garbage date", "not-a-date", "2025-03-16"},
	}
	for _, tc := range cases {
		_, err := svc.CreateReservation(context.Background(), &models.CreateReservationRequest{
			ClientID: "C-1",
			HotelID:  "H-1",
			CheckIn:  tc.checkin,
			CheckOut: tc.checkout,
		})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestCreateReservationRejectsNegativeRoomLine(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newReservationFixture()

	_, err := svc.CreateReservation(context.Background(), &models.CreateReservationRequest{
		ClientID:       "C-1",
		HotelID:        "H-1",
		CheckIn:        "2025-03-10",
		CheckOut:       "2025-03-12",
		RoomDoubleQty:  2,
		RoomDoubleRate: -50,
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for negative rate, got %v", err)
	}
}

func TestUpdateReservationPreservesPaidAmount(t *testing.T) {
	t.Parallel()
	svc, reservations, _, _ := newReservationFixture()

	res, err := svc.CreateReservation(context.Background(), &models.CreateReservationRequest{
		ReservationNo:  "RSV-1",
		ClientID:       "C-1",
		HotelID:        "H-1",
		CheckIn:        "2025-03-10",
		CheckOut:       "2025-03-16",
		RoomDoubleQty:  2,
		RoomDoubleRate: 500,
	})
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}

	// Simulate an applied payment outside the update path.
	res.PaidAmount = 2000
	res.StatusPayment = models.PaymentPartial
	if err := reservations.Update(context.Background(), res); err != nil {
		t.Fatalf("seed paid amount: %v", err)
	}

	updated, err := svc.UpdateReservation(context.Background(), "RSV-1", &models.UpdateReservationRequest{
		CheckIn:        "2025-03-10",
		CheckOut:       "2025-03-14",
		RoomDoubleQty:  2,
		RoomDoubleRate: 600,
	})
	if err != nil {
		t.Fatalf("UpdateReservation: %v", err)
	}
	if updated.TotalAmount != 4800 {
		t.Fatalf("expected recomputed total 4800, got %v", updated.TotalAmount)
	}
	if updated.PaidAmount != 2000 {
		t.Fatalf("paid amount must survive update, got %v", updated.PaidAmount)
	}
	if updated.StatusPayment != models.PaymentPartial {
		t.Fatalf("payment status must survive update, got %q", updated.StatusPayment)
	}
	if updated.TagStatus != models.TagEdited {
		t.Fatalf("expected tag %q after update, got %q", models.TagEdited, updated.TagStatus)
	}
}

func TestUpdateReservationReclampsWhenTotalShrinks(t *testing.T) {
	t.Parallel()
	svc, reservations, _, _ := newReservationFixture()

	res, err := svc.CreateReservation(context.Background(), &models.CreateReservationRequest{
		ReservationNo:  "RSV-2",
		ClientID:       "C-1",
		HotelID:        "H-1",
		CheckIn:        "2025-03-10",
		CheckOut:       "2025-03-16",
		RoomDoubleQty:  1,
		RoomDoubleRate: 1000,
	})
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}
	res.PaidAmount = 6000
	res.StatusPayment = models.PaymentFull
	if err := reservations.Update(context.Background(), res); err != nil {
		t.Fatalf("seed paid amount: %v", err)
	}

	updated, err := svc.UpdateReservation(context.Background(), "RSV-2", &models.UpdateReservationRequest{
		CheckIn:        "2025-03-10",
		CheckOut:       "2025-03-12",
		RoomDoubleQty:  1,
		RoomDoubleRate: 1000,
	})
	if err != nil {
		t.Fatalf("UpdateReservation: %v", err)
	}
	if updated.TotalAmount != 2000 {
		t.Fatalf("expected total 2000, got %v", updated.TotalAmount)
	}
	if updated.PaidAmount != 2000 {
		t.Fatalf("paid must re-clamp to new total, got %v", updated.PaidAmount)
	}
	if updated.StatusPayment != models.PaymentFull {
		t.Fatalf("expected %q, got %q", models.PaymentFull, updated.StatusPayment)
	}
}

func TestDeleteReservationIsIdempotent(t *testing.T) {
	t.Parallel()
	svc, reservations, _, _ := newReservationFixture()

	_, err := svc.CreateReservation(context.Background(), &models.CreateReservationRequest{
		ReservationNo:  "RSV-3",
		ClientID:       "C-1",
		HotelID:        "H-1",
		CheckIn:        "2025-03-10",
		CheckOut:       "2025-03-11",
		RoomDoubleQty:  1,
		RoomDoubleRate: 100,
	})
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}

	if err := svc.DeleteReservation(context.Background(), "RSV-3"); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.DeleteReservation(context.Background(), "RSV-3"); err != nil {
		t.Fatalf("second delete must be a no-op, got %v", err)
	}

	res, err := reservations.Get(context.Background(), "RSV-3")
	if err != nil {
		t.Fatalf("soft-deleted row must still exist: %v", err)
	}
	if res.TagStatus != models.TagDeleted {
		t.Fatalf("expected tag %q, got %q", models.TagDeleted, res.TagStatus)
	}
}

func TestListReservationsEnrichment(t *testing.T) {
	t.Parallel()
	svc, _, clients, hotels := newReservationFixture()

	clients.Create(context.Background(), &models.Client{ID: "C-1", Name: "Al Safar Travel"})
	hotels.Create(context.Background(), &models.Hotel{ID: "H-1", Name: "Dar Al Tawhid", City: "Makkah"})

	for _, req := range []*models.CreateReservationRequest{
		{ReservationNo: "RSV-A", ClientID: "C-1", HotelID: "H-1", CheckIn: "2025-03-10", CheckOut: "2025-03-16", RoomDoubleQty: 1, RoomDoubleRate: 1300, RoomQuadQty: 1, RoomQuadRate: 1400},
		{ReservationNo: "RSV-B", ClientID: "C-missing", HotelID: "H-missing", CheckIn: "2025-03-10", CheckOut: "2025-03-12", RoomDoubleQty: 1, RoomDoubleRate: 100},
	} {
		if _, err := svc.CreateReservation(context.Background(), req); err != nil {
			t.Fatalf("CreateReservation %s: %v", req.ReservationNo, err)
		}
	}

	list, err := svc.ListReservations(context.Background(), false)
	if err != nil {
		t.Fatalf("ListReservations: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 reservations, got %d", len(list))
	}

	a := list[0]
	if a.ClientName != "Al Safar Travel" || a.HotelName != "Dar Al Tawhid" || a.HotelCity != "Makkah" {
		t.Fatalf("unexpected enrichment: %q %q %q", a.ClientName, a.HotelName, a.HotelCity)
	}
	if a.Remaining != 16200 {
		t.Fatalf("expected remaining 16200, got %v", a.Remaining)
	}
	if a.Subtotal != 14086.96 || a.VAT != 2113.04 {
		t.Fatalf("unexpected VAT backout: subtotal %v vat %v", a.Subtotal, a.VAT)
	}

	b := list[1]
	if b.ClientName != UnknownClient {
		t.Fatalf("dangling client should enrich to %q, got %q", UnknownClient, b.ClientName)
	}
	if b.HotelName != UnknownHotel {
		t.Fatalf("dangling hotel should enrich to %q, got %q", UnknownHotel, b.HotelName)
	}
}

func TestListReservationsHidesDeletedByDefault(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newReservationFixture()

	for _, no := range []string{"RSV-1", "RSV-2"} {
		_, err := svc.CreateReservation(context.Background(), &models.CreateReservationRequest{
			ReservationNo:  no,
			ClientID:       "C-1",
			HotelID:        "H-1",
			CheckIn:        "2025-03-10",
			CheckOut:       "2025-03-11",
			RoomDoubleQty:  1,
			RoomDoubleRate: 100,
		})
		if err != nil {
			t.Fatalf("CreateReservation %s: %v", no, err)
		}
	}
	if err := svc.DeleteReservation(context.Background(), "RSV-1"); err != nil {
		t.Fatalf("DeleteReservation: %v", err)
	}

	visible, err := svc.ListReservations(context.Background(), false)
	if err != nil {
		t.Fatalf("ListReservations: %v", err)
	}
	if len(visible) != 1 || visible[0].ReservationNo != "RSV-2" {
		t.Fatalf("expected only RSV-2 visible, got %d rows", len(visible))
	}

	all, err := svc.ListReservations(context.Background(), true)
	if err != nil {
		t.Fatalf("ListReservations includeDeleted: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 rows with includeDeleted, got %d", len(all))
	}
}
