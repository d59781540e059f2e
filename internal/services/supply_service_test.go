package services

import (
	"context"
	"errors"
	"testing"

	"hotel-backend/internal/models"
)

func TestCreateSupplyComputesTotal(t *testing.T) {
	t.Parallel()
	svc := NewSupplyService(newStubSupplyStore())

	supply, err := svc.CreateSupply(context.Background(), &models.CreateSupplyRequest{
		Vendor:         "Al Noor Hospitality",
		ReservationNo:  "RES-1001",
		CheckIn:        "2026-03-10",
		CheckOut:       "2026-03-13",
		RoomDoubleQty:  4,
		RoomDoubleRate: 350,
		RoomQuadQty:    1,
		RoomQuadRate:   600,
	})
	if err != nil {
		t.Fatalf("CreateSupply: %v", err)
	}
	if supply.StayNights != 3 {
		t.Fatalf("expected 3 nights, got %d", supply.StayNights)
	}
	// 3 * (4*350 + 1*600) = 6000
	if supply.TotalAmount != 6000 {
		t.Fatalf("expected total 6000, got %v", supply.TotalAmount)
	}
	if supply.TagStatus != models.TagNew {
		t.Fatalf("expected tag %q, got %q", models.TagNew, supply.TagStatus)
	}
	if supply.ID == "" {
		t.Fatal("expected generated supply ID")
	}
}

func TestCreateSupplyRequiresVendor(t *testing.T) {
	t.Parallel()
	svc := NewSupplyService(newStubSupplyStore())

	_, err := svc.CreateSupply(context.Background(), &models.CreateSupplyRequest{
		CheckIn:  "2026-03-10",
		CheckOut: "2026-03-12",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateSupplyRecomputesAndTags(t *testing.T) {
	t.Parallel()
	svc := NewSupplyService(newStubSupplyStore())

	supply, err := svc.CreateSupply(context.Background(), &models.CreateSupplyRequest{
		Vendor:         "Al Noor Hospitality",
		CheckIn:        "2026-03-10",
		CheckOut:       "2026-03-12",
		RoomDoubleQty:  2,
		RoomDoubleRate: 400,
	})
	if err != nil {
		t.Fatalf("CreateSupply: %v", err)
	}

	updated, err := svc.UpdateSupply(context.Background(), supply.ID, &models.UpdateSupplyRequest{
		CheckIn:        "2026-03-10",
		CheckOut:       "2026-03-14",
		RoomDoubleQty:  2,
		RoomDoubleRate: 400,
	})
	if err != nil {
		t.Fatalf("UpdateSupply: %v", err)
	}
	if updated.StayNights != 4 {
		t.Fatalf("expected 4 nights, got %d", updated.StayNights)
	}
	if updated.TotalAmount != 3200 {
		t.Fatalf("expected total 3200, got %v", updated.TotalAmount)
	}
	if updated.TagStatus != models.TagEdited {
		t.Fatalf("expected tag %q, got %q", models.TagEdited, updated.TagStatus)
	}
	// Blank vendor in the update leaves the existing vendor alone.
	if updated.Vendor != "Al Noor Hospitality" {
		t.Fatalf("expected vendor preserved, got %q", updated.Vendor)
	}
}

func TestDeleteSupplyHidesFromList(t *testing.T) {
	t.Parallel()
	svc := NewSupplyService(newStubSupplyStore())
	ctx := context.Background()

	keep, err := svc.CreateSupply(ctx, &models.CreateSupplyRequest{
		Vendor: "Vendor A", CheckIn: "2026-03-10", CheckOut: "2026-03-11",
		RoomDoubleQty: 1, RoomDoubleRate: 100,
	})
	if err != nil {
		t.Fatalf("CreateSupply: %v", err)
	}
	gone, err := svc.CreateSupply(ctx, &models.CreateSupplyRequest{
		Vendor: "Vendor B", CheckIn: "2026-03-10", CheckOut: "2026-03-11",
		RoomDoubleQty: 1, RoomDoubleRate: 100,
	})
	if err != nil {
		t.Fatalf("CreateSupply: %v", err)
	}

	if err := svc.DeleteSupply(ctx, gone.ID); err != nil {
		t.Fatalf("DeleteSupply: %v", err)
	}
	// Repeat delete is a no-op.
	if err := svc.DeleteSupply(ctx, gone.ID); err != nil {
		t.Fatalf("repeat DeleteSupply: %v", err)
	}

	visible, err := svc.ListSupplies(ctx, false)
	if err != nil {
		t.Fatalf("ListSupplies: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != keep.ID {
		t.Fatalf("expected only %s visible, got %d supplies", keep.ID, len(visible))
	}

	all, err := svc.ListSupplies(ctx, true)
	if err != nil {
		t.Fatalf("ListSupplies all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 supplies with deleted included, got %d", len(all))
	}
}

func TestAttachSupplyProof(t *testing.T) {
	t.Parallel()
	svc := NewSupplyService(newStubSupplyStore())

	supply, err := svc.CreateSupply(context.Background(), &models.CreateSupplyRequest{
		Vendor: "Vendor A", CheckIn: "2026-03-10", CheckOut: "2026-03-11",
		RoomDoubleQty: 1, RoomDoubleRate: 100,
	})
	if err != nil {
		t.Fatalf("CreateSupply: %v", err)
	}

	updated, err := svc.AttachProof(context.Background(), supply.ID, "https://cdn.example.com/proofs/supplies/x.pdf")
	if err != nil {
		t.Fatalf("AttachProof: %v", err)
	}
	if updated.ProofFileURL != "https://cdn.example.com/proofs/supplies/x.pdf" {
		t.Fatalf("unexpected proof url %q", updated.ProofFileURL)
	}
}
