package pricing

import (
	"errors"
	"math"
	"testing"
)

func TestStayNightsExactDayDifference(t *testing.T) {
	t.Parallel()
	cases := []struct {
		checkin, checkout string
		want              int
	}{
		{"2025-03-01", "2025-03-07", 6},
		{"2025-03-01", "2025-03-02", 1},
		{"2025-12-28", "2026-01-03", 6},
	}
	for _, c := range cases {
		got, err := ValidateStayNights(c.checkin, c.checkout)
		if err != nil {
			t.Fatalf("ValidateStayNights(%s, %s): %v", c.checkin, c.checkout, err)
		}
		if got != c.want {
			t.Fatalf("ValidateStayNights(%s, %s) = %d, want %d", c.checkin, c.checkout, got, c.want)
		}
	}
}

func TestValidateStayNightsRejectsNonPositiveRange(t *testing.T) {
	t.Parallel()
	for _, c := range [][2]string{
		{"2025-03-07", "2025-03-01"},
		{"2025-03-01", "2025-03-01"},
	} {
		if _, err := ValidateStayNights(c[0], c[1]); !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange for %s..%s, got %v", c[0], c[1], err)
		}
	}
}

func TestValidateStayNightsRejectsMalformedDates(t *testing.T) {
	t.Parallel()
	if _, err := ValidateStayNights("not-a-date", "2025-03-01"); err == nil {
		t.Fatal("expected error for malformed checkin")
	}
	if _, err := ValidateStayNights("2025-03-01", ""); err == nil {
		t.Fatal("expected error for blank checkout")
	}
}

func TestStayNightsReadPathTolerance(t *testing.T) {
	t.Parallel()
	if got := StayNights("", ""); got != 0 {
		t.Fatalf("blank dates: got %d, want 0", got)
	}
	if got := StayNights("2025-03-07", "2025-03-01"); got != 0 {
		t.Fatalf("inverted range: got %d, want 0", got)
	}
	if got := StayNights("2025-03-01", "2025-03-05"); got != 4 {
		t.Fatalf("valid range: got %d, want 4", got)
	}
}

func TestComputeTotal(t *testing.T) {
	t.Parallel()
	lines := []RoomLine{{RoomType: RoomDouble, Qty: 1, Rate: 500}}
	total, err := ComputeTotal(lines, 4)
	if err != nil {
		t.Fatalf("ComputeTotal: %v", err)
	}
	if total != 2000 {
		t.Fatalf("expected total 2000, got %.2f", total)
	}
}

func TestComputeTotalMultiRoom(t *testing.T) {
	t.Parallel()
	lines := []RoomLine{
		{RoomType: RoomDouble, Qty: 1, Rate: 1300},
		{RoomType: RoomTriple, Qty: 1, Rate: 1400},
	}
	total, err := ComputeTotal(lines, 6)
	if err != nil {
		t.Fatalf("ComputeTotal: %v", err)
	}
	if total != 16200 {
		t.Fatalf("expected total 16200, got %.2f", total)
	}
}

func TestComputeTotalRejectsNegativeLines(t *testing.T) {
	t.Parallel()
	if _, err := ComputeTotal([]RoomLine{{RoomType: RoomQuad, Qty: -1, Rate: 100}}, 2); !errors.Is(err, ErrNegativeRoomLine) {
		t.Fatalf("expected ErrNegativeRoomLine for negative qty, got %v", err)
	}
	if _, err := ComputeTotal([]RoomLine{{RoomType: RoomQuad, Qty: 1, Rate: -100}}, 2); !errors.Is(err, ErrNegativeRoomLine) {
		t.Fatalf("expected ErrNegativeRoomLine for negative rate, got %v", err)
	}
}

func TestBackoutVAT(t *testing.T) {
	t.Parallel()
	subtotal, vat := BackoutVAT(16200.00, DefaultVATRate)
	if math.Abs(subtotal-14086.96) > 0.01 {
		t.Fatalf("expected subtotal ~14086.96, got %.2f", subtotal)
	}
	if math.Abs(vat-2113.04) > 0.01 {
		t.Fatalf("expected vat ~2113.04, got %.2f", vat)
	}
	if math.Abs((subtotal+vat)-16200.00) > 0.01 {
		t.Fatalf("subtotal+vat should sum back to total, got %.2f", subtotal+vat)
	}
}

func TestBackoutVATZeroRate(t *testing.T) {
	t.Parallel()
	subtotal, vat := BackoutVAT(100, 0)
	if subtotal != 100 || vat != 0 {
		t.Fatalf("expected (100, 0), got (%.2f, %.2f)", subtotal, vat)
	}
}
