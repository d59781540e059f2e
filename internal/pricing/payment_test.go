package pricing

import (
	"errors"
	"testing"
)

func TestApplyPaymentSettlesAndForcesFullPayment(t *testing.T) {
	t.Parallel()
	res, err := ApplyPayment(2000, 0, 2000, "partial")
	if err != nil {
		t.Fatalf("ApplyPayment: %v", err)
	}
	if res.NewPaid != 2000 {
		t.Fatalf("expected newPaid 2000, got %.2f", res.NewPaid)
	}
	if res.Remaining != 0 {
		t.Fatalf("expected remaining 0, got %.2f", res.Remaining)
	}
	if res.Status != PaymentStatusFull {
		t.Fatalf("expected status forced to %s, got %s", PaymentStatusFull, res.Status)
	}
}

func TestApplyPaymentKeepsRequestedStatusWhenPartial(t *testing.T) {
	t.Parallel()
	res, err := ApplyPayment(2000, 500, 100, "partial")
	if err != nil {
		t.Fatalf("ApplyPayment: %v", err)
	}
	if res.NewPaid != 600 {
		t.Fatalf("expected newPaid 600, got %.2f", res.NewPaid)
	}
	if res.Remaining != 1400 {
		t.Fatalf("expected remaining 1400, got %.2f", res.Remaining)
	}
	if res.Status != "partial" {
		t.Fatalf("expected requested status kept, got %s", res.Status)
	}
}

func TestApplyPaymentClampsToTotal(t *testing.T) {
	t.Parallel()
	res, err := ApplyPayment(1000, 900, 5000, "dp_30")
	if err != nil {
		t.Fatalf("ApplyPayment: %v", err)
	}
	if res.NewPaid != 1000 {
		t.Fatalf("expected newPaid clamped to 1000, got %.2f", res.NewPaid)
	}
	if res.Status != PaymentStatusFull {
		t.Fatalf("expected status forced on clamp, got %s", res.Status)
	}
}

func TestApplyPaymentMonotonic(t *testing.T) {
	t.Parallel()
	paid := 0.0
	for _, amount := range []float64{0, 250.50, 0, 100, 9999} {
		res, err := ApplyPayment(1000, paid, amount, "partial")
		if err != nil {
			t.Fatalf("ApplyPayment(%f): %v", amount, err)
		}
		if res.NewPaid < paid {
			t.Fatalf("paid went backwards: %.2f -> %.2f", paid, res.NewPaid)
		}
		if res.NewPaid > 1000 {
			t.Fatalf("paid exceeded total: %.2f", res.NewPaid)
		}
		paid = res.NewPaid
	}
}

func TestApplyPaymentRejectsNegativeAmount(t *testing.T) {
	t.Parallel()
	if _, err := ApplyPayment(1000, 0, -1, "partial"); !errors.Is(err, ErrInvalidPayment) {
		t.Fatalf("expected ErrInvalidPayment, got %v", err)
	}
}

func TestConvertToSAR(t *testing.T) {
	t.Parallel()
	sar, err := ConvertToSAR(4000, 4.0)
	if err != nil {
		t.Fatalf("ConvertToSAR: %v", err)
	}
	if sar != 1000 {
		t.Fatalf("expected 1000, got %.2f", sar)
	}
	sar, err = ConvertToSAR(100, 3.0)
	if err != nil {
		t.Fatalf("ConvertToSAR: %v", err)
	}
	if sar != 33.33 {
		t.Fatalf("expected 33.33, got %.2f", sar)
	}
}

func TestConvertToSARRejectsNonPositiveRate(t *testing.T) {
	t.Parallel()
	for _, rate := range []float64{0, -1} {
		if _, err := ConvertToSAR(100, rate); !errors.Is(err, ErrInvalidExchangeRate) {
			t.Fatalf("expected ErrInvalidExchangeRate for rate %.1f, got %v", rate, err)
		}
	}
}
