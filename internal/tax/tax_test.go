package tax

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestComputeSplitsEqually(t *testing.T) {
	for _, total := range []float64{0, 1, 999.99, 1000, 123456.78} {
		b := Compute(total)
		if math.Abs(b.CGST-total*0.09) > tolerance {
			t.Fatalf("cgst for %v: got %v want %v", total, b.CGST, total*0.09)
		}
		if b.CGST != b.SGST {
			t.Fatalf("cgst %v != sgst %v for total %v", b.CGST, b.SGST, total)
		}
		if math.Abs(b.GrandTotal-(total+b.CGST+b.SGST)) > tolerance {
			t.Fatalf("grand total for %v: got %v want %v", total, b.GrandTotal, total+b.CGST+b.SGST)
		}
	}
}

func TestComputeZero(t *testing.T) {
	b := Compute(0)
	if b.CGST != 0 || b.SGST != 0 || b.GrandTotal != 0 {
		t.Fatalf("expected all-zero breakdown, got %+v", b)
	}
}

func TestComputeKnownValues(t *testing.T) {
	b := Compute(1000)
	if b.CGST != 90 || b.SGST != 90 || b.GrandTotal != 1180 {
		t.Fatalf("unexpected breakdown for 1000: %+v", b)
	}
}

func TestComputeDoesNotClampNegative(t *testing.T) {
	// Negative totals are a caller bug, but the function must not silently
	// rewrite them.
	b := Compute(-100)
	if b.CGST != -9 || b.GrandTotal != -118 {
		t.Fatalf("negative input was clamped: %+v", b)
	}
}
